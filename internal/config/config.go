package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strings"
	"time"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Only the server identity and the supplier
// endpoint are required; the audit database, broker and JWT auth are
// switched off when their variables are empty.
type Config struct {
	Env  string // application environment (e.g. "dev", "prod")
	Port string // HTTP port to listen on

	NDC NDCConfig

	// RequiredSeatCharacteristics lists characteristic codes that make a
	// seat unassignable in this channel.
	RequiredSeatCharacteristics []string

	JWTSecret string   // secret used to verify bearer tokens; empty disables auth
	AuthRoles []string // roles allowed on the NDC routes; empty allows any authenticated caller

	DB DBConfig

	AMQPURL string // RabbitMQ URL; empty disables event publishing
}

// NDCConfig describes the upstream airline endpoint.
type NDCConfig struct {
	Endpoint    string
	SOAPAction  string
	Timeout     time.Duration
	OwnerCode   string
	CountryCode string
	AgencyID    string
}

// DBConfig is the optional MySQL audit store.
type DBConfig struct {
	User string
	Pass string
	Host string
	Port string
	Name string
}

// Enabled reports whether enough is set to open a connection.
func (d DBConfig) Enabled() bool {
	return d.User != "" && d.Host != "" && d.Name != ""
}

const defaultSeatCharacteristics = "1,8,E,V"

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:  must("APP_ENV"),
		Port: must("APP_PORT"),
		NDC: NDCConfig{
			Endpoint:    must("NDC_ENDPOINT"),
			SOAPAction:  envStr("NDC_SOAP_ACTION", ""),
			Timeout:     envDur("NDC_TIMEOUT", 30*time.Second),
			OwnerCode:   envStr("NDC_OWNER_CODE", "TR"),
			CountryCode: envStr("NDC_COUNTRY_CODE", "SG"),
			AgencyID:    envStr("NDC_AGENCY_ID", ""),
		},
		RequiredSeatCharacteristics: splitList(envStr("REQUIRED_SEAT_CHARACTERISTICS", defaultSeatCharacteristics)),
		JWTSecret:                   os.Getenv("JWT_SECRET"),
		AuthRoles:                   splitList(os.Getenv("AUTH_ROLES")),
		DB: DBConfig{
			User: os.Getenv("DB_USER"),
			Pass: os.Getenv("DB_PASS"),
			Host: os.Getenv("DB_HOST"),
			Port: envStr("DB_PORT", "3306"),
			Name: os.Getenv("DB_NAME"),
		},
		AMQPURL: amqpURL(),
	}
}

// amqpURL prefers RABBITMQ_URL and falls back to AMQP_URL.
func amqpURL() string {
	if v := os.Getenv("RABBITMQ_URL"); v != "" {
		return v
	}
	return os.Getenv("AMQP_URL")
}

// splitList turns "a, b,,c" into [a b c].
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
