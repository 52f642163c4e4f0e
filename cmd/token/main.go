// Command token issues a bearer token for an NDC API client.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/iliyamo/ndc-seat-availability/internal/utils"
)

func main() {
	_ = godotenv.Load()

	subject := flag.String("sub", "", "client id placed in the sub claim")
	role := flag.String("role", "AGENT", "role claim checked against AUTH_ROLES")
	ttl := flag.Int("ttl", 0, "lifetime in minutes (default ACCESS_TOKEN_TTL_MIN or 15)")
	flag.Parse()

	if *subject == "" {
		log.Fatal("token: -sub is required")
	}
	if *ttl <= 0 {
		*ttl = 15
		if v := os.Getenv("ACCESS_TOKEN_TTL_MIN"); v != "" {
			fmt.Sscanf(v, "%d", ttl)
		}
	}

	tok, err := utils.NewAccessToken(os.Getenv("JWT_SECRET"), *subject, *role, *ttl)
	if err != nil {
		log.Fatalf("token: %v", err)
	}
	fmt.Println(tok.Token)
	fmt.Fprintf(os.Stderr, "expires %s\n", tok.Exp.Format("2006-01-02 15:04:05Z07:00"))
}
