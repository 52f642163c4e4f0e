package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/ndc-seat-availability/internal/config"
	"github.com/iliyamo/ndc-seat-availability/internal/utils"
)

const seatRoute = "/ndc/v1/sc/seat_availability"

func newContext(method, body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, seatRoute, strings.NewReader(body))
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath(seatRoute)
	return c
}

func TestCacheKeyIncludesBody(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "seatmap", KeyStrategy: "method_route_body"}

	a := newContext(http.MethodPost, `{"ndc_params":{"offer_id":"A"}}`)
	b := newContext(http.MethodPost, `{"ndc_params":{"offer_id":"B"}}`)
	a2 := newContext(http.MethodPost, `{"ndc_params":{"offer_id":"A"}}`)

	keyA := cacheKeyFrom(cfg, a)
	assert.True(t, strings.HasPrefix(keyA, "seatmap:"))
	assert.NotEqual(t, keyA, cacheKeyFrom(cfg, b))
	assert.Equal(t, keyA, cacheKeyFrom(cfg, a2))

	body, err := io.ReadAll(a.Request().Body)
	require.NoError(t, err)
	assert.Equal(t, `{"ndc_params":{"offer_id":"A"}}`, string(body), "body stays readable for the handler")
}

func TestCacheKeyRouteStrategyIgnoresBody(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "seatmap", KeyStrategy: "route"}
	assert.Equal(t,
		cacheKeyFrom(cfg, newContext(http.MethodPost, "a")),
		cacheKeyFrom(cfg, newContext(http.MethodPost, "b")))
}

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": {"application/json"}}
	bs, err := encodePayload(http.StatusOK, hdr, []byte(`{"status_code":200}`))
	require.NoError(t, err)

	status, gotHdr, body, ok := decodePayload(bs)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, hdr, gotHdr)
	assert.Equal(t, `{"status_code":200}`, string(body))

	_, _, _, ok = decodePayload(bs[:5])
	assert.False(t, ok)
}

func TestCaptureWriterLimit(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 4}
	_, _ = cw.Write([]byte("abc"))
	_, _ = cw.Write([]byte("def"))

	assert.Equal(t, "abcd", cw.buf.String())
	assert.Equal(t, int64(6), cw.size)
	assert.Equal(t, "abcdef", rec.Body.String())
}

func TestDisabledMiddlewaresPassThrough(t *testing.T) {
	called := 0
	next := func(c echo.Context) error { called++; return nil }

	require.NoError(t, NewRedisCache(config.CacheConfig{Enabled: true}, nil)(next)(newContext(http.MethodPost, "")))
	require.NoError(t, NewTokenBucket(config.RateLimitConfig{Enabled: true}, nil)(next)(newContext(http.MethodPost, "")))
	assert.Equal(t, 2, called)
}

func TestBuildRateKey(t *testing.T) {
	c := newContext(http.MethodPost, "")
	c.Set("user_id", "agency-42")
	key := buildRateKey(config.RateLimitConfig{Prefix: "rl", KeyStrategy: "user_route"}, c)
	assert.Equal(t, "rl:user:agency-42:route:POST "+seatRoute, key)

	anon := buildRateKey(config.RateLimitConfig{Prefix: "rl", KeyStrategy: "user"}, newContext(http.MethodGet, ""))
	assert.Equal(t, "rl:user:anon", anon)
}

func TestParseBucketResult(t *testing.T) {
	allowed, remaining, retry, ok := parseBucketResult([]interface{}{int64(0), int64(0), int64(1500)})
	require.True(t, ok)
	assert.False(t, allowed)
	assert.Equal(t, int64(0), remaining)
	assert.Equal(t, int64(1500), retry)

	_, _, _, ok = parseBucketResult("nope")
	assert.False(t, ok)
}

func TestJWTAuthAndRole(t *testing.T) {
	const secret = "s3cret"
	e := echo.New()
	g := e.Group("", JWTAuth(secret), RequireRole("AGENT"))
	g.POST(seatRoute, func(c echo.Context) error {
		return c.String(http.StatusOK, userID(c))
	})

	agent, err := utils.NewAccessToken(secret, "agency-42", "AGENT", 5)
	require.NoError(t, err)
	other, err := utils.NewAccessToken(secret, "agency-7", "VIEWER", 5)
	require.NoError(t, err)
	forged, err := utils.NewAccessToken("other", "agency-42", "AGENT", 5)
	require.NoError(t, err)

	tests := []struct {
		name   string
		auth   string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + forged.Token, http.StatusUnauthorized},
		{"wrong role", "Bearer " + other.Token, http.StatusForbidden},
		{"ok", "Bearer " + agent.Token, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, seatRoute, nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "agency-42", rec.Body.String())
			}
		})
	}
}

func TestRequireRoleWithoutRolesAllowsAll(t *testing.T) {
	c := newContext(http.MethodPost, "")
	err := RequireRole()(func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, c.Response().Status)
}

func TestExpiredTokenRejected(t *testing.T) {
	tok, err := utils.NewAccessToken("s3cret", "agency-42", "AGENT", -1)
	require.NoError(t, err)
	require.True(t, tok.Exp.Before(time.Now()))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, seatRoute, nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, JWTAuth("s3cret")(func(echo.Context) error { return nil })(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
