package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// Issuer is stamped on every token this service signs.
const Issuer = "tutor-match"

const (
	defaultTTL = 24 * time.Hour
	clockSkew  = time.Minute
)

// Claims is the caller identity carried in a token. Role is "user" (tutor),
// "parent" or empty, which later defaults to tutor.
type Claims struct {
	Sub   string `json:"sub"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
	Iss   string `json:"iss,omitempty"`
	Exp   int64  `json:"exp,omitempty"`
	Iat   int64  `json:"iat,omitempty"`
}

// ErrInvalidToken covers every reason a token is refused.
var ErrInvalidToken = errors.New("invalid token")

var settings struct {
	mu     sync.RWMutex
	secret string
	ttl    time.Duration
}

// Configure sets the signing secret and token lifetime resolved by config.
// An empty secret or non-positive ttl falls back to JWT_SECRET / JWT_TTL and
// then to the dev secret and 24h. Whether a dev secret is acceptable is
// decided when the app is built.
func Configure(secret string, ttl time.Duration) {
	settings.mu.Lock()
	defer settings.mu.Unlock()
	settings.secret = strings.TrimSpace(secret)
	settings.ttl = ttl
}

type header struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

var encodedHeader = mustEncode(header{Alg: "HS256", Typ: "JWT"})

// SignJWT signs claims with HS256. Iat, Exp and Iss are filled when unset;
// the lifetime comes from Configure or JWT_TTL (default 24h).
func SignJWT(claims Claims) (string, error) {
	secret := secretKey()
	if claims.Sub == "" {
		return "", errors.New("sub is required")
	}
	if !knownRole(claims.Role) {
		return "", fmt.Errorf("unknown role %q", claims.Role)
	}

	now := time.Now().UTC()
	if claims.Iat == 0 {
		claims.Iat = now.Unix()
	}
	if claims.Exp == 0 {
		claims.Exp = now.Add(tokenTTL()).Unix()
	}
	if claims.Iss == "" {
		claims.Iss = Issuer
	}

	payload, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}
	signingInput := encodedHeader + "." + base64.RawURLEncoding.EncodeToString(payload)
	return signingInput + "." + sign(signingInput, secret), nil
}

// VerifyJWT checks the signature, algorithm, issuer, role and lifetime of a
// token and returns its claims.
func VerifyJWT(token string) (Claims, error) {
	secret := secretKey()

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return Claims{}, ErrInvalidToken
	}

	var h header
	if err := decodeSegment(parts[0], &h); err != nil || h.Alg != "HS256" {
		return Claims{}, ErrInvalidToken
	}
	if !hmac.Equal([]byte(parts[2]), []byte(sign(parts[0]+"."+parts[1], secret))) {
		return Claims{}, ErrInvalidToken
	}

	var claims Claims
	if err := decodeSegment(parts[1], &claims); err != nil {
		return Claims{}, ErrInvalidToken
	}
	if claims.Sub == "" || claims.Iss != Issuer || !knownRole(claims.Role) {
		return Claims{}, ErrInvalidToken
	}

	now := time.Now().UTC()
	if claims.Exp > 0 && now.Unix() > claims.Exp {
		return Claims{}, ErrInvalidToken
	}
	if claims.Iat > now.Add(clockSkew).Unix() {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}

func knownRole(role string) bool {
	switch role {
	case "", "user", "parent":
		return true
	}
	return false
}

func decodeSegment(seg string, v any) error {
	raw, err := base64.RawURLEncoding.DecodeString(seg)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

func mustEncode(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

func sign(input string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(input))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func tokenTTL() time.Duration {
	settings.mu.RLock()
	ttl := settings.ttl
	settings.mu.RUnlock()
	if ttl > 0 {
		return ttl
	}
	if d, err := time.ParseDuration(strings.TrimSpace(os.Getenv("JWT_TTL"))); err == nil && d > 0 {
		return d
	}
	return defaultTTL
}

func secretKey() []byte {
	settings.mu.RLock()
	secret := settings.secret
	settings.mu.RUnlock()
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	}
	if secret == "" {
		secret = "dev-secret"
	}
	return []byte(secret)
}
