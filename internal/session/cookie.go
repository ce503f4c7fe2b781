package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the one durable piece of client-side state: a signed envelope
// around the backend-issued bearer credential.
const CookieName = "pokefront_session"

// Credentials is what the cookie stores: the backend bearer token and, when
// the backend issues one, a refresh token.
type Credentials struct {
	Token        string
	RefreshToken string
}

type Claims struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	jwt.RegisteredClaims
}

// Codec signs and verifies the session cookie. The signature stops a tampered
// cookie from smuggling an arbitrary header value into backend requests; the
// backend still validates the wrapped token itself.
type Codec struct {
	secret []byte
	expiry time.Duration
	secure bool
}

func NewCodec(secret string, expiry time.Duration, secure bool) *Codec {
	return &Codec{
		secret: []byte(secret),
		expiry: expiry,
		secure: secure,
	}
}

func (c *Codec) Issue(creds Credentials) (string, error) {
	now := time.Now()

	claims := Claims{
		Token:        creds.Token,
		RefreshToken: creds.RefreshToken,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(c.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "pokemon-frontend",
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session cookie: %w", err)
	}
	return signed, nil
}

func (c *Codec) Decode(value string) (*Credentials, error) {
	token, err := jwt.ParseWithClaims(value, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse session cookie: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid session cookie")
	}

	return &Credentials{
		Token:        claims.Token,
		RefreshToken: claims.RefreshToken,
	}, nil
}

// Read extracts credentials from an incoming request. A missing, expired or
// tampered cookie yields nil credentials, never an error the caller must act
// on: no credential and a bad credential are the same thing here.
func (c *Codec) Read(r *http.Request) *Credentials {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	creds, err := c.Decode(cookie.Value)
	if err != nil {
		return nil
	}
	return creds
}

func (c *Codec) Set(w http.ResponseWriter, creds Credentials) error {
	value, err := c.Issue(creds)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(c.expiry.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (c *Codec) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
