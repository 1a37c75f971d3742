package access

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformedToken = errors.New("malformed session token")
	ErrMissingExpiry  = errors.New("session token has no exp claim")
)

// Claims is the part of a session token this package consults.
type Claims struct {
	Subject   string
	Roles     []Role
	ExpiresAt int64 // unix seconds
}

// Decoder turns a raw session token into Claims.
type Decoder interface {
	Decode(raw string) (Claims, error)
}

type tokenClaims struct {
	Roles []string `json:"roles"`
	// older tokens carry a single role
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTDecoder decodes HS256 session tokens. With an empty Secret the signature is not
// checked, which matches what the dashboard itself can do with a token it holds.
// Expiry is never validated here; the Controller applies its own exp rule.
type JWTDecoder struct {
	Secret []byte
}

func NewJWTDecoder(secret string) JWTDecoder {
	return JWTDecoder{Secret: []byte(secret)}
}

func (d JWTDecoder) Decode(raw string) (Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Claims{}, ErrMalformedToken
	}

	var tc tokenClaims
	var err error
	if len(d.Secret) == 0 {
		_, _, err = jwt.NewParser(jwt.WithoutClaimsValidation()).ParseUnverified(raw, &tc)
	} else {
		_, err = jwt.ParseWithClaims(raw, &tc, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenUnverifiable
			}
			return d.Secret, nil
		}, jwt.WithoutClaimsValidation(), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	}
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	if tc.ExpiresAt == nil {
		return Claims{}, ErrMissingExpiry
	}

	roles := make([]Role, 0, len(tc.Roles)+1)
	for _, r := range tc.Roles {
		if r = strings.TrimSpace(r); r != "" {
			roles = append(roles, Role(r))
		}
	}
	if len(roles) == 0 && strings.TrimSpace(tc.Role) != "" {
		roles = append(roles, Role(strings.TrimSpace(tc.Role)))
	}

	return Claims{
		Subject:   tc.Subject,
		Roles:     roles,
		ExpiresAt: tc.ExpiresAt.Unix(),
	}, nil
}
