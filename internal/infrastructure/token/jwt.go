package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lipagate/lipagate/internal/shared/config"
)

// Claims is the JWT payload for merchant access tokens.
type Claims struct {
	MerchantID uint `json:"merchant_id"`
	Admin      bool `json:"admin"`
	jwt.RegisteredClaims
}

// JWTIssuer mints and verifies merchant access tokens.
type JWTIssuer struct {
	secret []byte
	expiry time.Duration
}

// NewJWTIssuer creates an issuer from config.
func NewJWTIssuer(cfg *config.JWTConfig) *JWTIssuer {
	expMinutes := cfg.AccessExpMinutes
	if expMinutes <= 0 {
		expMinutes = 60
	}
	return &JWTIssuer{
		secret: []byte(cfg.Secret),
		expiry: time.Duration(expMinutes) * time.Minute,
	}
}

// Issue mints a signed access token.
func (i *JWTIssuer) Issue(merchantID uint, admin bool) (string, error) {
	now := time.Now()
	claims := Claims{
		MerchantID: merchantID,
		Admin:      admin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.expiry)),
			Issuer:    "lipagate",
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify parses and validates a token, returning its claims.
func (i *JWTIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
