package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	pkgauth "github.com/ainnoce10/ebf-backend/pkg/auth"
	"github.com/ainnoce10/ebf-backend/pkg/config"
)

// parseExpired validates signature and issuer but tolerates an elapsed expiry,
// which is the normal state of an access token presented for refresh.
func parseExpired(cfg config.JWTConfig, tokenString string) (*pkgauth.AccessTokenClaims, error) {
	claims := &pkgauth.AccessTokenClaims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return []byte(cfg.Secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return nil, err
	}
	if claims.Issuer != cfg.Issuer {
		return nil, fmt.Errorf("unexpected issuer")
	}
	return claims, nil
}
