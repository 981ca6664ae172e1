// internal/utils/jwt.go
package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// JWTClaims mirrors the token minted by the upstream identity provider.
// Supplier tokens carry tenant_id and supplier_id; admin tokens carry only
// user_id and user_type.
type JWTClaims struct {
	UserID     string `json:"user_id"`
	UserType   string `json:"user_type"`
	TenantID   string `json:"tenant_id,omitempty"`
	SupplierID string `json:"supplier_id,omitempty"`
	Email      string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

var jwtSecret = []byte("your-secret-key-change-in-production")

func SetJWTSecret(secret string) {
	jwtSecret = []byte(secret)
}

// GenerateJWT mints a token with the same claim shape the identity provider
// uses. Only exercised by local development and tests; production tokens come
// from upstream.
func GenerateJWT(userID, userType, tenantID, supplierID, email string, ttlHours int) (string, error) {
	claims := JWTClaims{
		UserID:     userID,
		UserType:   userType,
		TenantID:   tenantID,
		SupplierID: supplierID,
		Email:      email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(ttlHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "ratnasetu",
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ValidateJWT(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
