package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"caretrack/internal/shared/biztime"
)

type TokenType string

const (
	TokenTypeAccess TokenType = "access"
)

// Claims are the facility-scoped claims embedded in every access token.
// Token issuance lives in the identity service; this package only mints
// tokens for tests and local tooling, and verifies inbound ones.
type Claims struct {
	FacilityID uint      `json:"facility_id"`
	ActorName  string    `json:"actor_name"`
	Role       string    `json:"role"`
	TokenType  TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
}

func NewJWTService(secret string, accessExpMinutes int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
	}
}

// Generate mints a facility-scoped access token.
func (s *JWTService) Generate(facilityID uint, actorName, role string) (string, error) {
	now := biztime.NowUTC()

	exp := now.Add(time.Duration(s.accessExpMinutes) * time.Minute)
	claims := &Claims{
		FacilityID: facilityID,
		ActorName:  actorName,
		Role:       role,
		TokenType:  TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return signed, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
