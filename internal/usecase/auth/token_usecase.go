package auth

import (
	"fmt"
	"time"

	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// TokenUseCase issues and verifies HS256 access tokens carrying a user_id
// claim. The user id is the caller's profile id.
type TokenUseCase struct {
	jwtSecret []byte
	expiry    time.Duration
	now       func() time.Time
}

func NewTokenUseCase(jwtSecret string, expiry time.Duration) *TokenUseCase {
	return &TokenUseCase{
		jwtSecret: []byte(jwtSecret),
		expiry:    expiry,
		now:       time.Now,
	}
}

// TokenResponse represents an issued access token
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IssueToken signs a token for userID
func (uc *TokenUseCase) IssueToken(userID int) (*TokenResponse, error) {
	now := uc.now()
	expiresAt := now.Add(uc.expiry)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     expiresAt.Unix(),
		"iat":     now.Unix(),
	})

	tokenString, err := token.SignedString(uc.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &TokenResponse{Token: tokenString, ExpiresAt: expiresAt}, nil
}

// VerifyToken verifies JWT token and returns user ID
func (uc *TokenUseCase) VerifyToken(tokenString string) (int, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return uc.jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(uc.now),
	)
	if err != nil || !token.Valid {
		return 0, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, domain.ErrInvalidToken
	}

	// JSON numbers decode as float64
	userID, ok := claims["user_id"].(float64)
	if !ok || userID < 1 {
		return 0, domain.ErrInvalidToken
	}

	return int(userID), nil
}
