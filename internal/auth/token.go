package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

const issuer = "feedbackpulse"

var ErrInvalidToken = errors.New("invalid token")

// JWTIssuer signs HS256 tokens whose subject is the user ID.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	clock  clockwork.Clock
}

func NewJWTIssuer(secret string, ttl time.Duration, clock clockwork.Clock) *JWTIssuer {
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, clock: clock}
}

func (j *JWTIssuer) Issue(userID uuid.UUID) (string, error) {
	now := j.clock.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// Verify returns the user ID carried by a valid, unexpired token.
// Every failure is reported as ErrInvalidToken.
func (j *JWTIssuer) Verify(token string) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.clock.Now),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad subject: %w", ErrInvalidToken, err)
	}
	return userID, nil
}
