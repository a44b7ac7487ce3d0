package jwt

import (
	"context"
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

// ErrTokenExpired is returned when a token has expired.
var ErrTokenExpired = errors.New("token is expired")

// ErrTokenRevoked is returned when a token is on the Redis blacklist.
var ErrTokenRevoked = errors.New("token is revoked")

// Claims defines the custom JWT claims structure.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwtlib.RegisteredClaims
}

// TokenManager issues and validates access tokens.
type TokenManager interface {
	GenerateAccessToken(userID, username string, accessTokenExp time.Duration) (string, error)
	ValidateAccessToken(ctx context.Context, tokenString string) (*Claims, error)
	IsTokenRevoked(ctx context.Context, tokenString string) (bool, error)
}

// NewTokenManager creates a new TokenManager with the given secret key and Redis client.
// A nil client disables the revocation check.
func NewTokenManager(secretKey string, redisClient *redis.Client) TokenManager {
	return &tokenManager{secretKey: secretKey, redis: redisClient}
}

// NewTokenManagerWithoutRedis creates a new TokenManager that does not use Redis.
func NewTokenManagerWithoutRedis(secretKey string) TokenManager {
	return &tokenManager{secretKey: secretKey}
}

type tokenManager struct {
	secretKey string
	redis     *redis.Client
}

// GenerateAccessToken signs an HS256 access token for a user.
func (j *tokenManager) GenerateAccessToken(userID, username string, accessTokenExp time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(now.Add(accessTokenExp)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// ValidateAccessToken parses the token, checks expiry and, when Redis is configured, the blacklist.
func (j *tokenManager) ValidateAccessToken(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenString, &Claims{}, func(token *jwtlib.Token) (interface{}, error) {
		return []byte(j.secretKey), nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.UserID == "" {
		return nil, errors.New("token has no user id")
	}
	revoked, err := j.IsTokenRevoked(ctx, tokenString)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

// IsTokenRevoked checks if the token is blacklisted in Redis.
func (j *tokenManager) IsTokenRevoked(ctx context.Context, tokenString string) (bool, error) {
	if j.redis == nil {
		return false, nil
	}
	res, err := j.redis.Exists(ctx, j.redisKey(tokenString)).Result()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}

// redisKey generates a Redis key for a JWT token.
func (j *tokenManager) redisKey(tokenString string) string {
	return "jwt:blacklist:" + tokenString
}
