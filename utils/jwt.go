package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	PurposeSession = "session"
	PurposeReset   = "reset"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenPurpose = errors.New("token issued for another purpose")
)

// TokenClaims is the decoded view of a token this service issued.
type TokenClaims struct {
	Subject     string
	Email       string
	Role        string
	Purpose     string
	Fingerprint string
}

// TokenManager signs and validates HS256 tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if secret == "" {
		secret = "SALONIFY_DEV_SECRET"
	}
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// GenerateToken creates a signed session token for the given subject and role.
func (m *TokenManager) GenerateToken(subject, email, role string) (string, error) {
	return m.sign(jwt.MapClaims{
		"sub":     subject,
		"email":   email,
		"role":    role,
		"purpose": PurposeSession,
	}, m.ttl)
}

// GenerateResetToken creates a short-lived password reset token. The fingerprint
// ties it to the password hash current at issue time.
func (m *TokenManager) GenerateResetToken(subject, email, fingerprint string, ttl time.Duration) (string, error) {
	return m.sign(jwt.MapClaims{
		"sub":     subject,
		"email":   email,
		"role":    RoleUser,
		"purpose": PurposeReset,
		"fp":      fingerprint,
	}, ttl)
}

func (m *TokenManager) sign(claims jwt.MapClaims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(ttl).Unix()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ValidateToken parses and validates a token string and returns the token if valid.
func (m *TokenManager) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
}

// ParseClaims validates the token and checks it was issued for purpose.
func (m *TokenManager) ParseClaims(tokenString, purpose string) (*TokenClaims, error) {
	token, err := m.ValidateToken(tokenString)
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	out := &TokenClaims{
		Subject:     stringClaim(claims, "sub"),
		Email:       stringClaim(claims, "email"),
		Role:        stringClaim(claims, "role"),
		Purpose:     stringClaim(claims, "purpose"),
		Fingerprint: stringClaim(claims, "fp"),
	}
	if out.Subject == "" {
		return nil, ErrInvalidToken
	}
	if out.Purpose != purpose {
		return nil, ErrTokenPurpose
	}
	return out, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
