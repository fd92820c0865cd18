package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"eventbackend/internal/domain"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

const (
	DefaultAccessTTL  = 24 * time.Hour
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

// Claims is the payload of both access and refresh tokens.
type Claims struct {
	UserID string `json:"id"`
	Role   string `json:"role"`
	Type   string `json:"typ"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Issuer signs and verifies HS256 tokens with a shared secret.
type Issuer struct {
	Secret     []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	Now        func() time.Time
}

func NewIssuer(secret string) Issuer {
	return Issuer{
		Secret:     []byte(secret),
		AccessTTL:  DefaultAccessTTL,
		RefreshTTL: DefaultRefreshTTL,
		Now:        time.Now,
	}
}

func (i Issuer) now() time.Time {
	if i.Now != nil {
		return i.Now()
	}
	return time.Now()
}

func (i Issuer) Issue(userID, role string) (TokenPair, error) {
	access, err := i.sign(userID, role, TypeAccess, i.AccessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := i.sign(userID, role, TypeRefresh, i.RefreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (i Issuer) sign(userID, role, typ string, ttl time.Duration) (string, error) {
	if len(i.Secret) == 0 {
		return "", domain.InternalError{Msg: "token secret is not configured"}
	}
	now := i.now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		Type:   typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.Secret)
	if err != nil {
		return "", domain.InternalError{Msg: "failed to sign token", Err: err}
	}
	return signed, nil
}

// Parse verifies signature, expiry and token type.
func (i Issuer) Parse(token, typ string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return i.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))
	if err != nil {
		msg := "invalid token"
		if errors.Is(err, jwt.ErrTokenExpired) {
			msg = "token expired"
		}
		return Claims{}, domain.UnauthorizedError{Msg: msg, Err: err}
	}
	if claims.Type != typ {
		return Claims{}, domain.UnauthorizedError{Msg: "wrong token type"}
	}
	return claims, nil
}
