package services

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"eventbackend/internal/auth"
	"eventbackend/internal/domain"
	"eventbackend/internal/repositories"
)

type AuthService struct {
	Users  repositories.UserRepository
	Tokens auth.Issuer
}

// SignIn checks userName/password and issues an access and a refresh token.
func (s AuthService) SignIn(ctx context.Context, userName, password string) (auth.TokenPair, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" || password == "" {
		return auth.TokenPair{}, domain.ValidationError{Msg: "userName and password are required"}
	}

	cred, err := s.Users.FindCredentials(ctx, userName)
	if err != nil {
		return auth.TokenPair{}, err
	}
	if !cred.EmailConfirmed {
		return auth.TokenPair{}, domain.ValidationError{Msg: "Please verify your email"}
	}
	if cred.PasswordHash == nil || *cred.PasswordHash == "" {
		return auth.TokenPair{}, domain.ValidationError{Msg: "Invalid credentials"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*cred.PasswordHash), []byte(password)); err != nil {
		return auth.TokenPair{}, domain.ValidationError{Msg: "Invalid credentials"}
	}

	return s.Tokens.Issue(cred.ID, cred.Role)
}

// Refresh exchanges a valid refresh token for a new pair, picking up the
// user's current role.
func (s AuthService) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	claims, err := s.Tokens.Parse(strings.TrimSpace(refreshToken), auth.TypeRefresh)
	if err != nil {
		return auth.TokenPair{}, err
	}

	user, err := s.Users.GetByID(ctx, claims.UserID)
	if err != nil {
		if domain.IsNotFound(err) {
			return auth.TokenPair{}, domain.UnauthorizedError{Msg: "user no longer exists", Err: err}
		}
		return auth.TokenPair{}, err
	}
	if user.IsDeleted {
		return auth.TokenPair{}, domain.UnauthorizedError{Msg: "user is deleted"}
	}
	return s.Tokens.Issue(user.ID, user.Role)
}
