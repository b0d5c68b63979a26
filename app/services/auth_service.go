package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"snapfeed/app/apperr"
	"snapfeed/app/models"
	"snapfeed/app/repositories"
	"snapfeed/app/token"
	"snapfeed/app/validation"
)

const bcryptCost = 12

// Login failure sentinels. Both carry 401; the REST surface remaps the
// wrong-password case to its own observed status.
var (
	ErrUserNotFound  = apperr.Unauthenticated("User not found")
	ErrWrongPassword = apperr.Unauthenticated("Incorrect Password")
)

// AuthService handles signup, login and user-profile mutations.
type AuthService struct {
	users  repositories.UserRepository
	tokens *token.Service
	log    *logrus.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users repositories.UserRepository, tokens *token.Service, log *logrus.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log}
}

// Signup validates the input, rejects duplicate emails and creates the user
// with a hashed password and the default status.
func (s *AuthService) Signup(input validation.SignupInput) (*UserView, error) {
	if fields := validation.Check(input); len(fields) > 0 {
		return nil, apperr.InvalidInput("Invalid input", fields)
	}

	_, err := s.users.GetByEmail(input.Email)
	if err == nil {
		return nil, apperr.Conflict("User already exist")
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    input.Email,
		Password: string(hashed),
		Name:     input.Name,
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return nil, apperr.Conflict("User already exist")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.WithField("email", user.Email).Info("user created")
	return userView(user), nil
}

// Login verifies the credentials and issues a session token.
func (s *AuthService) Login(email, password string) (*AuthPayload, error) {
	user, err := s.users.GetByEmail(email)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrWrongPassword
	}

	t, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthPayload{Token: t, UserID: user.ID.String()}, nil
}

// User returns the authenticated user's projection.
func (s *AuthService) User(auth models.AuthContext) (*UserView, error) {
	if !auth.IsAuthenticated {
		return nil, apperr.Unauthenticated("Not Authenticated")
	}

	user, err := s.users.GetByID(auth.UserID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.NotFound("User Not Found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return userView(user), nil
}

// UpdateStatus sets the authenticated user's status text. Only the owner
// reaches its own record here; no further authorization applies.
func (s *AuthService) UpdateStatus(auth models.AuthContext, status string) (*UserView, error) {
	if !auth.IsAuthenticated {
		return nil, apperr.Unauthenticated("Not Authenticated")
	}

	user, err := s.users.GetByID(auth.UserID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.NotFound("User Not Found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	user.Status = status
	if err := s.users.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return userView(user), nil
}
