package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/arkhami/duitku/internal/pkg/apperrors"
	jwtpkg "github.com/arkhami/duitku/internal/pkg/jwt"
	"github.com/arkhami/duitku/internal/pkg/logger"
	"github.com/arkhami/duitku/internal/pkg/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 6

// Register creates a new account and logs the user in
func (u *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if err := validateRegisterRequest(req); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Reject duplicate emails before inserting
	_, err := u.userRepo.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, apperrors.Validation("email", "already registered")
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    email,
		FullName: req.Name,
		Password: string(hashedPassword),
	}

	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("Registered new user", logrus.Fields{"user_id": user.ID.String()})

	return u.authResponse(user)
}

// Login authenticates a user by email and password
func (u *UserUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req.Email == "" {
		return nil, apperrors.Validation("email", "is required")
	}
	if req.Password == "" {
		return nil, apperrors.Validation("password", "is required")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Unknown email and wrong password are indistinguishable to the caller
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("invalid email or password: %w", apperrors.ErrAuthentication)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid email or password: %w", apperrors.ErrAuthentication)
	}

	return u.authResponse(user)
}

// authResponse issues a token for the given user
func (u *UserUC) authResponse(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

func validateRegisterRequest(req *models.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.Validation("name", "is required")
	}
	if req.Email == "" {
		return apperrors.Validation("email", "is required")
	}
	if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		return apperrors.Validation("email", "is not a valid email address")
	}
	if len(req.Password) < minPasswordLength {
		return apperrors.Validation("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}
	return nil
}
