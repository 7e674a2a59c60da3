package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Maximiliano-zm/deudas-service/internal/config"
	"github.com/Maximiliano-zm/deudas-service/internal/middleware"
	"github.com/Maximiliano-zm/deudas-service/internal/models"
	"github.com/Maximiliano-zm/deudas-service/internal/repository"
	"github.com/Maximiliano-zm/deudas-service/internal/storage"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Service handles business logic
type Service struct {
	repo   *repository.Repository
	images *storage.ImageStore
	log    *logrus.Logger
	config *config.Config
}

// NewService initializes a new service
func NewService(repo *repository.Repository, images *storage.ImageStore, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{repo: repo, images: images, log: log, config: cfg}
}

// userID extracts the authenticated user from the request context.
func (s *Service) userID(ctx context.Context) (int64, error) {
	id, ok := middleware.UserID(ctx)
	if !ok {
		return 0, errors.New("user ID not found in context")
	}
	return id, nil
}

// Register creates a new user with hashed password
func (s *Service) Register(username, email, password string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.repo.CreateUser(user); err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *Service) Login(email, password string) (string, error) {
	user, err := s.repo.FindUserByEmail(email)
	if err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", user.ID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Email)
	return tokenString, nil
}
