package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lakshanchamidu/Blog-Platform/internal/domain/entity"
	repo "github.com/lakshanchamidu/Blog-Platform/internal/domain/repository"
	"github.com/lakshanchamidu/Blog-Platform/pkg/apperror"
	"github.com/lakshanchamidu/Blog-Platform/pkg/helpers"
	"github.com/lakshanchamidu/Blog-Platform/pkg/mailer"
)

// EmailPublisher enqueues outbound email jobs. The RabbitMQ publisher
// satisfies it; a nil publisher disables email entirely.
type EmailPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// AuthService registers users and exchanges credentials for bearer tokens.
// It holds no per-request state; tokens are stateless.
type AuthService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Pub    EmailPublisher
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, pub EmailPublisher, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Pub: pub, Logger: logger}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register hashes the password and persists a new user. Registration does not
// log the user in; no token is issued.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	// Emails are stored and compared exactly as given; "A@x.com" and
	// "a@x.com" are distinct accounts.
	u := &entity.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, apperror.NewConflict("user already exists", nil)
		}
		return nil, apperror.NewDatabase("failed to create user", err)
	}

	// Best effort: a failed enqueue must not fail the registration.
	if s.Pub != nil {
		if err := s.Pub.PublishJSON(ctx, mailer.WelcomeEmail(u.Email, u.Name)); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("email", u.Email).Warn("welcome email enqueue failed")
		}
	}
	return u, nil
}

// Login verifies the credentials and issues a bearer token bound to the user.
// Unknown email and wrong password are distinct failures by design: the
// original API reports 404 for a missing user and 400 for a bad password.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", time.Time{}, apperror.NewNotFound("user not found", nil)
		}
		return "", time.Time{}, apperror.NewDatabase("failed to get user", err)
	}

	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return "", time.Time{}, apperror.NewInvalidCredentials("invalid credentials", nil)
	}

	token, exp, err := s.JWT.Issue(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("token issue failed")
		}
		return "", time.Time{}, apperror.NewInternal("failed to issue token", err)
	}
	return token, exp, nil
}
