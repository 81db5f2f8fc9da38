package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"studytrack/api/internal/config"
	"studytrack/api/internal/ids"
	"studytrack/api/internal/models"
	"studytrack/api/internal/repository"
	"studytrack/api/internal/security"
)

var (
	// ErrInvalidCredentials deliberately covers both unknown email and wrong
	// password so responses never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("user with this email already exists")
)

// UserStore is the slice of the persistence layer the auth service needs.
type UserStore interface {
	Create(ctx context.Context, user models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
}

type AuthService struct {
	users UserStore
	cfg   *config.AppConfig
	log   zerolog.Logger
}

func NewAuthService(users UserStore, cfg *config.AppConfig, log zerolog.Logger) *AuthService {
	return &AuthService{
		users: users,
		cfg:   cfg,
		log:   log,
	}
}

type SignUpInput struct {
	Name           string
	Email          string
	Password       string
	TargetLanguage string
	TargetLevel    string
	DailyGoalHours float64
}

type AuthResult struct {
	Token string
	User  models.User
}

func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (AuthResult, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return AuthResult{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return AuthResult{}, err
	}

	passwordHash, err := security.HashPassword(input.Password)
	if err != nil {
		return AuthResult{}, err
	}

	if input.TargetLanguage == "" {
		input.TargetLanguage = "French"
	}
	if input.TargetLevel == "" {
		input.TargetLevel = string(models.TargetLevelA1)
	}
	if input.DailyGoalHours == 0 {
		input.DailyGoalHours = 4
	}

	user := models.User{
		ID:               ids.New(),
		Email:            input.Email,
		PasswordHash:     passwordHash,
		Name:             input.Name,
		TargetLanguage:   input.TargetLanguage,
		TargetLevel:      models.TargetLevel(input.TargetLevel),
		DailyGoalHours:   input.DailyGoalHours,
		WeeklyGoalHours:  input.DailyGoalHours * 7,
		MonthlyGoalHours: input.DailyGoalHours * 30,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return AuthResult{}, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return AuthResult{}, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user signed up")

	return AuthResult{Token: token, User: user}, nil
}

type SignInInput struct {
	Email    string
	Password string
}

func (s *AuthService) SignIn(ctx context.Context, input SignInInput) (AuthResult, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, err
	}

	ok, err := security.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil || !ok {
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{Token: token, User: user}, nil
}

// CurrentUser resolves claims from a verified token back to the stored user.
func (s *AuthService) CurrentUser(ctx context.Context, claims *security.SessionClaims) (models.User, error) {
	return s.users.GetByID(ctx, claims.UserID)
}

func (s *AuthService) issueToken(user models.User) (string, error) {
	token, err := security.IssueSessionToken(s.cfg.Security.AuthSecret, user.ID, user.Email, s.cfg.Security.TokenTTL)
	if err != nil {
		return "", fmt.Errorf("issue session token: %w", err)
	}
	return token, nil
}
