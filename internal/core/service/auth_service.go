package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/atmavision/booking-system/internal/api/metrics"
	"github.com/atmavision/booking-system/internal/core/domain"
	"github.com/atmavision/booking-system/internal/core/ports"
)

// AuthService implements registration, login and role administration over the
// user store. Credentials are matched exactly against the stored plaintext
// password — the seed logins depend on this, so it must not be "hardened" with
// hashing.
type AuthService struct {
	store     ports.UserStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(store ports.UserStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{store: store, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

var _ ports.AuthService = (*AuthService)(nil)

// Register creates a CLIENT account and establishes a session for it.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	candidate := domain.User{
		ID:       domain.NewID("user"),
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     domain.RoleClient,
	}

	user, err := s.store.Register(ctx, candidate)
	if err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	user, err := s.store.Login(ctx, email, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user logged in")
	return &ports.AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.store.Logout(ctx)
}

func (s *AuthService) CurrentUser(ctx context.Context) (*domain.User, error) {
	return s.store.CurrentUser(ctx)
}

func (s *AuthService) Users(ctx context.Context) ([]domain.User, error) {
	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, err
	}
	// Never hand passwords to the transport layer.
	sanitized := make([]domain.User, 0, len(users))
	for _, u := range users {
		sanitized = append(sanitized, u.Sanitized())
	}
	return sanitized, nil
}

func (s *AuthService) Operators(ctx context.Context) ([]domain.User, error) {
	operators, err := s.store.Operators(ctx)
	if err != nil {
		return nil, err
	}
	sanitized := make([]domain.User, 0, len(operators))
	for _, u := range operators {
		sanitized = append(sanitized, u.Sanitized())
	}
	return sanitized, nil
}

func (s *AuthService) ChangeRole(ctx context.Context, userID string, role domain.Role) error {
	if err := s.store.ChangeRole(ctx, userID, role); err != nil {
		return err
	}
	s.log.Info().Str("user_id", userID).Str("role", string(role)).Msg("role changed")
	return nil
}

func (s *AuthService) generateToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"name":    user.Name,
		"role":    string(user.Role),
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
