package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/atmavision/booking-system/internal/core/domain"
	"github.com/atmavision/booking-system/internal/core/ports"
)

const testSecret = "test-secret"

func seedStubUsers(store *stubStore) {
	store.users = []domain.User{
		{ID: "client-1", Name: "Анна Клиент", Email: "client@atma.vision", Password: "client", Role: domain.RoleClient},
		{ID: "operator-1", Name: "Иван Оператор", Email: "operator@atma.vision", Password: "operator", Role: domain.RoleOperator},
		{ID: "admin-1", Name: "Главный Менеджер", Email: "admin@atma.vision", Password: "admin", Role: domain.RoleManager},
	}
}

func parseClaims(t *testing.T, token string) jwt.MapClaims {
	t.Helper()
	parsed, err := jwt.Parse(token, func(tk *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil {
		t.Fatalf("token does not parse: %v", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("unexpected claims type %T", parsed.Claims)
	}
	return claims
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestAuthService_Register_CreatesClient(t *testing.T) {
	store := newStubStore()
	svc := NewAuthService(store, testSecret, 0, discardLogger)

	result, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Новый Клиент",
		Email:    "new@example.com",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(result.User.ID, "user-") {
		t.Errorf("user id format wrong: %q", result.User.ID)
	}
	if result.User.Role != domain.RoleClient {
		t.Errorf("new accounts are always clients, got %q", result.User.Role)
	}
	if result.User.Password != "" {
		t.Error("result must not carry the password")
	}
	if result.Token == "" {
		t.Error("register must issue a token")
	}

	// The stored record keeps the plaintext password for later logins.
	if len(store.users) != 1 || store.users[0].Password != "secret" {
		t.Errorf("stored user wrong: %+v", store.users)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	store := newStubStore()
	seedStubUsers(store)
	svc := NewAuthService(store, testSecret, 0, discardLogger)

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Самозванец",
		Email:    "client@atma.vision",
		Password: "x",
	})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestAuthService_Login_TokenCarriesIdentityClaims(t *testing.T) {
	store := newStubStore()
	seedStubUsers(store)
	svc := NewAuthService(store, testSecret, 0, discardLogger)

	result, err := svc.Login(context.Background(), "operator@atma.vision", "operator")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := parseClaims(t, result.Token)
	if claims["user_id"] != "operator-1" {
		t.Errorf("user_id claim: got %v", claims["user_id"])
	}
	if claims["name"] != "Иван Оператор" {
		t.Errorf("name claim: got %v", claims["name"])
	}
	if claims["role"] != "OPERATOR" {
		t.Errorf("role claim: got %v", claims["role"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Error("token must expire")
	}
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	store := newStubStore()
	seedStubUsers(store)
	svc := NewAuthService(store, testSecret, 0, discardLogger)

	_, err := svc.Login(context.Background(), "client@atma.vision", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Listing / role administration
// ---------------------------------------------------------------------------

func TestAuthService_Users_Sanitized(t *testing.T) {
	store := newStubStore()
	seedStubUsers(store)
	svc := NewAuthService(store, testSecret, 0, discardLogger)

	users, err := svc.Users(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	for _, u := range users {
		if u.Password != "" {
			t.Errorf("password leaked for %q", u.ID)
		}
	}
}

func TestAuthService_Operators_FilteredAndSanitized(t *testing.T) {
	store := newStubStore()
	seedStubUsers(store)
	svc := NewAuthService(store, testSecret, 0, discardLogger)

	operators, err := svc.Operators(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(operators) != 1 {
		t.Fatalf("expected 1 operator, got %d", len(operators))
	}
	if operators[0].ID != "operator-1" || operators[0].Password != "" {
		t.Errorf("unexpected operator record: %+v", operators[0])
	}
}

func TestAuthService_ChangeRole_Delegates(t *testing.T) {
	store := newStubStore()
	seedStubUsers(store)
	svc := NewAuthService(store, testSecret, 0, discardLogger)

	if err := svc.ChangeRole(context.Background(), "client-1", domain.RoleOperator); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.users[0].Role != domain.RoleOperator {
		t.Errorf("role not applied, got %q", store.users[0].Role)
	}
}
