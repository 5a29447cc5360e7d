package auth

import (
	"context"
	"testing"
	"time"

	"rehab-app/internal/config"
	"rehab-app/internal/database"
	"rehab-app/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserDB struct {
	database.Database
	users map[string]*models.User
}

func (f *fakeUserDB) CreateUser(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	user := &models.User{
		ID:       len(f.users) + 1,
		Name:     req.Name,
		Email:    req.Email,
		Username: req.Username,
		Role:     req.Role,
	}
	f.users[req.Username] = user
	return user, nil
}

// Lookups return copies, like scanning a fresh row.
func (f *fakeUserDB) GetUserByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	if u, ok := f.users[identifier]; ok {
		copied := *u
		return &copied, nil
	}
	for _, u := range f.users {
		if u.Email == identifier {
			copied := *u
			return &copied, nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *fakeUserDB) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, database.ErrNotFound
}

func testService() (*Service, *fakeUserDB) {
	db := &fakeUserDB{users: make(map[string]*models.User)}
	cfg := &config.Config{}
	cfg.JWT.Secret = []byte("test-secret")
	cfg.JWT.ExpiresIn = time.Hour
	return NewService(db, cfg), db
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := testService()

	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"missing fields", models.RegisterRequest{Username: "alice"}},
		{"bad email", models.RegisterRequest{Name: "Alice", Username: "alice", Email: "nope", Password: "longenough", Role: models.RoleGuardian}},
		{"short password", models.RegisterRequest{Name: "Alice", Username: "alice", Email: "a@b.com", Password: "short", Role: models.RoleGuardian}},
		{"short username", models.RegisterRequest{Name: "Alice", Username: "al", Email: "a@b.com", Password: "longenough", Role: models.RoleGuardian}},
		{"unknown role", models.RegisterRequest{Name: "Alice", Username: "alice", Email: "a@b.com", Password: "longenough", Role: "superuser"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), &tt.req)
			assert.Error(t, err)
		})
	}
}

func TestRegisterSuccess(t *testing.T) {
	svc, db := testService()

	user, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Alice",
		Username: "alice",
		Email:    "alice@example.com",
		Password: "longenough",
		Role:     models.RoleProfessional,
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Contains(t, db.users, "alice")
}

func TestLoginByUsernameAndEmail(t *testing.T) {
	svc, db := testService()

	hash, err := bcrypt.GenerateFromPassword([]byte("longenough"), bcrypt.DefaultCost)
	require.NoError(t, err)
	db.users["alice"] = &models.User{
		ID:           1,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleGuardian,
	}

	for _, identifier := range []string{"alice", "alice@example.com"} {
		resp, err := svc.Login(context.Background(), &models.LoginRequest{
			Identifier: identifier,
			Password:   "longenough",
		})
		require.NoError(t, err, "identifier %q", identifier)
		assert.NotEmpty(t, resp.Token)
		assert.Empty(t, resp.User.PasswordHash)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, db := testService()

	hash, _ := bcrypt.GenerateFromPassword([]byte("rightpassword"), bcrypt.DefaultCost)
	db.users["alice"] = &models.User{ID: 1, Username: "alice", PasswordHash: string(hash)}

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Identifier: "alice",
		Password:   "wrongpassword",
	})
	assert.Error(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	svc, db := testService()
	db.users["alice"] = &models.User{ID: 1, Username: "alice", Role: models.RoleAdmin}

	token, err := svc.generateToken(db.users["alice"])
	require.NoError(t, err)

	user, err := svc.GetUserFromToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, (*claims)["role"])
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc, _ := testService()

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
