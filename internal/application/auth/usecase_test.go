package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/logistica-api/internal/application/auth"
	"github.com/jhoicas/logistica-api/internal/application/dto"
	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/logistica-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

// fakeUserRepo repositorio de usuarios en memoria.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) List(_ context.Context, limit int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.byEmail {
		if len(out) == limit {
			break
		}
		out = append(out, u)
	}
	return out, nil
}

func buildAuthUC() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:   testSecret,
		ExpHours: 24,
		Issuer:   "logistica-api-test",
	})
	return uc, repo
}

func registerReq() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:       "ops@acme.example",
		Password:    "contraseña-larga",
		CompanyName: "Acme Logística",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioYEmiteToken(t *testing.T) {
	uc, repo := buildAuthUC()

	out, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)
	assert.Equal(t, "bearer", out.TokenType)

	// El token lleva el email como subject.
	email, err := pkgjwt.Parse(testSecret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ops@acme.example", email)

	user := repo.byEmail["ops@acme.example"]
	require.NotNil(t, user)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Acme Logística", user.CompanyName)
	// El password nunca se persiste en claro.
	assert.NotEqual(t, "contraseña-larga", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("contraseña-larga")))
}

func TestRegister_EmailDuplicado_ErrEmailAlreadyExists(t *testing.T) {
	uc, _ := buildAuthUC()
	_, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), registerReq())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_EmiteToken(t *testing.T) {
	uc, _ := buildAuthUC()
	_, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ops@acme.example",
		Password: "contraseña-larga",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", out.TokenType)
	assert.NotEmpty(t, out.AccessToken)
}

func TestLogin_PasswordIncorrecto_ErrUnauthorized(t *testing.T) {
	uc, _ := buildAuthUC()
	_, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ops@acme.example",
		Password: "otra-contraseña",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailDesconocido_ErrUnauthorized(t *testing.T) {
	// Email desconocido y password incorrecto devuelven el mismo error
	// para no revelar qué cuentas existen.
	uc, _ := buildAuthUC()
	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@acme.example",
		Password: "lo-que-sea",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
