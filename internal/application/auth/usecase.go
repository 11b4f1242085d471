package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/logistica-api/internal/application/dto"
	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
	"github.com/jhoicas/logistica-api/pkg/jwt"
)

// JWTConfig configuración para emisión de tokens.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// AuthUseCase casos de uso de autenticación: registro y login.
// Ambos emiten un token bearer con el email como subject y validez fija.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: verifica que el email no exista, hashea el
// password con bcrypt, persiste y devuelve el token de acceso.
// La unicidad del email se chequea en el registro, no con un constraint;
// el índice único de la tabla actúa solo como red de seguridad.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.TokenResponse, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashear password: %w", err)
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		CompanyName:  in.CompanyName,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return uc.issueToken(user.Email)
}

// Login verifica email/password y emite un token nuevo.
// Email desconocido y password incorrecto se reportan igual (ErrUnauthorized)
// para no revelar qué cuentas existen.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.issueToken(user.Email)
}

func (uc *AuthUseCase) issueToken(email string) (*dto.TokenResponse, error) {
	ttl := time.Duration(uc.jwtCfg.ExpHours) * time.Hour
	token, err := jwt.Generate(uc.jwtCfg.Secret, email, uc.jwtCfg.Issuer, ttl)
	if err != nil {
		return nil, fmt.Errorf("emitir token: %w", err)
	}
	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}
