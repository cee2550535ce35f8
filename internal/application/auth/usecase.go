package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jcastro/stockapp-api/internal/application/dto"
	"github.com/jcastro/stockapp-api/internal/domain"
	"github.com/jcastro/stockapp-api/internal/domain/repository"
	"github.com/jcastro/stockapp-api/pkg/jwt"
)

// JWTConfig parámetros de emisión de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase colaborador de autenticación: verifica credenciales y emite el
// bearer token. El núcleo de stocks asume un caller ya autenticado y no
// realiza autenticación por sí mismo.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login valida email/password contra el hash bcrypt almacenado y devuelve un
// JWT HS256. Credenciales incorrectas devuelven domain.ErrUnauthorized sin
// distinguir entre usuario inexistente y contraseña errónea.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email y password son requeridos", domain.ErrValidation)
	}
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: consultar usuario: %v", domain.ErrPersistence, err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("emitir token: %w", err)
	}
	return &dto.LoginResponse{
		Success: true,
		Token:   token,
		User:    dto.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email},
	}, nil
}
