package service

import (
	"context"
	"errors"
	"time"

	"github.com/warning2025/farmaciaposventas3/internal/dto"
	"github.com/warning2025/farmaciaposventas3/internal/model"
	"github.com/warning2025/farmaciaposventas3/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("credenciales inválidas")

// Claims travel inside the JWT; the auth middleware rebuilds an Actor from
// them on every request.
type Claims struct {
	UserID            string            `json:"user_id"`
	Name              string            `json:"name"`
	Role              string            `json:"role"`
	BranchAssignments map[string]string `json:"branch_assignments,omitempty"`
	jwt.RegisteredClaims
}

// AuthService issues JWTs and manages operator accounts.
type AuthService struct {
	users     repository.UserRepository
	jwtSecret []byte
	jwtTTL    time.Duration
}

func NewAuthService(users repository.UserRepository, jwtSecret string, expirationHours int) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: []byte(jwtSecret),
		jwtTTL:    time.Duration(expirationHours) * time.Hour,
	}
}

// Login verifies the password and returns a signed token. Inactive accounts
// fail with the same error as a wrong password.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	claims := Claims{
		UserID:            user.ID.String(),
		Name:              user.Name,
		Role:              user.Role,
		BranchAssignments: user.BranchAssignments,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	log.Info().Str("user_id", user.ID.String()).Str("role", user.Role).Msg("inicio de sesión")
	return token, user, nil
}

// ParseToken validates a JWT and returns its claims.
func (s *AuthService) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("método de firma inesperado")
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("token inválido")
	}
	return claims, nil
}

func (s *AuthService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Email:             req.Email,
		Name:              req.Name,
		PasswordHash:      string(hash),
		Role:              req.Role,
		BranchAssignments: req.BranchAssignments,
		Active:            true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err, "") {
			return nil, validationErr("ya existe un usuario con ese correo")
		}
		return nil, err
	}
	log.Info().Str("user_id", user.ID.String()).Str("role", user.Role).Msg("usuario creado")
	return user, nil
}

func (s *AuthService) UpdateUser(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (*model.User, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Role != nil {
		fields["role"] = *req.Role
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}
	if req.BranchAssignments != nil {
		fields["branch_assignments"] = model.BranchAssignments(req.BranchAssignments)
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		fields["password_hash"] = string(hash)
	}
	if len(fields) > 0 {
		if err := s.users.UpdateFields(ctx, id, fields); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
	}
	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

func (s *AuthService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}
