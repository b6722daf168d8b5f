package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Jonathancraxker/api-ecoparking/internal/apierror"
	"github.com/Jonathancraxker/api-ecoparking/internal/config"
	"github.com/Jonathancraxker/api-ecoparking/internal/dto"
	"github.com/Jonathancraxker/api-ecoparking/internal/model"
	"github.com/Jonathancraxker/api-ecoparking/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Registrar(ctx context.Context, req dto.RegistrarUsuarioRequest) (*dto.UsuarioResponse, error)
	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
	ObtenerUsuario(ctx context.Context, id uint) (*dto.UsuarioResponse, error)
	ActualizarUsuario(ctx context.Context, id uint, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	EliminarUsuario(ctx context.Context, id uint) error
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByCorreo(ctx, req.Correo)
	if err != nil {
		return nil, apierror.ErrUnauthorized
	}
	if user.Estado != model.UsuarioActivo {
		return nil, apierror.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Contrasena), []byte(req.Contrasena)); err != nil {
		return nil, apierror.ErrUnauthorized
	}

	token, err := s.generateToken(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		User:        toUsuarioResponse(user),
	}, nil
}

func (s *authService) Registrar(ctx context.Context, req dto.RegistrarUsuarioRequest) (*dto.UsuarioResponse, error) {
	if _, err := s.repo.FindByCorreo(ctx, req.Correo); err == nil {
		return nil, fmt.Errorf("%w: el correo ya esta registrado", apierror.ErrInvalidInput)
	} else if !errors.Is(err, apierror.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Contrasena), 12)
	if err != nil {
		return nil, err
	}
	user := &model.Usuario{
		Nombre:     req.Nombre,
		Apellidos:  req.Apellidos,
		Correo:     req.Correo,
		Contrasena: string(hash),
		Telefono:   req.Telefono,
		Tipo:       model.TipoUsuario,
		Estado:     model.UsuarioActivo,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	resp := toUsuarioResponse(user)
	return &resp, nil
}

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, len(users))
	for i := range users {
		resp[i] = toUsuarioResponse(&users[i])
	}
	return resp, nil
}

func (s *authService) ObtenerUsuario(ctx context.Context, id uint) (*dto.UsuarioResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toUsuarioResponse(user)
	return &resp, nil
}

func (s *authService) ActualizarUsuario(ctx context.Context, id uint, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Nombre != "" {
		user.Nombre = req.Nombre
	}
	if req.Apellidos != "" {
		user.Apellidos = req.Apellidos
	}
	if req.Telefono != nil {
		user.Telefono = req.Telefono
	}
	if req.Tipo != "" {
		user.Tipo = req.Tipo
	}
	if req.Estado != "" {
		user.Estado = req.Estado
	}
	if req.Contrasena != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Contrasena), 12)
		if err != nil {
			return nil, err
		}
		user.Contrasena = string(hash)
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := toUsuarioResponse(user)
	return &resp, nil
}

func (s *authService) EliminarUsuario(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *authService) generateToken(user *model.Usuario, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"correo":  user.Correo,
		"tipo":    user.Tipo,
		"exp":     time.Now().Add(duration).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func toUsuarioResponse(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Apellidos: u.Apellidos,
		Correo:    u.Correo,
		Telefono:  u.Telefono,
		Tipo:      u.Tipo,
		Estado:    u.Estado,
	}
}
