package service

import (
	"context"
	"testing"

	"github.com/Jonathancraxker/api-ecoparking/internal/apierror"
	"github.com/Jonathancraxker/api-ecoparking/internal/config"
	"github.com/Jonathancraxker/api-ecoparking/internal/dto"
	"github.com/Jonathancraxker/api-ecoparking/internal/model"
	"github.com/Jonathancraxker/api-ecoparking/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubUsuarioStore struct {
	usuarios  map[uint]*model.Usuario
	siguiente uint
}

var _ repository.UsuarioRepository = (*stubUsuarioStore)(nil)

func newStubUsuarioStore() *stubUsuarioStore {
	return &stubUsuarioStore{usuarios: make(map[uint]*model.Usuario), siguiente: 1}
}

func (r *stubUsuarioStore) Create(_ context.Context, u *model.Usuario) error {
	u.ID = r.siguiente
	r.siguiente++
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioStore) FindByID(_ context.Context, id uint) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, apierror.ErrNotFound
	}
	return u, nil
}

func (r *stubUsuarioStore) FindByCorreo(_ context.Context, correo string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Correo == correo {
			return u, nil
		}
	}
	return nil, apierror.ErrNotFound
}

func (r *stubUsuarioStore) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioStore) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioStore) Delete(_ context.Context, id uint) error {
	if _, ok := r.usuarios[id]; !ok {
		return apierror.ErrNotFound
	}
	delete(r.usuarios, id)
	return nil
}

func cfgDePrueba() *config.Config {
	return &config.Config{JWTSecret: "secreto-de-prueba", JWTExpirationHours: 24}
}

func sembrarUsuario(t *testing.T, store *stubUsuarioStore, correo, password, tipo, estado string) *model.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.Usuario{Nombre: "Prueba", Correo: correo, Contrasena: string(hash), Tipo: tipo, Estado: estado}
	require.NoError(t, store.Create(context.Background(), u))
	return u
}

func TestAuthLogin(t *testing.T) {
	store := newStubUsuarioStore()
	u := sembrarUsuario(t, store, "ana@ecoparking.mx", "clave123", model.TipoAdministrador, model.UsuarioActivo)
	svc := NewAuthService(store, cfgDePrueba())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Correo: "ana@ecoparking.mx", Contrasena: "clave123"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 24*3600, resp.ExpiresIn)
	assert.Equal(t, u.Correo, resp.User.Correo)

	// El token trae los claims que el middleware espera.
	token, err := jwt.Parse(resp.AccessToken, func(*jwt.Token) (interface{}, error) {
		return []byte("secreto-de-prueba"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "ana@ecoparking.mx", claims["correo"])
	assert.Equal(t, model.TipoAdministrador, claims["tipo"])
}

func TestAuthLoginRechazos(t *testing.T) {
	store := newStubUsuarioStore()
	sembrarUsuario(t, store, "ana@ecoparking.mx", "clave123", model.TipoUsuario, model.UsuarioActivo)
	sembrarUsuario(t, store, "baja@ecoparking.mx", "clave123", model.TipoUsuario, model.UsuarioInactivo)
	svc := NewAuthService(store, cfgDePrueba())

	casos := []dto.LoginRequest{
		{Correo: "nadie@ecoparking.mx", Contrasena: "clave123"}, // correo desconocido
		{Correo: "ana@ecoparking.mx", Contrasena: "incorrecta"}, // password mala
		{Correo: "baja@ecoparking.mx", Contrasena: "clave123"},  // usuario inactivo
	}
	for _, req := range casos {
		_, err := svc.Login(context.Background(), req)
		assert.ErrorIs(t, err, apierror.ErrUnauthorized)
	}
}

func TestAuthRegistrarCorreoDuplicado(t *testing.T) {
	store := newStubUsuarioStore()
	svc := NewAuthService(store, cfgDePrueba())

	resp, err := svc.Registrar(context.Background(), dto.RegistrarUsuarioRequest{
		Nombre: "Ana", Correo: "ana@ecoparking.mx", Contrasena: "clave123",
	})
	require.NoError(t, err)
	assert.Equal(t, model.TipoUsuario, resp.Tipo, "el registro publico nunca crea administradores")

	_, err = svc.Registrar(context.Background(), dto.RegistrarUsuarioRequest{
		Nombre: "Otra Ana", Correo: "ana@ecoparking.mx", Contrasena: "clave456",
	})
	assert.ErrorIs(t, err, apierror.ErrInvalidInput)
}

func TestAuthRegistrarGuardaHashNoElPassword(t *testing.T) {
	store := newStubUsuarioStore()
	svc := NewAuthService(store, cfgDePrueba())

	resp, err := svc.Registrar(context.Background(), dto.RegistrarUsuarioRequest{
		Nombre: "Ana", Correo: "ana@ecoparking.mx", Contrasena: "clave123",
	})
	require.NoError(t, err)

	guardado := store.usuarios[resp.ID]
	assert.NotEqual(t, "clave123", guardado.Contrasena)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.Contrasena), []byte("clave123")))
}

func TestAuthActualizarUsuario(t *testing.T) {
	store := newStubUsuarioStore()
	u := sembrarUsuario(t, store, "ana@ecoparking.mx", "clave123", model.TipoUsuario, model.UsuarioActivo)
	svc := NewAuthService(store, cfgDePrueba())

	resp, err := svc.ActualizarUsuario(context.Background(), u.ID, dto.ActualizarUsuarioRequest{
		Tipo: model.TipoAdministrador, Estado: model.UsuarioInactivo,
	})
	require.NoError(t, err)
	assert.Equal(t, model.TipoAdministrador, resp.Tipo)
	assert.Equal(t, model.UsuarioInactivo, resp.Estado)
	assert.Equal(t, "ana@ecoparking.mx", resp.Correo, "los campos omitidos no cambian")

	_, err = svc.ActualizarUsuario(context.Background(), 99, dto.ActualizarUsuarioRequest{})
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}
