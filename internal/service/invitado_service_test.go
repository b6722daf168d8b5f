package service

import (
	"context"
	"testing"

	"github.com/Jonathancraxker/api-ecoparking/internal/apierror"
	"github.com/Jonathancraxker/api-ecoparking/internal/dto"
	"github.com/Jonathancraxker/api-ecoparking/internal/model"
	"github.com/Jonathancraxker/api-ecoparking/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubInvitadoStore mantiene el contador igual que el repositorio real: +1 al
// crear, -1 al borrar, siempre junto con la fila del invitado.
type stubInvitadoStore struct {
	citas     map[uint]*model.Cita
	invitados map[uint]*model.Invitado
	siguiente uint
}

var _ repository.InvitadoRepository = (*stubInvitadoStore)(nil)

func newStubInvitadoStore(citas ...*model.Cita) *stubInvitadoStore {
	s := &stubInvitadoStore{
		citas:     make(map[uint]*model.Cita),
		invitados: make(map[uint]*model.Invitado),
		siguiente: 1,
	}
	for _, c := range citas {
		s.citas[c.ID] = c
	}
	return s
}

func (r *stubInvitadoStore) ListByCita(_ context.Context, citaID uint) ([]model.Invitado, error) {
	out := make([]model.Invitado, 0)
	for _, inv := range r.invitados {
		if inv.IDCita == citaID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *stubInvitadoStore) FindByID(_ context.Context, id uint) (*model.Invitado, error) {
	inv, ok := r.invitados[id]
	if !ok {
		return nil, apierror.ErrNotFound
	}
	return inv, nil
}

func (r *stubInvitadoStore) CreateConContador(_ context.Context, inv *model.Invitado) error {
	cita, ok := r.citas[inv.IDCita]
	if !ok {
		return apierror.ErrNotFound
	}
	inv.ID = r.siguiente
	r.siguiente++
	r.invitados[inv.ID] = inv
	cita.NumeroInvitados++
	return nil
}

func (r *stubInvitadoStore) Update(_ context.Context, id uint, inv *model.Invitado) error {
	actual, ok := r.invitados[id]
	if !ok {
		return apierror.ErrNotFound
	}
	actual.Nombre = inv.Nombre
	actual.Correo = inv.Correo
	actual.Empresa = inv.Empresa
	actual.TipoVisitante = inv.TipoVisitante
	return nil
}

func (r *stubInvitadoStore) DeleteConContador(_ context.Context, id uint) error {
	inv, ok := r.invitados[id]
	if !ok {
		return apierror.ErrNotFound
	}
	delete(r.invitados, id)
	r.citas[inv.IDCita].NumeroInvitados--
	return nil
}

func TestInvitadoRegistrarIncrementaContador(t *testing.T) {
	cita := &model.Cita{ID: 4, NumeroInvitados: 0}
	store := newStubInvitadoStore(cita)
	svc := NewInvitadoService(store)

	resp, err := svc.Registrar(context.Background(), dto.RegistrarInvitadoRequest{
		Nombre: "Ana Torres", Correo: "ana@acme.mx", Empresa: "ACME", IDCita: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@acme.mx", resp.Correo)
	assert.Equal(t, 1, cita.NumeroInvitados)

	_, err = svc.Registrar(context.Background(), dto.RegistrarInvitadoRequest{
		Nombre: "Luis Rios", Correo: "luis@acme.mx", IDCita: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, cita.NumeroInvitados)
}

func TestInvitadoEliminarDecrementaContador(t *testing.T) {
	cita := &model.Cita{ID: 4}
	store := newStubInvitadoStore(cita)
	svc := NewInvitadoService(store)

	resp, err := svc.Registrar(context.Background(), dto.RegistrarInvitadoRequest{
		Nombre: "Ana Torres", Correo: "ana@acme.mx", IDCita: 4,
	})
	require.NoError(t, err)
	require.Equal(t, 1, cita.NumeroInvitados)

	require.NoError(t, svc.Eliminar(context.Background(), resp.IDInvitado))
	assert.Equal(t, 0, cita.NumeroInvitados)

	assert.ErrorIs(t, svc.Eliminar(context.Background(), resp.IDInvitado), apierror.ErrNotFound)
	assert.Equal(t, 0, cita.NumeroInvitados, "un borrado fallido no toca el contador")
}

func TestInvitadoRegistrarValidaEntrada(t *testing.T) {
	svc := NewInvitadoService(newStubInvitadoStore(&model.Cita{ID: 4}))

	casos := []dto.RegistrarInvitadoRequest{
		{Correo: "ana@acme.mx", IDCita: 4},         // sin nombre
		{Nombre: "Ana", IDCita: 4},                 // sin correo
		{Nombre: "Ana", Correo: "ana@acme.mx"},     // sin cita
	}
	for _, req := range casos {
		_, err := svc.Registrar(context.Background(), req)
		assert.ErrorIs(t, err, apierror.ErrInvalidInput)
	}
}

func TestInvitadoRegistrarCitaInexistente(t *testing.T) {
	svc := NewInvitadoService(newStubInvitadoStore())
	_, err := svc.Registrar(context.Background(), dto.RegistrarInvitadoRequest{
		Nombre: "Ana", Correo: "ana@acme.mx", IDCita: 99,
	})
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}

func TestInvitadoActualizarSoloDescriptivos(t *testing.T) {
	cita := &model.Cita{ID: 4}
	store := newStubInvitadoStore(cita)
	svc := NewInvitadoService(store)

	resp, err := svc.Registrar(context.Background(), dto.RegistrarInvitadoRequest{
		Nombre: "Ana Torres", Correo: "ana@acme.mx", IDCita: 4,
	})
	require.NoError(t, err)

	err = svc.Actualizar(context.Background(), resp.IDInvitado, dto.ActualizarInvitadoRequest{
		Nombre: "Ana T. Robles", Correo: "ana.robles@acme.mx", Empresa: "ACME",
	})
	require.NoError(t, err)

	inv, err := svc.Obtener(context.Background(), resp.IDInvitado)
	require.NoError(t, err)
	assert.Equal(t, "Ana T. Robles", inv.Nombre)
	assert.Equal(t, uint(4), inv.IDCita)
	assert.Equal(t, 1, cita.NumeroInvitados, "actualizar nunca toca el contador")

	err = svc.Actualizar(context.Background(), resp.IDInvitado, dto.ActualizarInvitadoRequest{Nombre: "Ana"})
	assert.ErrorIs(t, err, apierror.ErrInvalidInput)
}

func TestInvitadoListarPorCitaVacia(t *testing.T) {
	svc := NewInvitadoService(newStubInvitadoStore(&model.Cita{ID: 4}))
	invitados, err := svc.ListarPorCita(context.Background(), 4)
	require.NoError(t, err)
	assert.NotNil(t, invitados)
	assert.Empty(t, invitados)
}
