package service

import (
	"context"
	"fmt"

	"github.com/Jonathancraxker/api-ecoparking/internal/apierror"
	"github.com/Jonathancraxker/api-ecoparking/internal/dto"
	"github.com/Jonathancraxker/api-ecoparking/internal/model"
	"github.com/Jonathancraxker/api-ecoparking/internal/repository"
)

type InvitadoService interface {
	ListarPorCita(ctx context.Context, citaID uint) ([]dto.InvitadoResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.InvitadoResponse, error)
	Registrar(ctx context.Context, req dto.RegistrarInvitadoRequest) (*dto.RegistrarInvitadoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarInvitadoRequest) error
	Eliminar(ctx context.Context, id uint) error
}

type invitadoService struct {
	repo repository.InvitadoRepository
}

func NewInvitadoService(repo repository.InvitadoRepository) InvitadoService {
	return &invitadoService{repo: repo}
}

func (s *invitadoService) ListarPorCita(ctx context.Context, citaID uint) ([]dto.InvitadoResponse, error) {
	invitados, err := s.repo.ListByCita(ctx, citaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvitadoResponse, 0, len(invitados))
	for i := range invitados {
		out = append(out, toInvitadoResponse(&invitados[i]))
	}
	return out, nil
}

func (s *invitadoService) Obtener(ctx context.Context, id uint) (*dto.InvitadoResponse, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toInvitadoResponse(inv)
	return &resp, nil
}

func (s *invitadoService) Registrar(ctx context.Context, req dto.RegistrarInvitadoRequest) (*dto.RegistrarInvitadoResponse, error) {
	if req.Nombre == "" || req.Correo == "" || req.IDCita == 0 {
		return nil, fmt.Errorf("%w: nombre, correo e id_cita son requeridos", apierror.ErrInvalidInput)
	}
	inv := model.Invitado{
		IDCita:        req.IDCita,
		Nombre:        req.Nombre,
		Correo:        req.Correo,
		Empresa:       req.Empresa,
		TipoVisitante: req.TipoVisitante,
	}
	if err := s.repo.CreateConContador(ctx, &inv); err != nil {
		return nil, err
	}
	return &dto.RegistrarInvitadoResponse{IDInvitado: inv.ID, Correo: inv.Correo}, nil
}

func (s *invitadoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarInvitadoRequest) error {
	if req.Nombre == "" || req.Correo == "" {
		return fmt.Errorf("%w: nombre y correo son requeridos", apierror.ErrInvalidInput)
	}
	return s.repo.Update(ctx, id, &model.Invitado{
		Nombre:        req.Nombre,
		Correo:        req.Correo,
		Empresa:       req.Empresa,
		TipoVisitante: req.TipoVisitante,
	})
}

func (s *invitadoService) Eliminar(ctx context.Context, id uint) error {
	return s.repo.DeleteConContador(ctx, id)
}

func toInvitadoResponse(inv *model.Invitado) dto.InvitadoResponse {
	return dto.InvitadoResponse{
		ID:            inv.ID,
		IDCita:        inv.IDCita,
		Nombre:        inv.Nombre,
		Correo:        inv.Correo,
		Empresa:       inv.Empresa,
		TipoVisitante: inv.TipoVisitante,
	}
}
