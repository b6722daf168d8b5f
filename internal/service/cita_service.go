package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Jonathancraxker/api-ecoparking/internal/apierror"
	"github.com/Jonathancraxker/api-ecoparking/internal/dto"
	"github.com/Jonathancraxker/api-ecoparking/internal/model"
	"github.com/Jonathancraxker/api-ecoparking/internal/repository"
	"github.com/Jonathancraxker/api-ecoparking/internal/worker"

	"github.com/google/uuid"
)

type CitaService interface {
	ListarTodas(ctx context.Context) ([]dto.CitaResponse, error)
	ListarPorUsuario(ctx context.Context, usuarioID uint) ([]dto.CitaResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.CitaResponse, error)
	Registrar(ctx context.Context, usuarioID uint, req dto.RegistrarCitaRequest) (*dto.RegistrarCitaResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarCitaRequest) error
	Eliminar(ctx context.Context, id uint) error
}

type citaService struct {
	repo       repository.CitaRepository
	baseURL    string
	dispatcher *worker.Dispatcher
}

// NewCitaService builds the cita service. baseURL is the public root used to
// compose validation URLs; dispatcher may be nil (no invitation emails).
func NewCitaService(repo repository.CitaRepository, baseURL string, dispatcher *worker.Dispatcher) CitaService {
	return &citaService{repo: repo, baseURL: strings.TrimRight(baseURL, "/"), dispatcher: dispatcher}
}

func (s *citaService) ListarTodas(ctx context.Context) ([]dto.CitaResponse, error) {
	citas, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.toResponses(citas), nil
}

func (s *citaService) ListarPorUsuario(ctx context.Context, usuarioID uint) ([]dto.CitaResponse, error) {
	citas, err := s.repo.ListByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(citas), nil
}

func (s *citaService) Obtener(ctx context.Context, id uint) (*dto.CitaResponse, error) {
	cita, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := s.toResponse(cita)
	return &resp, nil
}

// Registrar creates the cita, a fresh QR token and the embedded guest list in
// one transaction. numero_invitados is recomputed from the guest list — the
// caller never supplies it.
func (s *citaService) Registrar(ctx context.Context, usuarioID uint, req dto.RegistrarCitaRequest) (*dto.RegistrarCitaResponse, error) {
	if req.FechaInicio == "" || req.FechaFin == "" || req.HoraInicio == "" ||
		req.HoraFin == "" || req.Motivo == "" || req.EstadoCita == "" {
		return nil, fmt.Errorf("%w: todos los campos de la cita son requeridos", apierror.ErrInvalidInput)
	}
	if usuarioID == 0 {
		return nil, fmt.Errorf("%w: usuario requerido", apierror.ErrInvalidInput)
	}

	invitados := make([]model.Invitado, 0, len(req.Invitados))
	for _, inv := range req.Invitados {
		invitados = append(invitados, model.Invitado{
			Nombre:        inv.Nombre,
			Correo:        inv.Correo,
			Empresa:       inv.Empresa,
			TipoVisitante: inv.TipoVisitante,
		})
	}

	cita := model.Cita{
		IDUsuario:       usuarioID,
		FechaInicio:     req.FechaInicio,
		FechaFin:        req.FechaFin,
		HoraInicio:      normalizarHora(req.HoraInicio),
		HoraFin:         normalizarHora(req.HoraFin),
		Motivo:          req.Motivo,
		EstadoCita:      req.EstadoCita,
		NumeroInvitados: len(invitados),
	}

	token := uuid.NewString()
	if err := s.repo.CreateConAccesos(ctx, &cita, token, invitados); err != nil {
		return nil, err
	}

	// Invitation emails are best-effort: the cita is already committed and a
	// mail failure must not fail the request.
	if s.dispatcher != nil {
		url := s.urlValidacion(token)
		for _, inv := range invitados {
			_ = s.dispatcher.EnqueueInvitacion(ctx, worker.InvitacionJobPayload{
				Correo:        inv.Correo,
				Nombre:        inv.Nombre,
				FechaInicio:   cita.FechaInicio,
				HoraInicio:    cita.HoraInicio,
				URLValidacion: url,
			})
		}
	}

	return &dto.RegistrarCitaResponse{IDCita: cita.ID, TokenQR: token}, nil
}

func (s *citaService) Actualizar(ctx context.Context, id uint, req dto.ActualizarCitaRequest) error {
	if req.FechaInicio == "" || req.FechaFin == "" || req.HoraInicio == "" ||
		req.HoraFin == "" || req.Motivo == "" || req.EstadoCita == "" {
		return fmt.Errorf("%w: todos los campos de la cita son requeridos", apierror.ErrInvalidInput)
	}
	return s.repo.Update(ctx, id, &model.Cita{
		FechaInicio: req.FechaInicio,
		FechaFin:    req.FechaFin,
		HoraInicio:  normalizarHora(req.HoraInicio),
		HoraFin:     normalizarHora(req.HoraFin),
		Motivo:      req.Motivo,
		EstadoCita:  req.EstadoCita,
	})
}

func (s *citaService) Eliminar(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *citaService) urlValidacion(token string) string {
	return s.baseURL + "/qr/validar/" + token
}

func (s *citaService) toResponse(c *model.Cita) dto.CitaResponse {
	resp := dto.CitaResponse{
		ID:              c.ID,
		IDUsuario:       c.IDUsuario,
		FechaInicio:     c.FechaInicio,
		FechaFin:        c.FechaFin,
		HoraInicio:      c.HoraInicio,
		HoraFin:         c.HoraFin,
		Motivo:          c.Motivo,
		EstadoCita:      c.EstadoCita,
		NumeroInvitados: c.NumeroInvitados,
		CreatedAt:       c.CreatedAt.Format(time.RFC3339),
	}
	if c.QR != nil {
		url := s.urlValidacion(c.QR.Token)
		resp.URLValidacion = &url
	}
	return resp
}

func (s *citaService) toResponses(citas []model.Cita) []dto.CitaResponse {
	out := make([]dto.CitaResponse, 0, len(citas))
	for i := range citas {
		out = append(out, s.toResponse(&citas[i]))
	}
	return out
}

// normalizarHora stores every time-of-day as HH:MM:SS.
func normalizarHora(hora string) string {
	if len(hora) == 5 { // "09:00"
		return hora + ":00"
	}
	return hora
}
