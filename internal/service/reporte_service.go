package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Jonathancraxker/api-ecoparking/internal/apierror"
	"github.com/Jonathancraxker/api-ecoparking/internal/dto"
	"github.com/Jonathancraxker/api-ecoparking/internal/infra"
	"github.com/Jonathancraxker/api-ecoparking/internal/model"
	"github.com/Jonathancraxker/api-ecoparking/internal/repository"
)

// ReporteService is the access-log glue: it records one reporte per cita per
// day and renders visit reports as PDF.
type ReporteService interface {
	Listar(ctx context.Context) ([]dto.ReporteResponse, error)
	Registrar(ctx context.Context, req dto.RegistrarReporteRequest) (*dto.ReporteResponse, error)
	// RegistrarAcceso logs an accepted scan; it is idempotent within a day and
	// never fails the caller's path.
	RegistrarAcceso(ctx context.Context, citaID uint)
	GenerarPDF(ctx context.Context, id uint) (string, error)
}

type reporteService struct {
	repo         repository.ReporteRepository
	citaRepo     repository.CitaRepository
	invitadoRepo repository.InvitadoRepository
	storagePath  string
}

func NewReporteService(
	repo repository.ReporteRepository,
	citaRepo repository.CitaRepository,
	invitadoRepo repository.InvitadoRepository,
	storagePath string,
) ReporteService {
	return &reporteService{repo: repo, citaRepo: citaRepo, invitadoRepo: invitadoRepo, storagePath: storagePath}
}

func (s *reporteService) Listar(ctx context.Context) ([]dto.ReporteResponse, error) {
	reportes, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReporteResponse, len(reportes))
	for i := range reportes {
		out[i] = toReporteResponse(&reportes[i])
	}
	return out, nil
}

func (s *reporteService) Registrar(ctx context.Context, req dto.RegistrarReporteRequest) (*dto.ReporteResponse, error) {
	if req.IDCita == 0 {
		return nil, fmt.Errorf("%w: id_cita es requerido", apierror.ErrInvalidInput)
	}
	if _, err := s.citaRepo.FindByID(ctx, req.IDCita); err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByCitaHoy(ctx, req.IDCita); err == nil {
		return nil, fmt.Errorf("%w: esta cita ya fue reportada el dia de hoy", apierror.ErrInvalidInput)
	} else if !errors.Is(err, apierror.ErrNotFound) {
		return nil, err
	}

	rep := model.Reporte{IDCita: req.IDCita, Observaciones: req.Observaciones}
	if err := s.repo.Create(ctx, &rep); err != nil {
		return nil, err
	}
	resp := toReporteResponse(&rep)
	return &resp, nil
}

func (s *reporteService) RegistrarAcceso(ctx context.Context, citaID uint) {
	if _, err := s.repo.FindByCitaHoy(ctx, citaID); err == nil {
		return // already logged today
	}
	_ = s.repo.Create(ctx, &model.Reporte{IDCita: citaID})
}

func (s *reporteService) GenerarPDF(ctx context.Context, id uint) (string, error) {
	rep, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	cita, err := s.citaRepo.FindByID(ctx, rep.IDCita)
	if err != nil {
		return "", err
	}
	invitados, err := s.invitadoRepo.ListByCita(ctx, cita.ID)
	if err != nil {
		return "", err
	}
	return infra.GenerateReportePDF(rep, cita, invitados, s.storagePath)
}

func toReporteResponse(r *model.Reporte) dto.ReporteResponse {
	return dto.ReporteResponse{
		ID:            r.ID,
		IDCita:        r.IDCita,
		Observaciones: r.Observaciones,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
}
