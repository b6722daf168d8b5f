package service

import (
	"context"
	"errors"
	"time"

	"github.com/Jonathancraxker/api-ecoparking/internal/apierror"
	"github.com/Jonathancraxker/api-ecoparking/internal/model"
	"github.com/Jonathancraxker/api-ecoparking/internal/repository"

	"github.com/rs/zerolog/log"
)

// Decision reason codes, consumed by the doorman-facing redirect.
const (
	RazonNoEncontrada = "no_encontrada"
	RazonNoTieneCita  = "no_tiene_cita"
	RazonCancelada    = "cancelada"
	RazonNotYet       = "not_yet"
	RazonExpired      = "expired"
	RazonServerError  = "server_error"
)

const (
	StatusValido   = "valido"
	StatusDenegado = "denegado"
)

// Decision is the validation engine's accept/deny output plus a reason code.
// IDCita is set when the scan is accepted, so the access-log glue can record
// which cita entered.
type Decision struct {
	Status string
	Razon  string
	IDCita uint
}

func (d Decision) Valido() bool { return d.Status == StatusValido }

func aceptar(citaID uint) Decision  { return Decision{Status: StatusValido, IDCita: citaID} }
func denegar(razon string) Decision { return Decision{Status: StatusDenegado, Razon: razon} }

// QRService resolves a scanned token to an accept/deny decision. Checks run
// in order and short-circuit on the first failure: token exists → cita
// exists → estado allows entry → now is inside [inicio, fin]. Any store or
// data error denies with server_error — the engine never allows on error.
type QRService interface {
	Validar(ctx context.Context, token string) Decision
}

type qrService struct {
	qrRepo   repository.QRRepository
	citaRepo repository.CitaRepository
	loc      *time.Location
	now      func() time.Time
}

// NewQRService builds the validation engine. loc is the configured fixed
// offset every fecha/hora pair is interpreted in — never the server zone.
func NewQRService(qrRepo repository.QRRepository, citaRepo repository.CitaRepository, loc *time.Location) QRService {
	return &qrService{qrRepo: qrRepo, citaRepo: citaRepo, loc: loc, now: time.Now}
}

func (s *qrService) Validar(ctx context.Context, token string) Decision {
	qr, err := s.qrRepo.FindByToken(ctx, token)
	if errors.Is(err, apierror.ErrNotFound) {
		return denegar(RazonNoEncontrada)
	}
	if err != nil {
		log.Error().Err(err).Msg("qr: fallo al buscar token")
		return denegar(RazonServerError)
	}

	cita, err := s.citaRepo.FindByID(ctx, qr.IDCita)
	if errors.Is(err, apierror.ErrNotFound) {
		return denegar(RazonNoTieneCita)
	}
	if err != nil {
		log.Error().Err(err).Uint("id_cita", qr.IDCita).Msg("qr: fallo al buscar cita")
		return denegar(RazonServerError)
	}

	if cita.EstadoCita != model.EstadoConfirmada && cita.EstadoCita != model.EstadoPendiente {
		return denegar(RazonCancelada)
	}

	inicio, err := combinar(cita.FechaInicio, cita.HoraInicio, s.loc)
	if err != nil {
		log.Error().Err(err).Uint("id_cita", cita.ID).Msg("qr: fecha/hora de inicio ilegible")
		return denegar(RazonServerError)
	}
	fin, err := combinar(cita.FechaFin, cita.HoraFin, s.loc)
	if err != nil {
		log.Error().Err(err).Uint("id_cita", cita.ID).Msg("qr: fecha/hora de fin ilegible")
		return denegar(RazonServerError)
	}

	ahora := s.now()
	if ahora.Before(inicio) {
		return denegar(RazonNotYet)
	}
	if ahora.After(fin) {
		return denegar(RazonExpired)
	}
	return aceptar(cita.ID)
}

// combinar builds the absolute instant for a stored fecha ("2006-01-02") and
// hora ("15:04" or "15:04:05") pair under the configured offset. The window
// is inclusive at both ends: a scan exactly at inicio or fin is accepted.
func combinar(fecha, hora string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04:05", fecha+" "+normalizarHora(hora), loc)
}
