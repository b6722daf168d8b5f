package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Jonathancraxker/api-ecoparking/internal/apierror"
	"github.com/Jonathancraxker/api-ecoparking/internal/model"
	"github.com/Jonathancraxker/api-ecoparking/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory stubs ──────────────────────────────────────────────────────────

type stubQRRepo struct {
	tokens map[string]*model.CodigoQR
	err    error
}

var _ repository.QRRepository = (*stubQRRepo)(nil)

func (r *stubQRRepo) FindByToken(_ context.Context, token string) (*model.CodigoQR, error) {
	if r.err != nil {
		return nil, r.err
	}
	qr, ok := r.tokens[token]
	if !ok {
		return nil, apierror.ErrNotFound
	}
	return qr, nil
}

type stubCitaLookup struct {
	citas map[uint]*model.Cita
	err   error
}

var _ repository.CitaRepository = (*stubCitaLookup)(nil)

func (r *stubCitaLookup) FindByID(_ context.Context, id uint) (*model.Cita, error) {
	if r.err != nil {
		return nil, r.err
	}
	c, ok := r.citas[id]
	if !ok {
		return nil, apierror.ErrNotFound
	}
	return c, nil
}

func (r *stubCitaLookup) ListAll(context.Context) ([]model.Cita, error)           { return nil, nil }
func (r *stubCitaLookup) ListByUsuario(context.Context, uint) ([]model.Cita, error) {
	return nil, nil
}
func (r *stubCitaLookup) CreateConAccesos(context.Context, *model.Cita, string, []model.Invitado) error {
	return nil
}
func (r *stubCitaLookup) Update(context.Context, uint, *model.Cita) error { return nil }
func (r *stubCitaLookup) Delete(context.Context, uint) error              { return nil }
func (r *stubCitaLookup) DB() *gorm.DB                                    { return nil }

// ── Helpers ──────────────────────────────────────────────────────────────────

// The deployments this was written for run at UTC-6.
var zonaPrueba = time.FixedZone("UTC-6", -6*3600)

func citaDePrueba(estado string) *model.Cita {
	return &model.Cita{
		ID:          7,
		IDUsuario:   1,
		FechaInicio: "2025-06-01",
		FechaFin:    "2025-06-01",
		HoraInicio:  "09:00:00",
		HoraFin:     "11:00:00",
		Motivo:      "Visita de mantenimiento",
		EstadoCita:  estado,
	}
}

func motorDePrueba(qrRepo *stubQRRepo, citaRepo *stubCitaLookup, ahora time.Time) *qrService {
	return &qrService{
		qrRepo:   qrRepo,
		citaRepo: citaRepo,
		loc:      zonaPrueba,
		now:      func() time.Time { return ahora },
	}
}

func enZona(hora string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", "2025-06-01 "+hora, zonaPrueba)
	if err != nil {
		panic(err)
	}
	return t
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestQRValidarTokenDesconocido(t *testing.T) {
	svc := motorDePrueba(
		&stubQRRepo{tokens: map[string]*model.CodigoQR{}},
		&stubCitaLookup{citas: map[uint]*model.Cita{}},
		enZona("10:00:00"),
	)

	d := svc.Validar(context.Background(), "no-existe")
	assert.Equal(t, StatusDenegado, d.Status)
	assert.Equal(t, RazonNoEncontrada, d.Razon)
	assert.False(t, d.Valido())
}

func TestQRValidarTokenSinCita(t *testing.T) {
	// El token existe pero la cita referenciada ya no.
	svc := motorDePrueba(
		&stubQRRepo{tokens: map[string]*model.CodigoQR{"tok": {ID: 1, Token: "tok", IDCita: 99}}},
		&stubCitaLookup{citas: map[uint]*model.Cita{}},
		enZona("10:00:00"),
	)

	d := svc.Validar(context.Background(), "tok")
	assert.Equal(t, StatusDenegado, d.Status)
	assert.Equal(t, RazonNoTieneCita, d.Razon)
}

func TestQRValidarCitaCancelada(t *testing.T) {
	// Cancelada dentro de la ventana sigue siendo denegada: el estado se
	// revisa antes que el horario.
	svc := motorDePrueba(
		&stubQRRepo{tokens: map[string]*model.CodigoQR{"tok": {ID: 1, Token: "tok", IDCita: 7}}},
		&stubCitaLookup{citas: map[uint]*model.Cita{7: citaDePrueba(model.EstadoCancelada)}},
		enZona("10:00:00"),
	)

	d := svc.Validar(context.Background(), "tok")
	assert.Equal(t, StatusDenegado, d.Status)
	assert.Equal(t, RazonCancelada, d.Razon)
}

func TestQRValidarVentanaHoraria(t *testing.T) {
	cases := []struct {
		nombre string
		estado string
		ahora  time.Time
		status string
		razon  string
	}{
		{"dentro de la ventana", model.EstadoConfirmada, enZona("10:00:00"), StatusValido, ""},
		{"pendiente tambien entra", model.EstadoPendiente, enZona("10:00:00"), StatusValido, ""},
		{"exactamente al inicio", model.EstadoConfirmada, enZona("09:00:00"), StatusValido, ""},
		{"exactamente al fin", model.EstadoConfirmada, enZona("11:00:00"), StatusValido, ""},
		{"un segundo antes del inicio", model.EstadoConfirmada, enZona("08:59:59"), StatusDenegado, RazonNotYet},
		{"un segundo despues del fin", model.EstadoConfirmada, enZona("11:00:01"), StatusDenegado, RazonExpired},
		{"una hora antes", model.EstadoConfirmada, enZona("08:00:00"), StatusDenegado, RazonNotYet},
		{"una hora despues", model.EstadoConfirmada, enZona("12:00:00"), StatusDenegado, RazonExpired},
	}

	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			svc := motorDePrueba(
				&stubQRRepo{tokens: map[string]*model.CodigoQR{"tok": {ID: 1, Token: "tok", IDCita: 7}}},
				&stubCitaLookup{citas: map[uint]*model.Cita{7: citaDePrueba(tc.estado)}},
				tc.ahora,
			)

			d := svc.Validar(context.Background(), "tok")
			assert.Equal(t, tc.status, d.Status)
			assert.Equal(t, tc.razon, d.Razon)
			if tc.status == StatusValido {
				assert.Equal(t, uint(7), d.IDCita)
			}
		})
	}
}

func TestQRValidarUsaOffsetConfigurado(t *testing.T) {
	// La ventana 09:00–11:00 en UTC-6 equivale a 15:00–17:00 UTC. Un escaneo
	// a las 16:00 UTC cae dentro; a las 10:00 UTC todavia no empieza —
	// independientemente de la zona del servidor.
	qrRepo := &stubQRRepo{tokens: map[string]*model.CodigoQR{"tok": {ID: 1, Token: "tok", IDCita: 7}}}
	citaRepo := &stubCitaLookup{citas: map[uint]*model.Cita{7: citaDePrueba(model.EstadoConfirmada)}}

	svc := motorDePrueba(qrRepo, citaRepo, time.Date(2025, 6, 1, 16, 0, 0, 0, time.UTC))
	d := svc.Validar(context.Background(), "tok")
	require.True(t, d.Valido())

	svc = motorDePrueba(qrRepo, citaRepo, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	d = svc.Validar(context.Background(), "tok")
	assert.Equal(t, RazonNotYet, d.Razon)
}

func TestQRValidarHoraSinSegundos(t *testing.T) {
	// La hora puede venir almacenada como "09:00"; el motor la normaliza.
	cita := citaDePrueba(model.EstadoConfirmada)
	cita.HoraInicio = "09:00"
	cita.HoraFin = "11:00"

	svc := motorDePrueba(
		&stubQRRepo{tokens: map[string]*model.CodigoQR{"tok": {ID: 1, Token: "tok", IDCita: 7}}},
		&stubCitaLookup{citas: map[uint]*model.Cita{7: cita}},
		enZona("10:00:00"),
	)

	d := svc.Validar(context.Background(), "tok")
	assert.True(t, d.Valido())
}

func TestQRValidarFechaIlegible(t *testing.T) {
	cita := citaDePrueba(model.EstadoConfirmada)
	cita.FechaInicio = "01/06/2025" // formato corrupto

	svc := motorDePrueba(
		&stubQRRepo{tokens: map[string]*model.CodigoQR{"tok": {ID: 1, Token: "tok", IDCita: 7}}},
		&stubCitaLookup{citas: map[uint]*model.Cita{7: cita}},
		enZona("10:00:00"),
	)

	d := svc.Validar(context.Background(), "tok")
	assert.Equal(t, StatusDenegado, d.Status)
	assert.Equal(t, RazonServerError, d.Razon)
}

func TestQRValidarFallaDeStoreNuncaPermite(t *testing.T) {
	svc := motorDePrueba(
		&stubQRRepo{err: errors.New("conexion rechazada")},
		&stubCitaLookup{citas: map[uint]*model.Cita{}},
		enZona("10:00:00"),
	)
	d := svc.Validar(context.Background(), "tok")
	assert.Equal(t, StatusDenegado, d.Status)
	assert.Equal(t, RazonServerError, d.Razon)

	svc = motorDePrueba(
		&stubQRRepo{tokens: map[string]*model.CodigoQR{"tok": {ID: 1, Token: "tok", IDCita: 7}}},
		&stubCitaLookup{err: errors.New("conexion rechazada")},
		enZona("10:00:00"),
	)
	d = svc.Validar(context.Background(), "tok")
	assert.Equal(t, StatusDenegado, d.Status)
	assert.Equal(t, RazonServerError, d.Razon)
}
