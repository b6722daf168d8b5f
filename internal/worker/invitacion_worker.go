package worker

// invitacion_worker.go
// Processes guest invitation jobs from QueueInvitaciones: each guest added to
// a cita receives the validation link for the visit by email.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Jonathancraxker/api-ecoparking/internal/infra"

	"github.com/rs/zerolog/log"
)

// InvitacionJobPayload is the job envelope sent to QueueInvitaciones.
type InvitacionJobPayload struct {
	Correo        string `json:"correo"`
	Nombre        string `json:"nombre"`
	FechaInicio   string `json:"fecha_inicio"`
	HoraInicio    string `json:"hora_inicio"`
	URLValidacion string `json:"url_validacion"`
}

// InvitacionWorker sends invitation emails through the SMTP mailer.
type InvitacionWorker struct {
	mailer *infra.Mailer
}

func NewInvitacionWorker(mailer *infra.Mailer) *InvitacionWorker {
	return &InvitacionWorker{mailer: mailer}
}

// Process sends one invitation email. A returned error re-queues the job.
func (w *InvitacionWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload InvitacionJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("invitacion_worker: invalid payload")
		return nil // malformed jobs are never retryable
	}
	if payload.Correo == "" {
		log.Warn().Msg("invitacion_worker: empty correo — skipping")
		return nil
	}

	subject := "Invitacion de visita"
	body := fmt.Sprintf(
		"Hola %s,\n\nHas sido registrado como invitado para la visita del %s a las %s.\n"+
			"Presenta este enlace en el acceso:\n\n%s\n",
		payload.Nombre, payload.FechaInicio, payload.HoraInicio, payload.URLValidacion,
	)

	if err := w.mailer.SendInvitacion(payload.Correo, subject, body); err != nil {
		log.Error().Err(err).Str("to", payload.Correo).Msg("invitacion_worker: failed to send email")
		return err
	}
	log.Info().Str("to", payload.Correo).Msg("invitacion_worker: invitacion sent")
	return nil
}
