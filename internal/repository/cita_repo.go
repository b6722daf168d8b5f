package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jonathancraxker/api-ecoparking/internal/apierror"
	"github.com/Jonathancraxker/api-ecoparking/internal/model"

	"gorm.io/gorm"
)

type CitaRepository interface {
	ListAll(ctx context.Context) ([]model.Cita, error)
	ListByUsuario(ctx context.Context, usuarioID uint) ([]model.Cita, error)
	FindByID(ctx context.Context, id uint) (*model.Cita, error)
	// CreateConAccesos inserts the cita, its QR token row and every guest row
	// in one transaction; nothing persists if any step fails.
	CreateConAccesos(ctx context.Context, cita *model.Cita, token string, invitados []model.Invitado) error
	Update(ctx context.Context, id uint, cita *model.Cita) error
	// Delete removes the cita together with its guests and QR token, all in
	// one transaction, so no orphan rows survive.
	Delete(ctx context.Context, id uint) error
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type citaRepo struct{ db *gorm.DB }

func NewCitaRepository(db *gorm.DB) CitaRepository { return &citaRepo{db: db} }

func (r *citaRepo) DB() *gorm.DB { return r.db }

func (r *citaRepo) ListAll(ctx context.Context) ([]model.Cita, error) {
	var citas []model.Cita
	err := r.db.WithContext(ctx).Preload("QR").Order("created_at DESC").Find(&citas).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apierror.ErrStore, err)
	}
	return citas, nil
}

func (r *citaRepo) ListByUsuario(ctx context.Context, usuarioID uint) ([]model.Cita, error) {
	var citas []model.Cita
	err := r.db.WithContext(ctx).Preload("QR").
		Where("id_usuario = ?", usuarioID).
		Order("created_at DESC").
		Find(&citas).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apierror.ErrStore, err)
	}
	return citas, nil
}

func (r *citaRepo) FindByID(ctx context.Context, id uint) (*model.Cita, error) {
	var cita model.Cita
	err := r.db.WithContext(ctx).Preload("QR").First(&cita, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apierror.ErrStore, err)
	}
	return &cita, nil
}

func (r *citaRepo) CreateConAccesos(ctx context.Context, cita *model.Cita, token string, invitados []model.Invitado) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(cita).Error; err != nil {
			return err
		}
		qr := model.CodigoQR{Token: token, IDCita: cita.ID}
		if err := tx.Create(&qr).Error; err != nil {
			return err
		}
		for i := range invitados {
			invitados[i].IDCita = cita.ID
			if err := tx.Create(&invitados[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", apierror.ErrStore, err)
	}
	return nil
}

// Update is a full-field replace of the six scheduling scalars. The guest
// counter stays under the exclusive control of the guest mutation paths.
func (r *citaRepo) Update(ctx context.Context, id uint, cita *model.Cita) error {
	res := r.db.WithContext(ctx).Model(&model.Cita{}).Where("id = ?", id).Updates(map[string]interface{}{
		"fecha_inicio": cita.FechaInicio,
		"fecha_fin":    cita.FechaFin,
		"hora_inicio":  cita.HoraInicio,
		"hora_fin":     cita.HoraFin,
		"motivo":       cita.Motivo,
		"estado_cita":  cita.EstadoCita,
	})
	if res.Error != nil {
		return fmt.Errorf("%w: %v", apierror.ErrStore, res.Error)
	}
	if res.RowsAffected == 0 {
		return apierror.ErrNotFound
	}
	return nil
}

func (r *citaRepo) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cita model.Cita
		if err := tx.First(&cita, id).Error; err != nil {
			return err
		}
		if err := tx.Where("id_cita = ?", id).Delete(&model.Invitado{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id_cita = ?", id).Delete(&model.CodigoQR{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Cita{}, id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", apierror.ErrStore, err)
	}
	return nil
}
