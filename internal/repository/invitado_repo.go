package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jonathancraxker/api-ecoparking/internal/apierror"
	"github.com/Jonathancraxker/api-ecoparking/internal/model"

	"gorm.io/gorm"
)

type InvitadoRepository interface {
	ListByCita(ctx context.Context, citaID uint) ([]model.Invitado, error)
	FindByID(ctx context.Context, id uint) (*model.Invitado, error)
	// CreateConContador inserts the guest and increments the cita's
	// numero_invitados in the same transaction.
	CreateConContador(ctx context.Context, inv *model.Invitado) error
	Update(ctx context.Context, id uint, inv *model.Invitado) error
	// DeleteConContador removes the guest and decrements the cita's
	// numero_invitados in the same transaction.
	DeleteConContador(ctx context.Context, id uint) error
}

type invitadoRepo struct{ db *gorm.DB }

func NewInvitadoRepository(db *gorm.DB) InvitadoRepository { return &invitadoRepo{db: db} }

func (r *invitadoRepo) ListByCita(ctx context.Context, citaID uint) ([]model.Invitado, error) {
	invitados := make([]model.Invitado, 0)
	err := r.db.WithContext(ctx).Where("id_cita = ?", citaID).Find(&invitados).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apierror.ErrStore, err)
	}
	return invitados, nil
}

func (r *invitadoRepo) FindByID(ctx context.Context, id uint) (*model.Invitado, error) {
	var inv model.Invitado
	err := r.db.WithContext(ctx).First(&inv, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apierror.ErrStore, err)
	}
	return &inv, nil
}

func (r *invitadoRepo) CreateConContador(ctx context.Context, inv *model.Invitado) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The cita must exist at creation time; the row lock taken by the
		// counter update below also serializes concurrent guest additions.
		var cita model.Cita
		if err := tx.First(&cita, inv.IDCita).Error; err != nil {
			return err
		}
		if err := tx.Create(inv).Error; err != nil {
			return err
		}
		return tx.Model(&model.Cita{}).Where("id = ?", inv.IDCita).
			UpdateColumn("numero_invitados", gorm.Expr("numero_invitados + 1")).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", apierror.ErrStore, err)
	}
	return nil
}

// Update replaces the descriptive fields only — never id_cita, never counters.
func (r *invitadoRepo) Update(ctx context.Context, id uint, inv *model.Invitado) error {
	res := r.db.WithContext(ctx).Model(&model.Invitado{}).Where("id = ?", id).Updates(map[string]interface{}{
		"nombre":         inv.Nombre,
		"correo":         inv.Correo,
		"empresa":        inv.Empresa,
		"tipo_visitante": inv.TipoVisitante,
	})
	if res.Error != nil {
		return fmt.Errorf("%w: %v", apierror.ErrStore, res.Error)
	}
	if res.RowsAffected == 0 {
		return apierror.ErrNotFound
	}
	return nil
}

func (r *invitadoRepo) DeleteConContador(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var inv model.Invitado
		if err := tx.First(&inv, id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Invitado{}, id).Error; err != nil {
			return err
		}
		return tx.Model(&model.Cita{}).Where("id = ?", inv.IDCita).
			UpdateColumn("numero_invitados", gorm.Expr("numero_invitados - 1")).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", apierror.ErrStore, err)
	}
	return nil
}
