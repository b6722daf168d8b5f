package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jonathancraxker/api-ecoparking/internal/apierror"
	"github.com/Jonathancraxker/api-ecoparking/internal/model"

	"gorm.io/gorm"
)

type ReporteRepository interface {
	Create(ctx context.Context, rep *model.Reporte) error
	ListAll(ctx context.Context) ([]model.Reporte, error)
	FindByID(ctx context.Context, id uint) (*model.Reporte, error)
	// FindByCitaHoy returns today's reporte for the cita, if one exists.
	FindByCitaHoy(ctx context.Context, citaID uint) (*model.Reporte, error)
}

type reporteRepo struct{ db *gorm.DB }

func NewReporteRepository(db *gorm.DB) ReporteRepository { return &reporteRepo{db: db} }

func (r *reporteRepo) Create(ctx context.Context, rep *model.Reporte) error {
	if err := r.db.WithContext(ctx).Create(rep).Error; err != nil {
		return fmt.Errorf("%w: %v", apierror.ErrStore, err)
	}
	return nil
}

func (r *reporteRepo) ListAll(ctx context.Context) ([]model.Reporte, error) {
	var reportes []model.Reporte
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&reportes).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", apierror.ErrStore, err)
	}
	return reportes, nil
}

func (r *reporteRepo) FindByID(ctx context.Context, id uint) (*model.Reporte, error) {
	var rep model.Reporte
	err := r.db.WithContext(ctx).First(&rep, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apierror.ErrStore, err)
	}
	return &rep, nil
}

func (r *reporteRepo) FindByCitaHoy(ctx context.Context, citaID uint) (*model.Reporte, error) {
	var rep model.Reporte
	err := r.db.WithContext(ctx).
		Where("id_cita = ? AND DATE(created_at) = CURRENT_DATE", citaID).
		First(&rep).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apierror.ErrStore, err)
	}
	return &rep, nil
}
