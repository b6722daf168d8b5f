package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jonathancraxker/api-ecoparking/internal/apierror"
	"github.com/Jonathancraxker/api-ecoparking/internal/model"

	"gorm.io/gorm"
)

// QRRepository is a lookup-only store: tokens are created through
// CitaRepository.CreateConAccesos and never mutated afterwards.
type QRRepository interface {
	FindByToken(ctx context.Context, token string) (*model.CodigoQR, error)
}

type qrRepo struct{ db *gorm.DB }

func NewQRRepository(db *gorm.DB) QRRepository { return &qrRepo{db: db} }

func (r *qrRepo) FindByToken(ctx context.Context, token string) (*model.CodigoQR, error) {
	var qr model.CodigoQR
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&qr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apierror.ErrStore, err)
	}
	return &qr, nil
}
