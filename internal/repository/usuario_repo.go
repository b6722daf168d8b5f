package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jonathancraxker/api-ecoparking/internal/apierror"
	"github.com/Jonathancraxker/api-ecoparking/internal/model"

	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	FindByID(ctx context.Context, id uint) (*model.Usuario, error)
	FindByCorreo(ctx context.Context, correo string) (*model.Usuario, error)
	List(ctx context.Context) ([]model.Usuario, error)
	Update(ctx context.Context, u *model.Usuario) error
	Delete(ctx context.Context, id uint) error
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("%w: %v", apierror.ErrStore, err)
	}
	return nil
}

func (r *usuarioRepo) FindByID(ctx context.Context, id uint) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apierror.ErrStore, err)
	}
	return &u, nil
}

func (r *usuarioRepo) FindByCorreo(ctx context.Context, correo string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("correo = ?", correo).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apierror.ErrStore, err)
	}
	return &u, nil
}

func (r *usuarioRepo) List(ctx context.Context) ([]model.Usuario, error) {
	var usuarios []model.Usuario
	if err := r.db.WithContext(ctx).Order("id").Find(&usuarios).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", apierror.ErrStore, err)
	}
	return usuarios, nil
}

func (r *usuarioRepo) Update(ctx context.Context, u *model.Usuario) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		return fmt.Errorf("%w: %v", apierror.ErrStore, err)
	}
	return nil
}

func (r *usuarioRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Usuario{}, id)
	if res.Error != nil {
		return fmt.Errorf("%w: %v", apierror.ErrStore, res.Error)
	}
	if res.RowsAffected == 0 {
		return apierror.ErrNotFound
	}
	return nil
}
