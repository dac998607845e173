package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/22Vinith/Hospital-Management/models"
)

// AdminRepository is the identity store for admin principals. The
// refresh-token field is owned here; services mutate it only through
// UpdateRefreshToken.
type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	FindByID(ctx context.Context, id uint) (*models.Admin, error)
	UpdatePassword(ctx context.Context, id uint, hashedPassword string) error
	UpdateRefreshToken(ctx context.Context, id uint, refreshToken string) error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, admin *models.Admin) error {
	return translate(r.db.WithContext(ctx).Create(admin).Error)
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, translate(err)
	}
	return &admin, nil
}

func (r *adminRepository) FindByID(ctx context.Context, id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.WithContext(ctx).First(&admin, id).Error; err != nil {
		return nil, translate(err)
	}
	return &admin, nil
}

func (r *adminRepository) UpdatePassword(ctx context.Context, id uint, hashedPassword string) error {
	result := r.db.WithContext(ctx).Model(&models.Admin{}).Where("admin_id = ?", id).
		Update("password", hashedPassword)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *adminRepository) UpdateRefreshToken(ctx context.Context, id uint, refreshToken string) error {
	result := r.db.WithContext(ctx).Model(&models.Admin{}).Where("admin_id = ?", id).
		Update("refresh_token", refreshToken)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
