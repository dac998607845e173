package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/22Vinith/Hospital-Management/models"
)

// DoctorRepository is the identity store for doctor principals.
// Pre-provisioning creates an email-only record; CompleteSignup fills in
// the rest when the doctor registers.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	FindByEmail(ctx context.Context, email string) (*models.Doctor, error)
	FindByID(ctx context.Context, id uint) (*models.Doctor, error)
	List(ctx context.Context, page, limit int) ([]models.Doctor, int64, error)
	ListBySpecialization(ctx context.Context, specialization string) ([]models.Doctor, error)
	CountBySpecialization(ctx context.Context, specialization string) (int64, error)
	CompleteSignup(ctx context.Context, email, name, specialization, hashedPassword string) error
	UpdatePassword(ctx context.Context, id uint, hashedPassword string) error
	UpdateRefreshToken(ctx context.Context, id uint, refreshToken string) error
	Delete(ctx context.Context, id uint) error
}

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	return translate(r.db.WithContext(ctx).Create(doctor).Error)
}

func (r *doctorRepository) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&doctor).Error; err != nil {
		return nil, translate(err)
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := r.db.WithContext(ctx).First(&doctor, id).Error; err != nil {
		return nil, translate(err)
	}
	return &doctor, nil
}

func (r *doctorRepository) List(ctx context.Context, page, limit int) ([]models.Doctor, int64, error) {
	var (
		doctors []models.Doctor
		total   int64
	)
	if err := r.db.WithContext(ctx).Model(&models.Doctor{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).Order("doctor_id").Offset(offset).Limit(limit).Find(&doctors).Error; err != nil {
		return nil, 0, translate(err)
	}
	return doctors, total, nil
}

func (r *doctorRepository) ListBySpecialization(ctx context.Context, specialization string) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := r.db.WithContext(ctx).Where("specialization = ?", specialization).
		Order("doctor_id").Find(&doctors).Error; err != nil {
		return nil, translate(err)
	}
	return doctors, nil
}

func (r *doctorRepository) CountBySpecialization(ctx context.Context, specialization string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Doctor{}).
		Where("specialization = ?", specialization).Count(&count).Error; err != nil {
		return 0, translate(err)
	}
	return count, nil
}

func (r *doctorRepository) CompleteSignup(ctx context.Context, email, name, specialization, hashedPassword string) error {
	result := r.db.WithContext(ctx).Model(&models.Doctor{}).Where("email = ?", email).
		Updates(map[string]interface{}{
			"doctor_name":    name,
			"specialization": specialization,
			"password":       hashedPassword,
		})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *doctorRepository) UpdatePassword(ctx context.Context, id uint, hashedPassword string) error {
	result := r.db.WithContext(ctx).Model(&models.Doctor{}).Where("doctor_id = ?", id).
		Update("password", hashedPassword)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *doctorRepository) UpdateRefreshToken(ctx context.Context, id uint, refreshToken string) error {
	result := r.db.WithContext(ctx).Model(&models.Doctor{}).Where("doctor_id = ?", id).
		Update("refresh_token", refreshToken)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *doctorRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Doctor{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
