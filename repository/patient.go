package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/22Vinith/Hospital-Management/models"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) error
	FindByEmail(ctx context.Context, email string) (*models.Patient, error)
	FindByID(ctx context.Context, id uint) (*models.Patient, error)
	UpdateInfo(ctx context.Context, id uint, name string, age int, email string, phno int64) error
	UpdatePassword(ctx context.Context, id uint, hashedPassword string) error
	UpdateRefreshToken(ctx context.Context, id uint, refreshToken string) error
}

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *models.Patient) error {
	return translate(r.db.WithContext(ctx).Create(patient).Error)
}

func (r *patientRepository) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&patient).Error; err != nil {
		return nil, translate(err)
	}
	return &patient, nil
}

func (r *patientRepository) FindByID(ctx context.Context, id uint) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.WithContext(ctx).First(&patient, id).Error; err != nil {
		return nil, translate(err)
	}
	return &patient, nil
}

func (r *patientRepository) UpdateInfo(ctx context.Context, id uint, name string, age int, email string, phno int64) error {
	result := r.db.WithContext(ctx).Model(&models.Patient{}).Where("patient_id = ?", id).
		Updates(map[string]interface{}{
			"name":  name,
			"age":   age,
			"email": email,
			"phno":  phno,
		})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *patientRepository) UpdatePassword(ctx context.Context, id uint, hashedPassword string) error {
	result := r.db.WithContext(ctx).Model(&models.Patient{}).Where("patient_id = ?", id).
		Update("password", hashedPassword)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *patientRepository) UpdateRefreshToken(ctx context.Context, id uint, refreshToken string) error {
	result := r.db.WithContext(ctx).Model(&models.Patient{}).Where("patient_id = ?", id).
		Update("refresh_token", refreshToken)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
