package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/22Vinith/Hospital-Management/models"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	FindByID(ctx context.Context, id uint) (*models.Appointment, error)
	ListBySpecialization(ctx context.Context, specialization string, page, limit int) ([]models.Appointment, int64, error)
	ListByPatient(ctx context.Context, patientID uint) ([]models.Appointment, error)
	UpdateAilmentStatus(ctx context.Context, id uint, status bool) error
	Delete(ctx context.Context, id uint) error
}

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	return translate(r.db.WithContext(ctx).Create(appointment).Error)
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := r.db.WithContext(ctx).First(&appointment, id).Error; err != nil {
		return nil, translate(err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) ListBySpecialization(ctx context.Context, specialization string, page, limit int) ([]models.Appointment, int64, error) {
	var (
		appointments []models.Appointment
		total        int64
	)
	if err := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("specialization = ?", specialization).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).Where("specialization = ?", specialization).
		Order("appointment_id").Offset(offset).Limit(limit).Find(&appointments).Error; err != nil {
		return nil, 0, translate(err)
	}
	return appointments, total, nil
}

func (r *appointmentRepository) ListByPatient(ctx context.Context, patientID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := r.db.WithContext(ctx).Where("patient_id = ?", patientID).
		Order("appointment_id").Find(&appointments).Error; err != nil {
		return nil, translate(err)
	}
	return appointments, nil
}

func (r *appointmentRepository) UpdateAilmentStatus(ctx context.Context, id uint, status bool) error {
	result := r.db.WithContext(ctx).Model(&models.Appointment{}).Where("appointment_id = ?", id).
		Update("ailment_status", status)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
