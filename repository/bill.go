package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/22Vinith/Hospital-Management/models"
)

type BillRepository interface {
	// Create returns models.ErrAlreadyExists when a bill for the same
	// appointment already exists (unique index on appointment_id).
	Create(ctx context.Context, bill *models.Bill) error
	FindByAppointmentID(ctx context.Context, appointmentID uint) (*models.Bill, error)
	SumAmountByDoctor(ctx context.Context, doctorID uint) (float64, error)
}

type billRepository struct {
	db *gorm.DB
}

func NewBillRepository(db *gorm.DB) BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Create(ctx context.Context, bill *models.Bill) error {
	return translate(r.db.WithContext(ctx).Create(bill).Error)
}

func (r *billRepository) FindByAppointmentID(ctx context.Context, appointmentID uint) (*models.Bill, error) {
	var bill models.Bill
	if err := r.db.WithContext(ctx).Where("appointment_id = ?", appointmentID).First(&bill).Error; err != nil {
		return nil, translate(err)
	}
	return &bill, nil
}

func (r *billRepository) SumAmountByDoctor(ctx context.Context, doctorID uint) (float64, error) {
	var total float64
	// COALESCE keeps "no bills yet" a zero total rather than an error.
	if err := r.db.WithContext(ctx).Model(&models.Bill{}).
		Where("doctor_id = ?", doctorID).
		Select("COALESCE(SUM(amount), 0)").Scan(&total).Error; err != nil {
		return 0, translate(err)
	}
	return total, nil
}
