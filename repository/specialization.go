package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/22Vinith/Hospital-Management/models"
)

type SpecializationRepository interface {
	// Upsert is a find-or-create on the unique name column; concurrent
	// first registrations collapse into a single row.
	Upsert(ctx context.Context, name string) error
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]string, error)
}

type specializationRepository struct {
	db *gorm.DB
}

func NewSpecializationRepository(db *gorm.DB) SpecializationRepository {
	return &specializationRepository{db: db}
}

func (r *specializationRepository) Upsert(ctx context.Context, name string) error {
	return translate(r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Specialization{Name: name}).Error)
}

func (r *specializationRepository) Delete(ctx context.Context, name string) error {
	return translate(r.db.WithContext(ctx).
		Where("name = ?", name).Delete(&models.Specialization{}).Error)
}

func (r *specializationRepository) List(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).Model(&models.Specialization{}).
		Order("name").Pluck("name", &names).Error; err != nil {
		return nil, translate(err)
	}
	return names, nil
}
