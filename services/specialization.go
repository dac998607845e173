package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/22Vinith/Hospital-Management/repository"
)

// SpecializationRegistry keeps the set of specializations consistent
// with the doctor records: a name is listed iff at least one doctor
// currently carries it.
type SpecializationRegistry struct {
	specs   repository.SpecializationRepository
	doctors repository.DoctorRepository
	log     *zap.Logger
}

func NewSpecializationRegistry(specs repository.SpecializationRepository, doctors repository.DoctorRepository, log *zap.Logger) *SpecializationRegistry {
	return &SpecializationRegistry{specs: specs, doctors: doctors, log: log}
}

// EnsureRegistered adds the specialization to the registry if absent.
// Idempotent; called when a doctor completes signup.
func (r *SpecializationRegistry) EnsureRegistered(ctx context.Context, specialization string) error {
	if specialization == "" {
		return nil
	}
	return r.specs.Upsert(ctx, specialization)
}

// ReleaseIfUnused removes the specialization once no doctor carries it
// anymore. The count is always recomputed from the store; an in-memory
// counter would drift without transactions.
func (r *SpecializationRegistry) ReleaseIfUnused(ctx context.Context, specialization string) error {
	if specialization == "" {
		return nil
	}
	count, err := r.doctors.CountBySpecialization(ctx, specialization)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	r.log.Info("releasing unused specialization", zap.String("specialization", specialization))
	return r.specs.Delete(ctx, specialization)
}

// List returns the registered specializations in name order.
func (r *SpecializationRegistry) List(ctx context.Context) ([]string, error) {
	return r.specs.List(ctx)
}
