package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/22Vinith/Hospital-Management/authentication"
	"github.com/22Vinith/Hospital-Management/configuration"
	"github.com/22Vinith/Hospital-Management/models"
)

// Function-field mock: unset fields fail loudly so a test can't pass
// by accident through an unconfigured path.

var _ DoctorRepository = (*stubDoctorStore)(nil)

type stubDoctorStore struct {
	FindByIDFunc           func(ctx context.Context, id uint) (*models.Doctor, error)
	ListFunc               func(ctx context.Context, page, limit int) ([]models.Doctor, int64, error)
	UpdateRefreshTokenFunc func(ctx context.Context, id uint, refreshToken string) error
}

func (s *stubDoctorStore) Create(ctx context.Context, doctor *models.Doctor) error {
	return errors.New("CreateFunc not set")
}

func (s *stubDoctorStore) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	return nil, errors.New("FindByEmailFunc not set")
}

func (s *stubDoctorStore) FindByID(ctx context.Context, id uint) (*models.Doctor, error) {
	if s.FindByIDFunc != nil {
		return s.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not set")
}

func (s *stubDoctorStore) List(ctx context.Context, page, limit int) ([]models.Doctor, int64, error) {
	if s.ListFunc != nil {
		return s.ListFunc(ctx, page, limit)
	}
	return nil, 0, errors.New("ListFunc not set")
}

func (s *stubDoctorStore) ListBySpecialization(ctx context.Context, specialization string) ([]models.Doctor, error) {
	return nil, errors.New("ListBySpecializationFunc not set")
}

func (s *stubDoctorStore) CountBySpecialization(ctx context.Context, specialization string) (int64, error) {
	return 0, errors.New("CountBySpecializationFunc not set")
}

func (s *stubDoctorStore) CompleteSignup(ctx context.Context, email, name, specialization, hashedPassword string) error {
	return errors.New("CompleteSignupFunc not set")
}

func (s *stubDoctorStore) UpdatePassword(ctx context.Context, id uint, hashedPassword string) error {
	return errors.New("UpdatePasswordFunc not set")
}

func (s *stubDoctorStore) UpdateRefreshToken(ctx context.Context, id uint, refreshToken string) error {
	if s.UpdateRefreshTokenFunc != nil {
		return s.UpdateRefreshTokenFunc(ctx, id, refreshToken)
	}
	return errors.New("UpdateRefreshTokenFunc not set")
}

func (s *stubDoctorStore) Delete(ctx context.Context, id uint) error {
	return errors.New("DeleteFunc not set")
}

func testDoctor() *models.Doctor {
	return &models.Doctor{
		DoctorID:       7,
		DoctorName:     "Dr. Rao",
		Specialization: "cardiology",
		Email:          "rao@clinic.com",
		Password:       "$2a$10$hash",
		Role:           "doctor",
		RefreshToken:   "stored-refresh-token",
		CreatedAt:      time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:      time.Date(2026, 8, 2, 9, 30, 0, 0, time.UTC),
	}
}

// unreachableRedis returns a client whose every command fails, so the
// decorator's error-is-a-miss paths run without a live server.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestNewCachedDoctorRepositoryNilClientReturnsInner(t *testing.T) {
	inner := &stubDoctorStore{}
	got := NewCachedDoctorRepository(inner, nil, zap.NewNop())
	assert.Same(t, inner, got)
}

func TestDoctorCacheEntryRoundTripKeepsCredentials(t *testing.T) {
	doctor := testDoctor()

	raw, err := json.Marshal(newDoctorCacheEntry(doctor))
	assert.NoError(t, err)

	var entry doctorCacheEntry
	assert.NoError(t, json.Unmarshal(raw, &entry))

	got := entry.doctor()
	assert.Equal(t, *doctor, got)
	assert.Equal(t, "stored-refresh-token", got.RefreshToken)
	assert.Equal(t, "$2a$10$hash", got.Password)
}

// Rotation must keep working when the doctor row was served from the
// cache rather than postgres.
func TestDoctorCacheRoundTripPreservesRefreshRotation(t *testing.T) {
	tokens := authentication.NewTokenService(configuration.JWTSecrets{
		AdminSession:   "admin-session-secret",
		DoctorSession:  "doctor-session-secret",
		PatientSession: "patient-session-secret",
		AdminReset:     "admin-reset-secret",
		DoctorReset:    "doctor-reset-secret",
		PatientReset:   "patient-reset-secret",
	})

	doctor := testDoctor()
	refresh, err := tokens.IssueRefreshToken(authentication.RoleDoctor, doctor.DoctorID)
	assert.NoError(t, err)
	doctor.RefreshToken = refresh

	raw, err := json.Marshal(newDoctorCacheEntry(doctor))
	assert.NoError(t, err)
	var entry doctorCacheEntry
	assert.NoError(t, json.Unmarshal(raw, &entry))
	cached := entry.doctor()

	access, err := tokens.RotateAccessToken(authentication.RoleDoctor, cached.RefreshToken)
	assert.NoError(t, err)

	id, err := tokens.Verify(authentication.RoleDoctor, authentication.PurposeSession, access)
	assert.NoError(t, err)
	assert.Equal(t, doctor.DoctorID, id)
}

func TestDoctorModelJSONStillHidesCredentials(t *testing.T) {
	raw, err := json.Marshal(testDoctor())
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), "stored-refresh-token")
	assert.NotContains(t, string(raw), "$2a$10$hash")
}

func TestDoctorCacheListRoundTripKeepsCredentials(t *testing.T) {
	doctor := testDoctor()

	raw, err := json.Marshal(cachedDoctorList{
		Doctors: []doctorCacheEntry{newDoctorCacheEntry(doctor)},
		Total:   1,
	})
	assert.NoError(t, err)

	var cached cachedDoctorList
	assert.NoError(t, json.Unmarshal(raw, &cached))
	assert.Len(t, cached.Doctors, 1)
	assert.Equal(t, *doctor, cached.Doctors[0].doctor())
}

func TestDoctorCacheReadFailureFallsThrough(t *testing.T) {
	doctor := testDoctor()
	inner := &stubDoctorStore{
		FindByIDFunc: func(ctx context.Context, id uint) (*models.Doctor, error) {
			assert.Equal(t, uint(7), id)
			return doctor, nil
		},
	}
	repo := NewCachedDoctorRepository(inner, unreachableRedis(), zap.NewNop())

	got, err := repo.FindByID(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, "stored-refresh-token", got.RefreshToken)
}

func TestDoctorCacheMissPropagatesStoreError(t *testing.T) {
	inner := &stubDoctorStore{
		FindByIDFunc: func(ctx context.Context, id uint) (*models.Doctor, error) {
			return nil, models.ErrNotFound
		},
	}
	repo := NewCachedDoctorRepository(inner, unreachableRedis(), zap.NewNop())

	_, err := repo.FindByID(context.Background(), 404)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDoctorCacheMutationSurvivesInvalidationFailure(t *testing.T) {
	var stored string
	inner := &stubDoctorStore{
		UpdateRefreshTokenFunc: func(ctx context.Context, id uint, refreshToken string) error {
			stored = refreshToken
			return nil
		},
	}
	repo := NewCachedDoctorRepository(inner, unreachableRedis(), zap.NewNop())

	err := repo.UpdateRefreshToken(context.Background(), 7, "rotated-token")
	assert.NoError(t, err)
	assert.Equal(t, "rotated-token", stored)
}

func TestDoctorCacheMutationErrorSkipsInvalidation(t *testing.T) {
	inner := &stubDoctorStore{
		UpdateRefreshTokenFunc: func(ctx context.Context, id uint, refreshToken string) error {
			return models.ErrNotFound
		},
	}
	repo := NewCachedDoctorRepository(inner, unreachableRedis(), zap.NewNop())

	err := repo.UpdateRefreshToken(context.Background(), 7, "rotated-token")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
