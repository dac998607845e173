package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/22Vinith/Hospital-Management/models"
)

const doctorCacheTTL = 10 * time.Minute

// doctorCacheEntry is the redis representation of a doctor row. The API
// model hides Password and RefreshToken behind `json:"-"`, so caching it
// directly would drop the stored credentials on every hit; this entry
// serializes every column.
type doctorCacheEntry struct {
	DoctorID       uint      `json:"doctor_id"`
	DoctorName     string    `json:"doctor_name"`
	Specialization string    `json:"specialization"`
	Email          string    `json:"email"`
	Password       string    `json:"password"`
	Role           string    `json:"role"`
	RefreshToken   string    `json:"refresh_token"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func newDoctorCacheEntry(d *models.Doctor) doctorCacheEntry {
	return doctorCacheEntry{
		DoctorID:       d.DoctorID,
		DoctorName:     d.DoctorName,
		Specialization: d.Specialization,
		Email:          d.Email,
		Password:       d.Password,
		Role:           d.Role,
		RefreshToken:   d.RefreshToken,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func (e doctorCacheEntry) doctor() models.Doctor {
	return models.Doctor{
		DoctorID:       e.DoctorID,
		DoctorName:     e.DoctorName,
		Specialization: e.Specialization,
		Email:          e.Email,
		Password:       e.Password,
		Role:           e.Role,
		RefreshToken:   e.RefreshToken,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

type cachedDoctorList struct {
	Doctors []doctorCacheEntry `json:"doctors"`
	Total   int64              `json:"total"`
}

// cachedDoctorRepository is a read-through cache over the doctor store.
// The cache is advisory: any redis failure is logged and treated as a
// miss, and every mutation invalidates the doctor keys before
// returning.
type cachedDoctorRepository struct {
	DoctorRepository
	client *redis.Client
	log    *zap.Logger
}

// NewCachedDoctorRepository wraps inner with redis caching on FindByID
// and List. A nil client disables caching entirely.
func NewCachedDoctorRepository(inner DoctorRepository, client *redis.Client, log *zap.Logger) DoctorRepository {
	if client == nil {
		return inner
	}
	return &cachedDoctorRepository{DoctorRepository: inner, client: client, log: log}
}

func (r *cachedDoctorRepository) FindByID(ctx context.Context, id uint) (*models.Doctor, error) {
	key := fmt.Sprintf("doctor:%d", id)
	if raw, err := r.client.Get(ctx, key).Result(); err == nil {
		var entry doctorCacheEntry
		if err := json.Unmarshal([]byte(raw), &entry); err == nil {
			doctor := entry.doctor()
			return &doctor, nil
		}
	} else if err != redis.Nil {
		r.log.Warn("doctor cache read failed", zap.Error(err))
	}

	doctor, err := r.DoctorRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(newDoctorCacheEntry(doctor)); err == nil {
		if err := r.client.Set(ctx, key, raw, doctorCacheTTL).Err(); err != nil {
			r.log.Warn("doctor cache write failed", zap.Error(err))
		}
	}
	return doctor, nil
}

func (r *cachedDoctorRepository) List(ctx context.Context, page, limit int) ([]models.Doctor, int64, error) {
	key := fmt.Sprintf("doctors:%d:%d", page, limit)
	if raw, err := r.client.Get(ctx, key).Result(); err == nil {
		var cached cachedDoctorList
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			doctors := make([]models.Doctor, 0, len(cached.Doctors))
			for _, entry := range cached.Doctors {
				doctors = append(doctors, entry.doctor())
			}
			return doctors, cached.Total, nil
		}
	} else if err != redis.Nil {
		r.log.Warn("doctor cache read failed", zap.Error(err))
	}

	doctors, total, err := r.DoctorRepository.List(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}
	entries := make([]doctorCacheEntry, 0, len(doctors))
	for i := range doctors {
		entries = append(entries, newDoctorCacheEntry(&doctors[i]))
	}
	if raw, err := json.Marshal(cachedDoctorList{Doctors: entries, Total: total}); err == nil {
		if err := r.client.Set(ctx, key, raw, doctorCacheTTL).Err(); err != nil {
			r.log.Warn("doctor cache write failed", zap.Error(err))
		}
	}
	return doctors, total, nil
}

func (r *cachedDoctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	if err := r.DoctorRepository.Create(ctx, doctor); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *cachedDoctorRepository) CompleteSignup(ctx context.Context, email, name, specialization, hashedPassword string) error {
	if err := r.DoctorRepository.CompleteSignup(ctx, email, name, specialization, hashedPassword); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *cachedDoctorRepository) UpdatePassword(ctx context.Context, id uint, hashedPassword string) error {
	if err := r.DoctorRepository.UpdatePassword(ctx, id, hashedPassword); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *cachedDoctorRepository) UpdateRefreshToken(ctx context.Context, id uint, refreshToken string) error {
	if err := r.DoctorRepository.UpdateRefreshToken(ctx, id, refreshToken); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *cachedDoctorRepository) Delete(ctx context.Context, id uint) error {
	if err := r.DoctorRepository.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// invalidate drops every doctor key. Failures leave stale entries that
// expire with the TTL; the cache is never a correctness dependency.
func (r *cachedDoctorRepository) invalidate(ctx context.Context) {
	iter := r.client.Scan(ctx, 0, "doctor*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		r.log.Warn("doctor cache invalidation scan failed", zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.log.Warn("doctor cache invalidation failed", zap.Error(err))
	}
}
