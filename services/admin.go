package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/22Vinith/Hospital-Management/authentication"
	"github.com/22Vinith/Hospital-Management/models"
	"github.com/22Vinith/Hospital-Management/repository"
)

type AdminService struct {
	admins   repository.AdminRepository
	doctors  repository.DoctorRepository
	registry *SpecializationRegistry
	tokens   *authentication.TokenService
	mailer   Mailer
	log      *zap.Logger
}

func NewAdminService(
	admins repository.AdminRepository,
	doctors repository.DoctorRepository,
	registry *SpecializationRegistry,
	tokens *authentication.TokenService,
	mailer Mailer,
	log *zap.Logger,
) *AdminService {
	return &AdminService{
		admins:   admins,
		doctors:  doctors,
		registry: registry,
		tokens:   tokens,
		mailer:   mailer,
		log:      log,
	}
}

// Register creates a new admin account.
func (s *AdminService) Register(ctx context.Context, name, email, password string) (*models.Admin, error) {
	_, err := s.admins.FindByEmail(ctx, email)
	if err == nil {
		return nil, models.ErrAlreadyExists
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	hashed, err := authentication.HashPassword(password)
	if err != nil {
		return nil, err
	}
	admin := &models.Admin{Name: name, Email: email, Password: hashed, Role: "admin"}
	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, err
	}
	s.log.Info("admin registered", zap.Uint("admin_id", admin.AdminID))
	return admin, nil
}

// Login verifies credentials and issues a token pair, persisting the
// refresh token on the record. The error is the same whether the email
// or the password was wrong.
func (s *AdminService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}
	if !authentication.CheckPassword(password, admin.Password) {
		return nil, models.ErrInvalidCredentials
	}

	access, err := s.tokens.IssueAccessToken(authentication.RoleAdmin, admin.AdminID)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.IssueRefreshToken(authentication.RoleAdmin, admin.AdminID)
	if err != nil {
		return nil, err
	}
	if err := s.admins.UpdateRefreshToken(ctx, admin.AdminID, refresh); err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// ForgotPassword emails a reset-purpose token to a registered admin.
func (s *AdminService) ForgotPassword(ctx context.Context, email string) error {
	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	token, err := s.tokens.IssueResetToken(authentication.RoleAdmin, admin.AdminID)
	if err != nil {
		return err
	}
	if err := s.mailer.SendResetToken(email, token); err != nil {
		return fmt.Errorf("%w: %v", models.ErrDeliveryFailed, err)
	}
	return nil
}

// ResetPassword overwrites the password hash. The refresh token is left
// untouched; existing sessions keep working.
func (s *AdminService) ResetPassword(ctx context.Context, adminID uint, newPassword string) error {
	hashed, err := authentication.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.admins.UpdatePassword(ctx, adminID, hashed)
}

// RefreshToken mints a fresh access token from the stored refresh token.
func (s *AdminService) RefreshToken(ctx context.Context, adminID uint) (string, error) {
	admin, err := s.admins.FindByID(ctx, adminID)
	if err != nil {
		return "", err
	}
	return s.tokens.RotateAccessToken(authentication.RoleAdmin, admin.RefreshToken)
}

// AddDoctor pre-provisions a doctor record by email only; the doctor
// fills in the rest at signup.
func (s *AdminService) AddDoctor(ctx context.Context, email string) (*models.Doctor, error) {
	_, err := s.doctors.FindByEmail(ctx, email)
	if err == nil {
		return nil, models.ErrAlreadyExists
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	doctor := &models.Doctor{Email: email, Role: "doctor"}
	if err := s.doctors.Create(ctx, doctor); err != nil {
		return nil, err
	}
	s.log.Info("doctor pre-provisioned", zap.String("email", email))
	return doctor, nil
}

// ListDoctors returns a page of doctors with the overall total.
func (s *AdminService) ListDoctors(ctx context.Context, page, limit int) ([]models.Doctor, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return s.doctors.List(ctx, page, limit)
}

func (s *AdminService) GetDoctor(ctx context.Context, id uint) (*models.Doctor, error) {
	return s.doctors.FindByID(ctx, id)
}

// DeleteDoctor removes the doctor and then releases its specialization
// from the registry when no other doctor carries it.
func (s *AdminService) DeleteDoctor(ctx context.Context, id uint) error {
	doctor, err := s.doctors.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.doctors.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.registry.ReleaseIfUnused(ctx, doctor.Specialization); err != nil {
		// The doctor is gone either way; a stale registry entry is
		// corrected on the next delete of that specialization.
		s.log.Warn("failed to release specialization",
			zap.String("specialization", doctor.Specialization), zap.Error(err))
	}
	return nil
}
