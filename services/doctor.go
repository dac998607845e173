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

type DoctorService struct {
	doctors      repository.DoctorRepository
	patients     repository.PatientRepository
	appointments repository.AppointmentRepository
	bills        repository.BillRepository
	registry     *SpecializationRegistry
	tokens       *authentication.TokenService
	mailer       Mailer
	log          *zap.Logger
}

func NewDoctorService(
	doctors repository.DoctorRepository,
	patients repository.PatientRepository,
	appointments repository.AppointmentRepository,
	bills repository.BillRepository,
	registry *SpecializationRegistry,
	tokens *authentication.TokenService,
	mailer Mailer,
	log *zap.Logger,
) *DoctorService {
	return &DoctorService{
		doctors:      doctors,
		patients:     patients,
		appointments: appointments,
		bills:        bills,
		registry:     registry,
		tokens:       tokens,
		mailer:       mailer,
		log:          log,
	}
}

// SignUp completes a pre-provisioned doctor record with name,
// specialization and password, and registers the specialization.
func (s *DoctorService) SignUp(ctx context.Context, email, name, specialization, password string) (*models.Doctor, error) {
	if _, err := s.doctors.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotProvisioned
		}
		return nil, err
	}

	hashed, err := authentication.HashPassword(password)
	if err != nil {
		return nil, err
	}
	if err := s.doctors.CompleteSignup(ctx, email, name, specialization, hashed); err != nil {
		return nil, err
	}
	if err := s.registry.EnsureRegistered(ctx, specialization); err != nil {
		return nil, err
	}
	s.log.Info("doctor signed up", zap.String("specialization", specialization))
	return s.doctors.FindByEmail(ctx, email)
}

func (s *DoctorService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	doctor, err := s.doctors.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}
	// A pre-provisioned record without a password cannot log in yet;
	// the uniform error avoids leaking provisioning state.
	if !doctor.Provisioned() || !authentication.CheckPassword(password, doctor.Password) {
		return nil, models.ErrInvalidCredentials
	}

	access, err := s.tokens.IssueAccessToken(authentication.RoleDoctor, doctor.DoctorID)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.IssueRefreshToken(authentication.RoleDoctor, doctor.DoctorID)
	if err != nil {
		return nil, err
	}
	if err := s.doctors.UpdateRefreshToken(ctx, doctor.DoctorID, refresh); err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *DoctorService) ForgotPassword(ctx context.Context, email string) error {
	doctor, err := s.doctors.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	token, err := s.tokens.IssueResetToken(authentication.RoleDoctor, doctor.DoctorID)
	if err != nil {
		return err
	}
	if err := s.mailer.SendResetToken(email, token); err != nil {
		return fmt.Errorf("%w: %v", models.ErrDeliveryFailed, err)
	}
	return nil
}

func (s *DoctorService) ResetPassword(ctx context.Context, doctorID uint, newPassword string) error {
	hashed, err := authentication.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.doctors.UpdatePassword(ctx, doctorID, hashed)
}

func (s *DoctorService) RefreshToken(ctx context.Context, doctorID uint) (string, error) {
	doctor, err := s.doctors.FindByID(ctx, doctorID)
	if err != nil {
		return "", err
	}
	return s.tokens.RotateAccessToken(authentication.RoleDoctor, doctor.RefreshToken)
}

// Appointments lists the appointments matching the doctor's own
// specialization, paginated. A doctor who has not completed signup has
// no specialization and sees an empty page.
func (s *DoctorService) Appointments(ctx context.Context, doctorID uint, page, limit int) ([]models.Appointment, int64, error) {
	doctor, err := s.doctors.FindByID(ctx, doctorID)
	if err != nil {
		return nil, 0, err
	}
	if doctor.Specialization == "" {
		return []models.Appointment{}, 0, nil
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return s.appointments.ListBySpecialization(ctx, doctor.Specialization, page, limit)
}

func (s *DoctorService) GetPatient(ctx context.Context, id uint) (*models.Patient, error) {
	patient, err := s.patients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patient.Password = ""
	return patient, nil
}

// UpdateAilmentStatus flips the open/resolved flag on an appointment.
// Only the assigned doctor may do this.
func (s *DoctorService) UpdateAilmentStatus(ctx context.Context, doctorID, appointmentID uint, status bool) error {
	appointment, err := s.appointments.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment.DoctorID != doctorID {
		return models.ErrForbidden
	}
	return s.appointments.UpdateAilmentStatus(ctx, appointmentID, status)
}

// DeleteAppointment removes an appointment; only the assigned doctor
// may do this.
func (s *DoctorService) DeleteAppointment(ctx context.Context, doctorID, appointmentID uint) error {
	appointment, err := s.appointments.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment.DoctorID != doctorID {
		return models.ErrForbidden
	}
	return s.appointments.Delete(ctx, appointmentID)
}

// GenerateBill writes the one immutable bill for an appointment,
// snapshotting the patient's details, and emails the PDF invoice to the
// patient. A second bill for the same appointment fails with
// models.ErrAlreadyExists.
func (s *DoctorService) GenerateBill(ctx context.Context, doctorID, appointmentID uint, prescription string, amount float64, currency string) (*models.Bill, error) {
	appointment, err := s.appointments.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.DoctorID != doctorID {
		return nil, models.ErrForbidden
	}
	patient, err := s.patients.FindByID(ctx, appointment.PatientID)
	if err != nil {
		return nil, err
	}

	bill := &models.Bill{
		AppointmentID: appointmentID,
		DoctorID:      doctorID,
		PatientName:   patient.Name,
		PatientEmail:  patient.Email,
		PatientPhno:   patient.Phno,
		Prescription:  prescription,
		Amount:        amount,
		Currency:      currency,
	}
	if err := s.bills.Create(ctx, bill); err != nil {
		return nil, err
	}

	doctor, err := s.doctors.FindByID(ctx, doctorID)
	if err != nil {
		return bill, nil
	}
	pdf, err := RenderInvoicePDF(bill, doctor.DoctorName)
	if err != nil {
		s.log.Warn("failed to render invoice pdf", zap.Uint("bill_id", bill.BillID), zap.Error(err))
		return bill, nil
	}
	// The bill is already persisted; delivery failure is logged, not
	// surfaced, so billing stays exactly-once.
	if err := s.mailer.SendInvoice(patient.Email, "invoice.pdf", pdf); err != nil {
		s.log.Warn("failed to email invoice", zap.Uint("bill_id", bill.BillID), zap.Error(err))
	}
	return bill, nil
}

// Earnings sums the doctor's bill amounts; zero bills is a zero total,
// not an error.
func (s *DoctorService) Earnings(ctx context.Context, doctorID uint) (float64, error) {
	return s.bills.SumAmountByDoctor(ctx, doctorID)
}
