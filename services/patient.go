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

type PatientService struct {
	patients     repository.PatientRepository
	doctors      repository.DoctorRepository
	appointments repository.AppointmentRepository
	bills        repository.BillRepository
	registry     *SpecializationRegistry
	tokens       *authentication.TokenService
	mailer       Mailer
	log          *zap.Logger
}

func NewPatientService(
	patients repository.PatientRepository,
	doctors repository.DoctorRepository,
	appointments repository.AppointmentRepository,
	bills repository.BillRepository,
	registry *SpecializationRegistry,
	tokens *authentication.TokenService,
	mailer Mailer,
	log *zap.Logger,
) *PatientService {
	return &PatientService{
		patients:     patients,
		doctors:      doctors,
		appointments: appointments,
		bills:        bills,
		registry:     registry,
		tokens:       tokens,
		mailer:       mailer,
		log:          log,
	}
}

func (s *PatientService) Register(ctx context.Context, name string, age int, email string, phno int64, password string) (*models.Patient, error) {
	_, err := s.patients.FindByEmail(ctx, email)
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
	patient := &models.Patient{
		Name:     name,
		Age:      age,
		Email:    email,
		Phno:     phno,
		Password: hashed,
		Role:     "patient",
	}
	if err := s.patients.Create(ctx, patient); err != nil {
		return nil, err
	}
	s.log.Info("patient registered", zap.Uint("patient_id", patient.PatientID))
	return patient, nil
}

func (s *PatientService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	patient, err := s.patients.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}
	if !authentication.CheckPassword(password, patient.Password) {
		return nil, models.ErrInvalidCredentials
	}

	access, err := s.tokens.IssueAccessToken(authentication.RolePatient, patient.PatientID)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.IssueRefreshToken(authentication.RolePatient, patient.PatientID)
	if err != nil {
		return nil, err
	}
	if err := s.patients.UpdateRefreshToken(ctx, patient.PatientID, refresh); err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *PatientService) ForgotPassword(ctx context.Context, email string) error {
	patient, err := s.patients.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	token, err := s.tokens.IssueResetToken(authentication.RolePatient, patient.PatientID)
	if err != nil {
		return err
	}
	if err := s.mailer.SendResetToken(email, token); err != nil {
		return fmt.Errorf("%w: %v", models.ErrDeliveryFailed, err)
	}
	return nil
}

func (s *PatientService) ResetPassword(ctx context.Context, patientID uint, newPassword string) error {
	hashed, err := authentication.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.patients.UpdatePassword(ctx, patientID, hashed)
}

func (s *PatientService) RefreshToken(ctx context.Context, patientID uint) (string, error) {
	patient, err := s.patients.FindByID(ctx, patientID)
	if err != nil {
		return "", err
	}
	return s.tokens.RotateAccessToken(authentication.RolePatient, patient.RefreshToken)
}

// BookAppointment creates an appointment, snapshotting the chosen
// doctor's specialization at booking time. The snapshot is never
// recomputed, so a later specialization change does not touch existing
// appointments.
func (s *PatientService) BookAppointment(ctx context.Context, patientID, doctorID uint, ailment string) (*models.Appointment, error) {
	doctor, err := s.doctors.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor.Specialization == "" {
		// Pre-provisioned but not yet signed up; not bookable.
		return nil, models.ErrNotFound
	}

	appointment := &models.Appointment{
		PatientID:      patientID,
		DoctorID:       doctorID,
		Specialization: doctor.Specialization,
		Ailment:        ailment,
	}
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, err
	}
	s.log.Info("appointment booked",
		zap.Uint("appointment_id", appointment.AppointmentID),
		zap.String("specialization", appointment.Specialization))
	return appointment, nil
}

// Specializations lists the registry for doctor discovery.
func (s *PatientService) Specializations(ctx context.Context) ([]string, error) {
	return s.registry.List(ctx)
}

// DoctorsBySpecialization lists the doctors offering a specialization,
// passwords cleared.
func (s *PatientService) DoctorsBySpecialization(ctx context.Context, specialization string) ([]models.Doctor, error) {
	doctors, err := s.doctors.ListBySpecialization(ctx, specialization)
	if err != nil {
		return nil, err
	}
	for i := range doctors {
		doctors[i].Password = ""
		doctors[i].RefreshToken = ""
	}
	return doctors, nil
}

// GetBill returns the bill for one of the patient's own appointments.
func (s *PatientService) GetBill(ctx context.Context, patientID, appointmentID uint) (*models.Bill, error) {
	appointment, err := s.appointments.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.PatientID != patientID {
		return nil, models.ErrForbidden
	}
	return s.bills.FindByAppointmentID(ctx, appointmentID)
}

// Appointments lists the patient's own bookings.
func (s *PatientService) Appointments(ctx context.Context, patientID uint) ([]models.Appointment, error) {
	return s.appointments.ListByPatient(ctx, patientID)
}

func (s *PatientService) GetInfo(ctx context.Context, patientID uint) (*models.Patient, error) {
	patient, err := s.patients.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	patient.Password = ""
	return patient, nil
}

func (s *PatientService) UpdateInfo(ctx context.Context, patientID uint, name string, age int, email string, phno int64) error {
	return s.patients.UpdateInfo(ctx, patientID, name, age, email, phno)
}
