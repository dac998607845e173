package services

import (
	"context"
	"errors"

	"github.com/22Vinith/Hospital-Management/models"
	"github.com/22Vinith/Hospital-Management/repository"
)

// Function-field mocks: unset fields fail loudly so a test can't pass
// by accident through an unconfigured path.

var _ repository.AdminRepository = (*mockAdminRepo)(nil)

type mockAdminRepo struct {
	CreateFunc             func(ctx context.Context, admin *models.Admin) error
	FindByEmailFunc        func(ctx context.Context, email string) (*models.Admin, error)
	FindByIDFunc           func(ctx context.Context, id uint) (*models.Admin, error)
	UpdatePasswordFunc     func(ctx context.Context, id uint, hashedPassword string) error
	UpdateRefreshTokenFunc func(ctx context.Context, id uint, refreshToken string) error
}

func (m *mockAdminRepo) Create(ctx context.Context, admin *models.Admin) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, admin)
	}
	return errors.New("CreateFunc not set")
}

func (m *mockAdminRepo) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, errors.New("FindByEmailFunc not set")
}

func (m *mockAdminRepo) FindByID(ctx context.Context, id uint) (*models.Admin, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not set")
}

func (m *mockAdminRepo) UpdatePassword(ctx context.Context, id uint, hashedPassword string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, id, hashedPassword)
	}
	return errors.New("UpdatePasswordFunc not set")
}

func (m *mockAdminRepo) UpdateRefreshToken(ctx context.Context, id uint, refreshToken string) error {
	if m.UpdateRefreshTokenFunc != nil {
		return m.UpdateRefreshTokenFunc(ctx, id, refreshToken)
	}
	return errors.New("UpdateRefreshTokenFunc not set")
}

var _ repository.DoctorRepository = (*mockDoctorRepo)(nil)

type mockDoctorRepo struct {
	CreateFunc                func(ctx context.Context, doctor *models.Doctor) error
	FindByEmailFunc           func(ctx context.Context, email string) (*models.Doctor, error)
	FindByIDFunc              func(ctx context.Context, id uint) (*models.Doctor, error)
	ListFunc                  func(ctx context.Context, page, limit int) ([]models.Doctor, int64, error)
	ListBySpecializationFunc  func(ctx context.Context, specialization string) ([]models.Doctor, error)
	CountBySpecializationFunc func(ctx context.Context, specialization string) (int64, error)
	CompleteSignupFunc        func(ctx context.Context, email, name, specialization, hashedPassword string) error
	UpdatePasswordFunc        func(ctx context.Context, id uint, hashedPassword string) error
	UpdateRefreshTokenFunc    func(ctx context.Context, id uint, refreshToken string) error
	DeleteFunc                func(ctx context.Context, id uint) error
}

func (m *mockDoctorRepo) Create(ctx context.Context, doctor *models.Doctor) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, doctor)
	}
	return errors.New("CreateFunc not set")
}

func (m *mockDoctorRepo) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, errors.New("FindByEmailFunc not set")
}

func (m *mockDoctorRepo) FindByID(ctx context.Context, id uint) (*models.Doctor, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not set")
}

func (m *mockDoctorRepo) List(ctx context.Context, page, limit int) ([]models.Doctor, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, limit)
	}
	return nil, 0, errors.New("ListFunc not set")
}

func (m *mockDoctorRepo) ListBySpecialization(ctx context.Context, specialization string) ([]models.Doctor, error) {
	if m.ListBySpecializationFunc != nil {
		return m.ListBySpecializationFunc(ctx, specialization)
	}
	return nil, errors.New("ListBySpecializationFunc not set")
}

func (m *mockDoctorRepo) CountBySpecialization(ctx context.Context, specialization string) (int64, error) {
	if m.CountBySpecializationFunc != nil {
		return m.CountBySpecializationFunc(ctx, specialization)
	}
	return 0, errors.New("CountBySpecializationFunc not set")
}

func (m *mockDoctorRepo) CompleteSignup(ctx context.Context, email, name, specialization, hashedPassword string) error {
	if m.CompleteSignupFunc != nil {
		return m.CompleteSignupFunc(ctx, email, name, specialization, hashedPassword)
	}
	return errors.New("CompleteSignupFunc not set")
}

func (m *mockDoctorRepo) UpdatePassword(ctx context.Context, id uint, hashedPassword string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, id, hashedPassword)
	}
	return errors.New("UpdatePasswordFunc not set")
}

func (m *mockDoctorRepo) UpdateRefreshToken(ctx context.Context, id uint, refreshToken string) error {
	if m.UpdateRefreshTokenFunc != nil {
		return m.UpdateRefreshTokenFunc(ctx, id, refreshToken)
	}
	return errors.New("UpdateRefreshTokenFunc not set")
}

func (m *mockDoctorRepo) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errors.New("DeleteFunc not set")
}

var _ repository.PatientRepository = (*mockPatientRepo)(nil)

type mockPatientRepo struct {
	CreateFunc             func(ctx context.Context, patient *models.Patient) error
	FindByEmailFunc        func(ctx context.Context, email string) (*models.Patient, error)
	FindByIDFunc           func(ctx context.Context, id uint) (*models.Patient, error)
	UpdateInfoFunc         func(ctx context.Context, id uint, name string, age int, email string, phno int64) error
	UpdatePasswordFunc     func(ctx context.Context, id uint, hashedPassword string) error
	UpdateRefreshTokenFunc func(ctx context.Context, id uint, refreshToken string) error
}

func (m *mockPatientRepo) Create(ctx context.Context, patient *models.Patient) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, patient)
	}
	return errors.New("CreateFunc not set")
}

func (m *mockPatientRepo) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, errors.New("FindByEmailFunc not set")
}

func (m *mockPatientRepo) FindByID(ctx context.Context, id uint) (*models.Patient, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not set")
}

func (m *mockPatientRepo) UpdateInfo(ctx context.Context, id uint, name string, age int, email string, phno int64) error {
	if m.UpdateInfoFunc != nil {
		return m.UpdateInfoFunc(ctx, id, name, age, email, phno)
	}
	return errors.New("UpdateInfoFunc not set")
}

func (m *mockPatientRepo) UpdatePassword(ctx context.Context, id uint, hashedPassword string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, id, hashedPassword)
	}
	return errors.New("UpdatePasswordFunc not set")
}

func (m *mockPatientRepo) UpdateRefreshToken(ctx context.Context, id uint, refreshToken string) error {
	if m.UpdateRefreshTokenFunc != nil {
		return m.UpdateRefreshTokenFunc(ctx, id, refreshToken)
	}
	return errors.New("UpdateRefreshTokenFunc not set")
}

var _ repository.AppointmentRepository = (*mockAppointmentRepo)(nil)

type mockAppointmentRepo struct {
	CreateFunc               func(ctx context.Context, appointment *models.Appointment) error
	FindByIDFunc             func(ctx context.Context, id uint) (*models.Appointment, error)
	ListBySpecializationFunc func(ctx context.Context, specialization string, page, limit int) ([]models.Appointment, int64, error)
	ListByPatientFunc        func(ctx context.Context, patientID uint) ([]models.Appointment, error)
	UpdateAilmentStatusFunc  func(ctx context.Context, id uint, status bool) error
	DeleteFunc               func(ctx context.Context, id uint) error
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appointment *models.Appointment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, appointment)
	}
	return errors.New("CreateFunc not set")
}

func (m *mockAppointmentRepo) FindByID(ctx context.Context, id uint) (*models.Appointment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not set")
}

func (m *mockAppointmentRepo) ListBySpecialization(ctx context.Context, specialization string, page, limit int) ([]models.Appointment, int64, error) {
	if m.ListBySpecializationFunc != nil {
		return m.ListBySpecializationFunc(ctx, specialization, page, limit)
	}
	return nil, 0, errors.New("ListBySpecializationFunc not set")
}

func (m *mockAppointmentRepo) ListByPatient(ctx context.Context, patientID uint) ([]models.Appointment, error) {
	if m.ListByPatientFunc != nil {
		return m.ListByPatientFunc(ctx, patientID)
	}
	return nil, errors.New("ListByPatientFunc not set")
}

func (m *mockAppointmentRepo) UpdateAilmentStatus(ctx context.Context, id uint, status bool) error {
	if m.UpdateAilmentStatusFunc != nil {
		return m.UpdateAilmentStatusFunc(ctx, id, status)
	}
	return errors.New("UpdateAilmentStatusFunc not set")
}

func (m *mockAppointmentRepo) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errors.New("DeleteFunc not set")
}

var _ repository.BillRepository = (*mockBillRepo)(nil)

type mockBillRepo struct {
	CreateFunc              func(ctx context.Context, bill *models.Bill) error
	FindByAppointmentIDFunc func(ctx context.Context, appointmentID uint) (*models.Bill, error)
	SumAmountByDoctorFunc   func(ctx context.Context, doctorID uint) (float64, error)
}

func (m *mockBillRepo) Create(ctx context.Context, bill *models.Bill) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, bill)
	}
	return errors.New("CreateFunc not set")
}

func (m *mockBillRepo) FindByAppointmentID(ctx context.Context, appointmentID uint) (*models.Bill, error) {
	if m.FindByAppointmentIDFunc != nil {
		return m.FindByAppointmentIDFunc(ctx, appointmentID)
	}
	return nil, errors.New("FindByAppointmentIDFunc not set")
}

func (m *mockBillRepo) SumAmountByDoctor(ctx context.Context, doctorID uint) (float64, error) {
	if m.SumAmountByDoctorFunc != nil {
		return m.SumAmountByDoctorFunc(ctx, doctorID)
	}
	return 0, errors.New("SumAmountByDoctorFunc not set")
}

var _ repository.SpecializationRepository = (*mockSpecializationRepo)(nil)

// mockSpecializationRepo keeps the set in memory so registry tests can
// observe membership across calls.
type mockSpecializationRepo struct {
	names      map[string]bool
	upsertErr  error
	upsertHits int
}

func newMockSpecializationRepo(names ...string) *mockSpecializationRepo {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return &mockSpecializationRepo{names: set}
}

func (m *mockSpecializationRepo) Upsert(ctx context.Context, name string) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upsertHits++
	m.names[name] = true
	return nil
}

func (m *mockSpecializationRepo) Delete(ctx context.Context, name string) error {
	delete(m.names, name)
	return nil
}

func (m *mockSpecializationRepo) List(ctx context.Context) ([]string, error) {
	out := make([]string, 0, len(m.names))
	for n := range m.names {
		out = append(out, n)
	}
	return out, nil
}

var _ Mailer = (*mockMailer)(nil)

type mockMailer struct {
	resetErr    error
	invoiceErr  error
	resetSent   []string
	resetTokens []string
	invoices    []string
}

func (m *mockMailer) SendResetToken(email, token string) error {
	if m.resetErr != nil {
		return m.resetErr
	}
	m.resetSent = append(m.resetSent, email)
	m.resetTokens = append(m.resetTokens, token)
	return nil
}

func (m *mockMailer) SendInvoice(email, attachmentName string, attachmentData []byte) error {
	if m.invoiceErr != nil {
		return m.invoiceErr
	}
	m.invoices = append(m.invoices, email)
	return nil
}
