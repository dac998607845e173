package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/22Vinith/Hospital-Management/authentication"
	"github.com/22Vinith/Hospital-Management/models"
	"github.com/22Vinith/Hospital-Management/services"
)

type PatientController struct {
	svc *services.PatientService
}

func NewPatientController(svc *services.PatientService) *PatientController {
	return &PatientController{svc: svc}
}

// ownPatientID reads the :id path segment and rejects the request unless
// it matches the authenticated principal.
func ownPatientID(c *gin.Context) (uint, bool) {
	id, ok := paramUint(c, "id")
	if !ok {
		return 0, false
	}
	principalID, authed := authentication.PrincipalID(c)
	if !authed {
		respondError(c, models.ErrUnauthenticated)
		return 0, false
	}
	if id != principalID {
		respondError(c, models.ErrForbidden)
		return 0, false
	}
	return id, true
}

type patientRegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Age      int    `json:"age" validate:"required,gt=0"`
	Email    string `json:"email" validate:"required,email"`
	Phno     int64  `json:"phno" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

func (ctl *PatientController) Register(c *gin.Context) {
	var req patientRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidation(c, err)
		return
	}

	patient, err := ctl.svc.Register(c.Request.Context(), req.Name, req.Age, req.Email, req.Phno, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Patient registered successfully", patient)
}

func (ctl *PatientController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidation(c, err)
		return
	}

	pair, err := ctl.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Patient logged in successfully", pair)
}

func (ctl *PatientController) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidation(c, err)
		return
	}

	if err := ctl.svc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Reset password token sent to registered email id", nil)
}

func (ctl *PatientController) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidation(c, err)
		return
	}

	patientID, ok := authentication.PrincipalID(c)
	if !ok {
		respondError(c, models.ErrUnauthenticated)
		return
	}
	if err := ctl.svc.ResetPassword(c.Request.Context(), patientID, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Password reset successfully", nil)
}

func (ctl *PatientController) RefreshToken(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	token, err := ctl.svc.RefreshToken(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Access token refreshed successfully", gin.H{"token": token})
}

type bookAppointmentRequest struct {
	DoctorID uint   `json:"doctor_id" validate:"required"`
	Ailment  string `json:"ailment" validate:"required"`
}

// BookAppointment records a booking against the chosen doctor's current
// specialization.
func (ctl *PatientController) BookAppointment(c *gin.Context) {
	var req bookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidation(c, err)
		return
	}

	patientID, ok := authentication.PrincipalID(c)
	if !ok {
		respondError(c, models.ErrUnauthenticated)
		return
	}
	appointment, err := ctl.svc.BookAppointment(c.Request.Context(), patientID, req.DoctorID, req.Ailment)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Appointment booked successfully", appointment)
}

func (ctl *PatientController) Specializations(c *gin.Context) {
	specs, err := ctl.svc.Specializations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Specializations retrieved successfully", gin.H{"specializations": specs})
}

type doctorsBySpecializationRequest struct {
	Specialization string `json:"specialization" validate:"required"`
}

func (ctl *PatientController) DoctorsBySpecialization(c *gin.Context) {
	var req doctorsBySpecializationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidation(c, err)
		return
	}

	doctors, err := ctl.svc.DoctorsBySpecialization(c.Request.Context(), req.Specialization)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Doctors retrieved successfully", gin.H{"doctors": doctors})
}

func (ctl *PatientController) GetBill(c *gin.Context) {
	appointmentID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	patientID, authed := authentication.PrincipalID(c)
	if !authed {
		respondError(c, models.ErrUnauthenticated)
		return
	}
	bill, err := ctl.svc.GetBill(c.Request.Context(), patientID, appointmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Bill retrieved successfully", bill)
}

func (ctl *PatientController) Appointments(c *gin.Context) {
	patientID, ok := ownPatientID(c)
	if !ok {
		return
	}
	appointments, err := ctl.svc.Appointments(c.Request.Context(), patientID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Appointments retrieved successfully", gin.H{"appointments": appointments})
}

func (ctl *PatientController) GetInfo(c *gin.Context) {
	patientID, ok := ownPatientID(c)
	if !ok {
		return
	}
	patient, err := ctl.svc.GetInfo(c.Request.Context(), patientID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Patient info retrieved successfully", patient)
}

type updatePatientInfoRequest struct {
	Name  string `json:"name" validate:"required"`
	Age   int    `json:"age" validate:"required,gt=0"`
	Email string `json:"email" validate:"required,email"`
	Phno  int64  `json:"phno" validate:"required"`
}

func (ctl *PatientController) UpdateInfo(c *gin.Context) {
	var req updatePatientInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidation(c, err)
		return
	}

	patientID, ok := ownPatientID(c)
	if !ok {
		return
	}
	if err := ctl.svc.UpdateInfo(c.Request.Context(), patientID, req.Name, req.Age, req.Email, req.Phno); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Patient info updated successfully", nil)
}
