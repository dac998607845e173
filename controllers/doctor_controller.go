package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/22Vinith/Hospital-Management/authentication"
	"github.com/22Vinith/Hospital-Management/models"
	"github.com/22Vinith/Hospital-Management/services"
)

type DoctorController struct {
	svc *services.DoctorService
}

func NewDoctorController(svc *services.DoctorService) *DoctorController {
	return &DoctorController{svc: svc}
}

type doctorSignUpRequest struct {
	Email          string `json:"email" validate:"required,email"`
	DoctorName     string `json:"doctor_name" validate:"required"`
	Specialization string `json:"specialization" validate:"required"`
	Password       string `json:"password" validate:"required,min=6"`
}

// SignUp completes a record the admin pre-provisioned by email.
func (ctl *DoctorController) SignUp(c *gin.Context) {
	var req doctorSignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidation(c, err)
		return
	}

	doctor, err := ctl.svc.SignUp(c.Request.Context(), req.Email, req.DoctorName, req.Specialization, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Doctor registered successfully", doctor)
}

func (ctl *DoctorController) Login(c *gin.Context) {
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
	respond(c, http.StatusOK, "Doctor logged in successfully", pair)
}

func (ctl *DoctorController) ForgotPassword(c *gin.Context) {
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

func (ctl *DoctorController) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidation(c, err)
		return
	}

	doctorID, ok := authentication.PrincipalID(c)
	if !ok {
		respondError(c, models.ErrUnauthenticated)
		return
	}
	if err := ctl.svc.ResetPassword(c.Request.Context(), doctorID, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Password reset successfully", nil)
}

func (ctl *DoctorController) RefreshToken(c *gin.Context) {
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

// Appointments lists the bookings matching the doctor's specialization.
func (ctl *DoctorController) Appointments(c *gin.Context) {
	doctorID, ok := authentication.PrincipalID(c)
	if !ok {
		respondError(c, models.ErrUnauthenticated)
		return
	}
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	appointments, total, err := ctl.svc.Appointments(c.Request.Context(), doctorID, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	if total == 0 {
		respond(c, http.StatusOK, "No patients have booked an appointment", gin.H{
			"appointments": []models.Appointment{},
			"total":        0,
		})
		return
	}
	respond(c, http.StatusOK, "Appointments retrieved successfully", gin.H{
		"appointments": appointments,
		"total":        total,
		"page":         page,
		"limit":        limit,
	})
}

func (ctl *DoctorController) GetPatient(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	patient, err := ctl.svc.GetPatient(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Patient retrieved successfully", patient)
}

type updateAilmentStatusRequest struct {
	AilmentStatus *bool `json:"ailment_status" validate:"required"`
}

func (ctl *DoctorController) UpdateAilmentStatus(c *gin.Context) {
	appointmentID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var req updateAilmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidation(c, err)
		return
	}

	doctorID, authed := authentication.PrincipalID(c)
	if !authed {
		respondError(c, models.ErrUnauthenticated)
		return
	}
	if err := ctl.svc.UpdateAilmentStatus(c.Request.Context(), doctorID, appointmentID, *req.AilmentStatus); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Ailment status updated successfully", nil)
}

func (ctl *DoctorController) DeleteAppointment(c *gin.Context) {
	appointmentID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	doctorID, authed := authentication.PrincipalID(c)
	if !authed {
		respondError(c, models.ErrUnauthenticated)
		return
	}
	if err := ctl.svc.DeleteAppointment(c.Request.Context(), doctorID, appointmentID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Appointment deleted successfully", nil)
}

type generateBillRequest struct {
	Prescription string  `json:"prescription" validate:"required"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	Currency     string  `json:"currency" validate:"required,len=3"`
}

func (ctl *DoctorController) GenerateBill(c *gin.Context) {
	appointmentID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var req generateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidation(c, err)
		return
	}

	doctorID, authed := authentication.PrincipalID(c)
	if !authed {
		respondError(c, models.ErrUnauthenticated)
		return
	}
	bill, err := ctl.svc.GenerateBill(c.Request.Context(), doctorID, appointmentID, req.Prescription, req.Amount, req.Currency)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Bill generated successfully", bill)
}

func (ctl *DoctorController) Earnings(c *gin.Context) {
	doctorID, ok := authentication.PrincipalID(c)
	if !ok {
		respondError(c, models.ErrUnauthenticated)
		return
	}
	total, err := ctl.svc.Earnings(c.Request.Context(), doctorID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Earnings retrieved successfully", gin.H{"total": total})
}
