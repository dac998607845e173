package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/22Vinith/Hospital-Management/authentication"
	"github.com/22Vinith/Hospital-Management/models"
	"github.com/22Vinith/Hospital-Management/services"
)

type AdminController struct {
	svc *services.AdminService
}

func NewAdminController(svc *services.AdminService) *AdminController {
	return &AdminController{svc: svc}
}

type adminRegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (ctl *AdminController) Register(c *gin.Context) {
	var req adminRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidation(c, err)
		return
	}

	admin, err := ctl.svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Admin registered successfully", admin)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (ctl *AdminController) Login(c *gin.Context) {
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
	respond(c, http.StatusOK, "Admin logged in successfully", pair)
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (ctl *AdminController) ForgotPassword(c *gin.Context) {
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

type resetPasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

func (ctl *AdminController) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidation(c, err)
		return
	}

	adminID, ok := authentication.PrincipalID(c)
	if !ok {
		respondError(c, models.ErrUnauthenticated)
		return
	}
	if err := ctl.svc.ResetPassword(c.Request.Context(), adminID, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Password reset successfully", nil)
}

func (ctl *AdminController) RefreshToken(c *gin.Context) {
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

type addDoctorRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (ctl *AdminController) AddDoctor(c *gin.Context) {
	var req addDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidation(c, err)
		return
	}

	doctor, err := ctl.svc.AddDoctor(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Doctor added successfully", doctor)
}

func (ctl *AdminController) ListDoctors(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	doctors, total, err := ctl.svc.ListDoctors(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Doctors retrieved successfully", gin.H{
		"doctors": doctors,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

func (ctl *AdminController) GetDoctor(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	doctor, err := ctl.svc.GetDoctor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (ctl *AdminController) DeleteDoctor(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := ctl.svc.DeleteDoctor(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Doctor deleted successfully", nil)
}
