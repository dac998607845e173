// Package routes assembles the HTTP surface: repositories, services,
// controllers and the per-role auth guards.
package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/22Vinith/Hospital-Management/authentication"
	"github.com/22Vinith/Hospital-Management/configuration"
	"github.com/22Vinith/Hospital-Management/controllers"
	"github.com/22Vinith/Hospital-Management/repository"
	"github.com/22Vinith/Hospital-Management/services"
)

// Setup wires the full application graph and returns the router.
func Setup(cfg *configuration.Config, db *gorm.DB, rdb *redis.Client, log *zap.Logger) *gin.Engine {
	admins := repository.NewAdminRepository(db)
	doctorStore := repository.NewDoctorRepository(db)
	doctors := repository.NewCachedDoctorRepository(doctorStore, rdb, log)
	patients := repository.NewPatientRepository(db)
	appointments := repository.NewAppointmentRepository(db)
	bills := repository.NewBillRepository(db)
	specs := repository.NewSpecializationRepository(db)

	registry := services.NewSpecializationRegistry(specs, doctors, log)
	tokens := authentication.NewTokenService(cfg.JWT)
	mailer := services.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPEmail, cfg.SMTPPassword)

	adminSvc := services.NewAdminService(admins, doctors, registry, tokens, mailer, log)
	doctorSvc := services.NewDoctorService(doctors, patients, appointments, bills, registry, tokens, mailer, log)
	patientSvc := services.NewPatientService(patients, doctors, appointments, bills, registry, tokens, mailer, log)

	adminCtl := controllers.NewAdminController(adminSvc)
	doctorCtl := controllers.NewDoctorController(doctorSvc)
	patientCtl := controllers.NewPatientController(patientSvc)

	findAdmin := func(ctx context.Context, id uint) (interface{}, error) {
		admin, err := admins.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		admin.Password = ""
		admin.RefreshToken = ""
		return admin, nil
	}
	// Guard lookups bypass the cache so a deleted doctor is rejected
	// immediately.
	findDoctor := func(ctx context.Context, id uint) (interface{}, error) {
		doctor, err := doctorStore.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		doctor.Password = ""
		doctor.RefreshToken = ""
		return doctor, nil
	}
	findPatient := func(ctx context.Context, id uint) (interface{}, error) {
		patient, err := patients.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		patient.Password = ""
		patient.RefreshToken = ""
		return patient, nil
	}

	adminSession := authentication.AuthRequired(tokens, authentication.RoleAdmin, authentication.PurposeSession, findAdmin)
	adminReset := authentication.AuthRequired(tokens, authentication.RoleAdmin, authentication.PurposeReset, findAdmin)
	doctorSession := authentication.AuthRequired(tokens, authentication.RoleDoctor, authentication.PurposeSession, findDoctor)
	doctorReset := authentication.AuthRequired(tokens, authentication.RoleDoctor, authentication.PurposeReset, findDoctor)
	patientSession := authentication.AuthRequired(tokens, authentication.RolePatient, authentication.PurposeSession, findPatient)
	patientReset := authentication.AuthRequired(tokens, authentication.RolePatient, authentication.PurposeReset, findPatient)

	r := gin.Default()

	admin := r.Group("/admin")
	{
		admin.POST("/register", adminCtl.Register)
		admin.POST("/login", adminCtl.Login)
		admin.POST("/forgot-password", adminCtl.ForgotPassword)
		admin.POST("/reset-password", adminReset, adminCtl.ResetPassword)
		admin.GET("/:id/refreshtoken", adminCtl.RefreshToken)

		secured := admin.Group("", adminSession, authentication.RoleRequired(authentication.RoleAdmin))
		{
			secured.POST("/add", adminCtl.AddDoctor)
			secured.GET("/doctors", adminCtl.ListDoctors)
			secured.GET("/:id/doctor", adminCtl.GetDoctor)
			secured.DELETE("/:id/doctor", adminCtl.DeleteDoctor)
		}
	}

	doctor := r.Group("/doctor")
	{
		doctor.PUT("/register", doctorCtl.SignUp)
		doctor.POST("/login", doctorCtl.Login)
		doctor.POST("/forgot-password", doctorCtl.ForgotPassword)
		doctor.POST("/reset-password", doctorReset, doctorCtl.ResetPassword)
		doctor.GET("/:id/refreshtoken", doctorCtl.RefreshToken)

		secured := doctor.Group("", doctorSession, authentication.RoleRequired(authentication.RoleDoctor))
		{
			secured.GET("", doctorCtl.Appointments)
			secured.GET("/earnings", doctorCtl.Earnings)
			secured.GET("/:id/patient", doctorCtl.GetPatient)
			secured.PUT("/:id/update", doctorCtl.UpdateAilmentStatus)
			secured.DELETE("/:id/appointment", doctorCtl.DeleteAppointment)
			secured.POST("/:id/bill", doctorCtl.GenerateBill)
		}
	}

	patient := r.Group("/patient")
	{
		patient.POST("/register", patientCtl.Register)
		patient.POST("/login", patientCtl.Login)
		patient.POST("/forgot-password", patientCtl.ForgotPassword)
		patient.POST("/reset-password", patientReset, patientCtl.ResetPassword)
		patient.GET("/:id/refreshtoken", patientCtl.RefreshToken)

		secured := patient.Group("", patientSession, authentication.RoleRequired(authentication.RolePatient))
		{
			secured.GET("/specializations", patientCtl.Specializations)
			secured.POST("/doctors", patientCtl.DoctorsBySpecialization)
			secured.POST("/appointment", patientCtl.BookAppointment)
			secured.GET("/:id/bill", patientCtl.GetBill)
			secured.GET("/:id/appointments", patientCtl.Appointments)
			secured.GET("/:id/patientInfo", patientCtl.GetInfo)
			secured.PUT("/:id/updatePatientInfo", patientCtl.UpdateInfo)
		}
	}

	return r
}
