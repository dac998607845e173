package models

import "time"

// Appointment records a booking. Specialization is copied from the chosen
// doctor at booking time and never recomputed, so later changes to the
// doctor do not alter existing appointments.
type Appointment struct {
	AppointmentID  uint      `json:"appointment_id" gorm:"primaryKey"`
	PatientID      uint      `json:"patient_id" gorm:"not null"`
	DoctorID       uint      `json:"doctor_id" gorm:"not null"`
	Specialization string    `json:"specialization" gorm:"not null"`
	Ailment        string    `json:"ailment" gorm:"not null"`
	AilmentStatus  bool      `json:"ailment_status" gorm:"default:false"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
