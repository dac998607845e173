package models

import "time"

// Bill is written once per appointment by the treating doctor and is
// immutable afterwards. The unique index on AppointmentID rejects a
// second bill for the same appointment at the store level.
type Bill struct {
	BillID        uint      `json:"bill_id" gorm:"primaryKey"`
	AppointmentID uint      `json:"appointment_id" gorm:"uniqueIndex;not null"`
	DoctorID      uint      `json:"doctor_id" gorm:"not null"`
	PatientName   string    `json:"patient_name" gorm:"not null"`
	PatientEmail  string    `json:"patient_email" gorm:"not null"`
	PatientPhno   int64     `json:"patient_phno"`
	Prescription  string    `json:"prescription" gorm:"not null"`
	Amount        float64   `json:"amount" gorm:"not null"`
	Currency      string    `json:"currency" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
