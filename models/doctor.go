package models

import "time"

// Doctor is pre-provisioned by an admin with email only; name,
// specialization and password stay empty until the doctor signs up.
type Doctor struct {
	DoctorID       uint      `json:"doctor_id" gorm:"primaryKey"`
	DoctorName     string    `json:"doctor_name"`
	Specialization string    `json:"specialization"`
	Email          string    `json:"email" gorm:"unique;not null"`
	Password       string    `json:"-"`
	Role           string    `json:"role" gorm:"default:doctor"`
	RefreshToken   string    `json:"-"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// Provisioned reports whether the doctor has completed self-registration.
func (d *Doctor) Provisioned() bool {
	return d.Password != ""
}
