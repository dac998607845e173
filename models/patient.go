package models

import "time"

type Patient struct {
	PatientID    uint      `json:"patient_id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Age          int       `json:"age" gorm:"not null"`
	Email        string    `json:"email" gorm:"unique;not null"`
	Phno         int64     `json:"phno" gorm:"unique;not null"`
	Password     string    `json:"-" gorm:"not null"`
	Role         string    `json:"role" gorm:"default:patient"`
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
