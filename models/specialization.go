package models

// Specialization rows form the registry of specializations currently
// staffed by at least one doctor. Name carries a unique index so that
// concurrent first registrations collapse into a single row.
type Specialization struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}
