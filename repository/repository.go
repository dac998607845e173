// Package repository implements the persistence layer over gorm, with a
// redis read-through cache in front of the doctor store. Store errors
// are translated to the domain taxonomy so services never see gorm
// sentinels.
package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/22Vinith/Hospital-Management/models"
)

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return models.ErrAlreadyExists
	default:
		return err
	}
}
