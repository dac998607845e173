// Package controllers binds and validates request bodies, invokes the
// domain services and shapes the response envelope. Success responses
// are {code, message, data}; errors are {code, message, error} with the
// HTTP status mirroring the domain error kind.
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/22Vinith/Hospital-Management/models"
)

var validate = validator.New()

func respond(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"code": status, "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

func respondValidation(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"code":    http.StatusBadRequest,
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

// respondError maps a domain error to the nearest taxonomy entry.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, models.ErrAlreadyExists):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrNotProvisioned):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrTokenInvalid),
		errors.Is(err, models.ErrTokenExpired),
		errors.Is(err, models.ErrRefreshTokenMissing),
		errors.Is(err, models.ErrRefreshTokenInvalid),
		errors.Is(err, models.ErrUnauthenticated):
		status, message = http.StatusUnauthorized, err.Error()
	case errors.Is(err, models.ErrForbidden):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, models.ErrDeliveryFailed):
		status, message = http.StatusInternalServerError, models.ErrDeliveryFailed.Error()
	}

	body := gin.H{"code": status, "message": message}
	if status == http.StatusInternalServerError {
		body["error"] = err.Error()
	}
	c.JSON(status, body)
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": "Invalid " + name + " parameter",
		})
		return 0, false
	}
	return uint(value), true
}

func queryInt(c *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(fallback)))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
