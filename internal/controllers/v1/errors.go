package v1

import (
	"errors"
	"net/http"

	"github.com/payroll-zero/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, errJurisdictionNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errCleanupConfirmation  = errors.New("the confirmation for the cleanup API call was incorrect")
	errUnknownState         = errors.New("the state code is not a known US state or the District of Columbia")
	errJurisdictionNotFound = errors.New("there is no jurisdiction with this code")
	errDateNotSetInQuery    = errors.New("the date query parameter must be set")
	errEmployeeIDNotSet     = errors.New("the employeeId must be set")
)
