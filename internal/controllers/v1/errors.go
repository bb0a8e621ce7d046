package v1

import (
	"errors"
	"net/http"

	"github.com/halalflow/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

// Import errors
var (
	errNoLegacyData    = errors.New("you must send the exported data as request body or as form file 'file'")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
)

// Settlement errors
var (
	errReportedBalanceMissing = errors.New("the reportedBalance must be set")
)
