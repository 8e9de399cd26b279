package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/jellomark/beautishop-scheduler/internal/domain/reservation"
)

// WriteDomain maps typed domain errors onto JSON responses with stable
// error codes. Everything in the taxonomy is a caller error; anything else
// is treated as internal.
func WriteDomain(c *gin.Context, err error) {
	var (
		scheduleErr   reservation.InvalidScheduleError
		pastErr       reservation.PastDateError
		conflictErr   reservation.ConflictError
		notFoundErr   reservation.NotFoundError
		transitionErr reservation.InvalidTransitionError
		validationErr reservation.ValidationError
		businessErr   BusinessError
	)

	switch {
	case errors.As(err, &scheduleErr):
		BadRequest(c, "invalid_operating_hours", scheduleErr.Error())
	case errors.As(err, &pastErr):
		BadRequest(c, "past_reservation_date", pastErr.Error())
	case errors.As(err, &conflictErr):
		Conflict(c, "reservation_time_conflict", conflictErr.Error())
	case errors.As(err, &notFoundErr):
		NotFound(c, notFoundErr.Resource+"_not_found", notFoundErr.Error())
	case errors.As(err, &transitionErr):
		Conflict(c, "invalid_status_transition", transitionErr.Error())
	case errors.As(err, &validationErr):
		BadRequest(c, "invalid_"+validationErr.Field, validationErr.Error())
	case errors.As(err, &businessErr):
		BadRequest(c, businessErr.Code, businessErr.Code)
	default:
		Internal(c, "internal_error", "Unexpected error.")
	}
}
