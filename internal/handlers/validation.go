package handlers

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/agenda-api/internal/domain/timeslot"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags to gin's validator.
// Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			return timeslot.IsValidHHMM(fl.Field().String())
		})
	})
}

// fieldCodes maps a request field to the error code reported when it fails
// validation.
var fieldCodes = map[string]struct{ code, msg string }{
	"StartTime":      {"invalid_time", "Times must be in HH:mm format."},
	"EndTime":        {"invalid_time", "Times must be in HH:mm format."},
	"Date":           {"invalid_date", "Date must be in YYYY-MM-DD format."},
	"DayOfWeek":      {"invalid_day_of_week", "dayOfWeek must be between 0 and 6."},
	"ProfessionalID": {"invalid_professional_id", "professionalId must be a UUID."},
	"UserID":         {"invalid_user_id", "userId must be a UUID."},
	"Specialty":      {"invalid_specialty", "specialty is required."},
	"Notes":          {"invalid_notes", "notes must be at most 255 characters."},
}

// bindJSON binds the body into req and writes a 400 on failure.
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		if fc, ok := fieldCodes[ves[0].StructField()]; ok {
			httperr.BadRequest(c, fc.code, fc.msg)
			return false
		}
	}

	httperr.BadRequest(c, "invalid_request", "Invalid request body.")
	return false
}

// pathID reads a UUID path parameter. Malformed ids are reported as not
// found, with the given code.
func pathID(c *gin.Context, name, notFoundCode, notFoundMsg string) (string, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.NotFound(c, notFoundCode, notFoundMsg)
		return "", false
	}
	return id.String(), true
}
