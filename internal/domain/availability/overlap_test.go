package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/agenda-api/internal/domain/timeslot"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

func TestOverlapsExisting(t *testing.T) {
	existing := []models.Availability{{StartTime: "09:00", EndTime: "12:00"}}

	assert.True(t, OverlapsExisting(existing, timeslot.MustParse("11:00", "13:00")))
	assert.False(t, OverlapsExisting(existing, timeslot.MustParse("12:00", "13:00")))
	assert.False(t, OverlapsExisting(existing, timeslot.MustParse("08:00", "09:00")))
	assert.False(t, OverlapsExisting(nil, timeslot.MustParse("08:00", "09:00")))
}

func TestValidDay(t *testing.T) {
	assert.True(t, ValidDay(0))
	assert.True(t, ValidDay(6))
	assert.False(t, ValidDay(-1))
	assert.False(t, ValidDay(7))
}
