package event

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEvent() *Event {
	return NewEvent("Coffee", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), "Hanoi", 21.0285, 105.8542, "first date")
}

func TestEventValidate(t *testing.T) {
	require.NoError(t, validEvent().Validate())
}

func TestEventValidateRequiredFields(t *testing.T) {
	e := validEvent()
	e.Title = ""
	assert.Error(t, e.Validate())

	e = validEvent()
	e.Date = time.Time{}
	assert.Error(t, e.Validate())

	e = validEvent()
	e.Location = ""
	assert.Error(t, e.Validate())
}

func TestValidateCoordinates(t *testing.T) {
	assert.NoError(t, ValidateCoordinates(0, 0))
	assert.NoError(t, ValidateCoordinates(-90, 180))
	assert.NoError(t, ValidateCoordinates(90, -180))

	assert.Error(t, ValidateCoordinates(90.01, 0))
	assert.Error(t, ValidateCoordinates(-91, 0))
	assert.Error(t, ValidateCoordinates(0, 180.5))
	assert.Error(t, ValidateCoordinates(math.NaN(), 0))
	assert.Error(t, ValidateCoordinates(0, math.Inf(1)))
}
