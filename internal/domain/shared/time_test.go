package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJST(t *testing.T) {
	_, offset := time.Date(2026, 8, 28, 0, 0, 0, 0, JST).Zone()
	assert.Equal(t, 9*60*60, offset)
}

func TestCivilDate(t *testing.T) {
	t.Run("truncates to midnight keeping the location", func(t *testing.T) {
		at := time.Date(2026, 8, 28, 23, 59, 59, 123456789, JST)

		date := CivilDate(at)

		assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, JST), date)
		assert.Equal(t, JST, date.Location())
	})

	t.Run("is idempotent", func(t *testing.T) {
		at := time.Date(2026, 8, 28, 10, 30, 0, 0, JST)
		assert.Equal(t, CivilDate(at), CivilDate(CivilDate(at)))
	})
}
