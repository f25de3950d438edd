package subscription

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purrify/pricing_api/internal/models"
)

func TestRetentionScheduleShape(t *testing.T) {
	require.Len(t, RetentionTriggers, 5)

	// Days must strictly increase; the schedule is a timeline.
	for i := 1; i < len(RetentionTriggers); i++ {
		assert.Greater(t, RetentionTriggers[i].Day, RetentionTriggers[i-1].Day)
	}

	// Escalation order: reminders first, then the discount offer, then
	// pause, then the cancel save attempt.
	wantTypes := []models.TriggerType{
		models.TriggerReminder,
		models.TriggerReminder,
		models.TriggerDiscount,
		models.TriggerPause,
		models.TriggerCancel,
	}
	for i, tr := range RetentionTriggers {
		assert.Equal(t, wantTypes[i], tr.Type, "day %d", tr.Day)
		assert.NotEmpty(t, tr.Subject, "day %d", tr.Day)
		assert.NotEmpty(t, tr.Message, "day %d", tr.Day)
	}
}

func TestDiscountTriggerCarriesCode(t *testing.T) {
	for _, tr := range RetentionTriggers {
		if tr.Type == models.TriggerDiscount {
			assert.Equal(t, "FRESH15", tr.DiscountCode)
			assert.Equal(t, 15, tr.DiscountPercent)
		} else {
			assert.Empty(t, tr.DiscountCode, "day %d", tr.Day)
			assert.Zero(t, tr.DiscountPercent, "day %d", tr.Day)
		}
	}
}

func TestTriggersDueBy(t *testing.T) {
	assert.Empty(t, TriggersDueBy(0))
	assert.Empty(t, TriggersDueBy(6))

	due := TriggersDueBy(7)
	require.Len(t, due, 1)
	assert.Equal(t, 7, due[0].Day)

	due = TriggersDueBy(45)
	require.Len(t, due, 3)
	assert.Equal(t, models.TriggerDiscount, due[2].Type)

	due = TriggersDueBy(365)
	assert.Len(t, due, len(RetentionTriggers))
}
