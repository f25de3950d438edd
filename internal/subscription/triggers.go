package subscription

import "github.com/purrify/pricing_api/internal/models"

// RetentionTriggers is the static lifecycle-messaging schedule, keyed by
// days since subscription start. Nothing here tracks which triggers have
// fired for a subscriber; the marketing automation system owns scheduling
// and delivery.
var RetentionTriggers = []models.RetentionTrigger{
	{
		Day:     7,
		Type:    models.TriggerReminder,
		Subject: "How's the fresh air treating you?",
		Message: "A quick sprinkle with every litter change keeps the odor control working.",
	},
	{
		Day:     21,
		Type:    models.TriggerReminder,
		Subject: "Your next refill is coming up",
		Message: "Your next Purrify delivery ships soon. Need to adjust the schedule?",
	},
	{
		Day:             45,
		Type:            models.TriggerDiscount,
		Subject:         "A little something for your litter box",
		Message:         "Take 15% off your next delivery, on us.",
		DiscountCode:    "FRESH15",
		DiscountPercent: 15,
	},
	{
		Day:     60,
		Type:    models.TriggerPause,
		Subject: "Too much Purrify on hand?",
		Message: "You can pause deliveries any time and pick back up when you're ready.",
	},
	{
		Day:     75,
		Type:    models.TriggerCancel,
		Subject: "Before you go",
		Message: "Tell us what didn't work — or switch to the trial cadence instead of cancelling.",
	},
}

// TriggersDueBy returns triggers whose day offset is at or before the given
// day, preserving schedule order.
func TriggersDueBy(day int) []models.RetentionTrigger {
	var due []models.RetentionTrigger
	for _, t := range RetentionTriggers {
		if t.Day <= day {
			due = append(due, t)
		}
	}
	return due
}
