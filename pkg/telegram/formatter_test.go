package telegram

import (
	"strings"
	"testing"
	"time"

	"golang-monetization-engine/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestFormatStrategiesMessage(t *testing.T) {
	msg := FormatStrategiesMessage("quarterly-review", []entity.MonetizationStrategy{
		{
			Name:            "price-realignment",
			Description:     "Close the pricing gap.",
			ConfidenceScore: 0.8,
			Recommendations: []string{"Raise prices", "Add a premium tier"},
		},
		{
			Name:            "retention-recovery",
			Description:     "Reduce churn.",
			ConfidenceScore: 0.3,
		},
	})

	assert.Contains(t, msg, "quarterly-review")
	assert.Contains(t, msg, "<b>price-realignment</b>")
	assert.Contains(t, msg, "🟢 <b>Confidence:</b> 80%")
	assert.Contains(t, msg, "1. Raise prices")
	assert.Contains(t, msg, "2. Add a premium tier")
	assert.Contains(t, msg, "🔴 <b>Confidence:</b> 30%")
}

func TestFormatStrategiesMessageEmpty(t *testing.T) {
	msg := FormatStrategiesMessage("quarterly-review", nil)
	assert.Contains(t, msg, "No inefficiencies detected")
}

func TestFormatStrategiesMessageTruncates(t *testing.T) {
	long := strings.Repeat("x", 500)
	var strategies []entity.MonetizationStrategy
	for i := 0; i < 20; i++ {
		strategies = append(strategies, entity.MonetizationStrategy{
			Name:        "growth-acceleration",
			Description: long,
		})
	}

	msg := FormatStrategiesMessage("big-job", strategies)
	assert.LessOrEqual(t, len(msg), 4096)
	assert.True(t, strings.HasSuffix(msg, "…"))
}

func TestFormatErrorAlertMessage(t *testing.T) {
	at := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	msg := FormatErrorAlertMessage(at, "max_retry_exceeded", "boom", `{"job_id":1}`)

	assert.Contains(t, msg, "2025-03-01 09:30:00")
	assert.Contains(t, msg, "max_retry_exceeded")
	assert.Contains(t, msg, "boom")
	assert.Contains(t, msg, `{"job_id":1}`)
}
