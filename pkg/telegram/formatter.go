package telegram

import (
	"fmt"
	"strings"
	"time"

	"golang-monetization-engine/internal/entity"
)

// FormatStrategiesMessage formats generated strategies as an HTML message for
// Telegram, truncated to stay under the Telegram message length limit.
func FormatStrategiesMessage(jobName string, strategies []entity.MonetizationStrategy) string {
	if len(strategies) == 0 {
		return fmt.Sprintf("💼 <b>%s</b>\n\nNo inefficiencies detected; no strategies generated.", jobName)
	}

	const maxLen = 4090
	var b strings.Builder
	fmt.Fprintf(&b, "💼 <b>Monetization Strategies — %s</b>\n\n", jobName)

	for _, s := range strategies {
		var entry strings.Builder
		fmt.Fprintf(&entry, "📌 <b>%s</b>\n", s.Name)
		fmt.Fprintf(&entry, "%s\n", s.Description)
		fmt.Fprintf(&entry, "%s <b>Confidence:</b> %.0f%%\n", confidenceIcon(s.ConfidenceScore), s.ConfidenceScore*100)
		for i, rec := range s.Recommendations {
			fmt.Fprintf(&entry, "  %d. %s\n", i+1, rec)
		}
		entry.WriteString("\n")

		if b.Len()+entry.Len() > maxLen {
			b.WriteString("…")
			break
		}
		b.WriteString(entry.String())
	}
	return b.String()
}

// FormatErrorAlertMessage formats a fatal processing alert.
func FormatErrorAlertMessage(at time.Time, errType, errMessage, rawPayload string) string {
	var b strings.Builder
	b.WriteString("🚨 *Strategy Engine Alert*\n\n")
	fmt.Fprintf(&b, "*Time:* %s\n", at.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "*Type:* %s\n", errType)
	fmt.Fprintf(&b, "*Error:* %s\n", errMessage)
	if rawPayload != "" {
		fmt.Fprintf(&b, "*Payload:* `%s`\n", rawPayload)
	}
	return b.String()
}

func confidenceIcon(score float64) string {
	switch {
	case score >= 0.75:
		return "🟢"
	case score >= 0.5:
		return "🟡"
	default:
		return "🔴"
	}
}
