package repository

import (
	"fmt"
	"strings"

	"golang-monetization-engine/internal/entity"
	"golang-monetization-engine/internal/generator/dto"
)

// BuildStrategyNarrativePrompt builds the prompt asking the model to rewrite a
// rule-generated strategy into a sharper narrative, keeping the JSON contract.
func BuildStrategyNarrativePrompt(strategy *entity.MonetizationStrategy, pattern dto.InefficiencyPattern) string {
	var recs strings.Builder
	for i, r := range strategy.Recommendations {
		fmt.Fprintf(&recs, "%d. %s\n", i+1, r)
	}

	promptTemplate := `You are a business monetization consultant. A rule engine detected the
following inefficiency and drafted a strategy. Rewrite the description so it is
specific and actionable, and refine the recommendations. Do not invent numbers
beyond the ones given.

Inefficiency:
  kind: %s
  business metric: %s = %.4f
  market benchmark: %s = %.4f
  gap: %.4f (severity %.2f)
  detail: %s

Draft strategy "%s":
%s
Current recommendations:
%s
Respond with JSON only:

{
  "description": "{one paragraph, concrete}",
  "recommendations": ["{ordered, most impactful first}"]
}`

	return fmt.Sprintf(promptTemplate,
		pattern.Kind,
		pattern.BusinessKey, pattern.BusinessValue,
		pattern.MarketKey, pattern.MarketValue,
		pattern.Gap, pattern.Severity,
		pattern.Detail,
		strategy.Name,
		strategy.Description,
		recs.String(),
	)
}
