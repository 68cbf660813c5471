package repository

import (
	"context"

	"golang-monetization-engine/internal/entity"
	"golang-monetization-engine/internal/generator/dto"
)

// AIRepository generates narrative text for strategies built from detected
// inefficiency patterns.
type AIRepository interface {
	EnrichStrategy(ctx context.Context, strategy *entity.MonetizationStrategy, pattern dto.InefficiencyPattern) (*dto.NarrativeResult, error)
}
