package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonetizationStrategyString(t *testing.T) {
	s := MonetizationStrategy{
		Name:            "price-realignment",
		Description:     "Close the pricing gap",
		ConfidenceScore: 0.725,
		Metrics: map[string]float64{
			"severity":       0.2,
			"business_value": 8,
			"gap":            2,
		},
		Recommendations: []string{"Raise prices", "Add a premium tier"},
	}

	want := `strategy=price-realignment confidence=0.72 metrics={business_value=8.0000 gap=2.0000 severity=0.2000} description="Close the pricing gap" recommendations=[Raise prices; Add a premium tier]`
	assert.Equal(t, want, s.String())
}

func TestMonetizationStrategyStringDeterministic(t *testing.T) {
	s := MonetizationStrategy{
		Name:            "retention-recovery",
		ConfidenceScore: 0.5,
		Metrics:         map[string]float64{"b": 2, "a": 1, "c": 3},
	}

	first := s.String()
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, s.String())
	}
}

func TestMonetizationStrategyStringMinimal(t *testing.T) {
	s := MonetizationStrategy{Name: "bare", ConfidenceScore: 0}
	assert.Equal(t, "strategy=bare confidence=0.00", s.String())
}
