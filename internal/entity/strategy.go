package entity

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MonetizationStrategy represents a monetization strategy with associated
// parameters. Constructed by the strategy generator and persisted as-is.
type MonetizationStrategy struct {
	ID              int64              `gorm:"primaryKey" json:"id"`
	JobID           *uint              `json:"job_id,omitempty"`
	Name            string             `gorm:"type:varchar(100);not null" json:"name"`
	Description     string             `gorm:"type:text" json:"description"`
	Metrics         map[string]float64 `gorm:"serializer:json;type:jsonb" json:"metrics"`
	Recommendations pq.StringArray     `gorm:"type:text[]" json:"recommendations"`
	ConfidenceScore float64            `gorm:"not null" json:"confidence_score"`
	Revision        int                `gorm:"not null;default:0" json:"revision"`
	SourcePattern   datatypes.JSON     `gorm:"type:jsonb" json:"source_pattern"`
	CreatedAt       time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt     `gorm:"index" json:"deleted_at"`
}

// TableName specifies the table name for the MonetizationStrategy model.
func (MonetizationStrategy) TableName() string {
	return "monetization_strategies"
}

// String renders the strategy in the serialized form stored by the knowledge
// repository. Metric keys are sorted so the output is deterministic.
func (s MonetizationStrategy) String() string {
	keys := make([]string, 0, len(s.Metrics))
	for k := range s.Metrics {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "strategy=%s confidence=%.2f", s.Name, s.ConfidenceScore)
	if len(keys) > 0 {
		b.WriteString(" metrics={")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%s=%.4f", k, s.Metrics[k])
		}
		b.WriteString("}")
	}
	if s.Description != "" {
		fmt.Fprintf(&b, " description=%q", s.Description)
	}
	if len(s.Recommendations) > 0 {
		fmt.Fprintf(&b, " recommendations=[%s]", strings.Join(s.Recommendations, "; "))
	}
	return b.String()
}
