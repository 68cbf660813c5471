package service

import (
	"context"
	"strconv"
	"strings"

	"golang-monetization-engine/pkg/logger"
)

// DataCleaner prepares raw keyed data for processing.
type DataCleaner interface {
	Clean(ctx context.Context, data map[string]interface{}) (map[string]interface{}, error)
}

type dataCleaner struct {
	logger *logger.Logger
}

// NewDataCleaner creates the default data cleaner.
func NewDataCleaner(log *logger.Logger) DataCleaner {
	return &dataCleaner{logger: log}
}

// Clean returns a new map with normalized keys and coerced values. The input
// map is never modified. Nil values, empty strings and unparseable entries are
// dropped; numeric types and numeric strings become float64.
func (c *dataCleaner) Clean(ctx context.Context, data map[string]interface{}) (map[string]interface{}, error) {
	if data == nil {
		return nil, ErrNoInputData
	}

	cleaned := make(map[string]interface{}, len(data))
	dropped := 0
	for key, value := range data {
		k := strings.ToLower(strings.TrimSpace(key))
		if k == "" || value == nil {
			dropped++
			continue
		}

		switch v := value.(type) {
		case float64:
			cleaned[k] = v
		case float32:
			cleaned[k] = float64(v)
		case int:
			cleaned[k] = float64(v)
		case int32:
			cleaned[k] = float64(v)
		case int64:
			cleaned[k] = float64(v)
		case uint:
			cleaned[k] = float64(v)
		case bool:
			cleaned[k] = v
		case string:
			s := strings.TrimSpace(v)
			if s == "" {
				dropped++
				continue
			}
			if f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64); err == nil {
				cleaned[k] = f
			} else {
				cleaned[k] = s
			}
		default:
			cleaned[k] = v
		}
	}

	if dropped > 0 {
		c.logger.DebugContext(ctx, "Dropped unusable entries during cleaning", logger.IntField("dropped", dropped))
	}

	return cleaned, nil
}
