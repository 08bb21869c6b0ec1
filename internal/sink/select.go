package sink

import (
	"fmt"

	"github.com/csakala/tableside/internal/models"
)

// ForConfig picks the event destination: Kafka when enabled, per-topic files
// when a path is set, stdout otherwise.
func ForConfig(cfg *models.Config) (OutputDestination, error) {
	if cfg.KafkaEnabled {
		producer, err := NewSaramaProducer(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
		}
		return producer, nil
	}
	if cfg.EventFilePath != "" {
		return NewFileOutput(cfg.EventFilePath), nil
	}
	return &ConsoleOutput{}, nil
}
