package sink

import (
	"fmt"
	"os"
)

// OutputDestination receives serialized order lifecycle events, one topic per
// event family. Implementations must not block commands for long: callers log
// and drop on error.
type OutputDestination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

type ConsoleOutput struct{}

func (c *ConsoleOutput) WriteMessage(topic string, msg []byte) error {
	// Create a formatted string that includes the topic
	output := fmt.Sprintf("[%s] %s\n", topic, string(msg))

	_, err := os.Stdout.Write([]byte(output))
	if err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}

	// Try to sync, but don't return an error if it fails
	_ = os.Stdout.Sync()

	return nil
}

func (c *ConsoleOutput) Close() error { return nil }

// Discard swallows every event; used in tests and when no sink is configured.
type Discard struct{}

func (d *Discard) WriteMessage(topic string, msg []byte) error { return nil }
func (d *Discard) Close() error                                { return nil }
