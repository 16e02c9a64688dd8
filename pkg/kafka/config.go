package kafka

import "time"

// Config holds Kafka connection parameters.
type Config struct {
	Brokers  []string
	ClientID string

	// BatchTimeout bounds how long the writer waits to fill a batch.
	// Defaults to 10ms when zero.
	BatchTimeout time.Duration
}
