package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// ConsumerConfig — настройки консьюмера платёжных сообщений.
type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	StartOffset string // "first" | "last" (по умолчанию last)

	ProcessTimeout time.Duration // таймаут обработки одного сообщения
	RetryInitial   time.Duration // стартовый интервал backoff при ошибках fetch
	RetryMax       time.Duration // потолок backoff
}

// ReaderConfig — собирает kafka.ReaderConfig с ручным коммитом оффсетов.
// StartOffset нормализуется (регистр/пробелы); неизвестные значения — last.
func (c *ConsumerConfig) ReaderConfig() kafka.ReaderConfig {
	rc := kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.GroupID,
		Topic:          c.Topic,
		CommitInterval: 0, // только ручной коммит
	}

	switch strings.ToLower(strings.TrimSpace(c.StartOffset)) {
	case "first":
		rc.StartOffset = kafka.FirstOffset
	default:
		rc.StartOffset = kafka.LastOffset
	}

	return rc
}
