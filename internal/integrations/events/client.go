package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher публикует события о записях в Kafka.
// Ключ сообщения дата записи, поэтому события одного дня попадают в одну партицию.
type Publisher struct {
	writer  messageWriter
	timeout time.Duration
	log     Logger
}

// NewPublisher создает publisher для topic.
// Без брокеров возвращается publisher, который только пишет событие в лог.
func NewPublisher(brokers []string, topic string, timeout time.Duration, log Logger) *Publisher {
	if len(brokers) == 0 {
		return &Publisher{log: log}
	}

	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			WriteTimeout: timeout,
		},
		timeout: timeout,
		log:     log,
	}
}

// Publish отправляет событие
func (p *Publisher) Publish(ctx context.Context, event Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	if p.writer == nil {
		p.log.Info("events: kafka disabled, skip %s for appointment=%s", event.Type, event.AppointmentID)
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMarshal, err)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	msg := kafka.Message{
		Key:   []byte(event.Date),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.ID)},
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: %s appointment=%s: %v", ErrPublish, event.Type, event.AppointmentID, err)
	}

	return nil
}

// Close закрывает соединения с брокерами
func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
