package broker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
	Close() error
}

const defaultDialTimeout = 5 * time.Second

// AMQPPublisher publishes to a durable topic exchange; the topic is the routing key.
type AMQPPublisher struct {
	url         string
	exchange    string
	dialTimeout time.Duration

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPPublisher(cfg config.BrokerConfig) *AMQPPublisher {
	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}
	return &AMQPPublisher{
		url:         cfg.URL,
		exchange:    cfg.Exchange,
		dialTimeout: timeout,
	}
}

func (p *AMQPPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         payload,
	}
	if err := ch.PublishWithContext(ctx, p.exchange, topic, false, false, msg); err != nil {
		p.reset()
		return errs.Wrap(err, "failed to publish event")
	}
	return nil
}

// channel reconnects lazily after a failed publish or a broker restart.
func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	conn, err := amqp.DialConfig(p.url, amqp.Config{Dial: amqp.DefaultDial(p.dialTimeout)})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to dial broker"), shared.ErrPublisherUnavailable)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Mark(errs.Wrap(err, "failed to open channel"), shared.ErrPublisherUnavailable)
	}
	if err := ch.ExchangeDeclare(p.exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Mark(errs.Wrap(err, "failed to declare exchange"), shared.ErrPublisherUnavailable)
	}

	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *AMQPPublisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
	return nil
}

// LogPublisher stands in when the broker is disabled; jobs are still marked sent.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher { return &LogPublisher{} }

func (LogPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	slog.DebugContext(ctx, "event published to log", "topic", topic, "payload", string(payload))
	return nil
}

func (LogPublisher) Close() error { return nil }

func NewPublisher(cfg config.BrokerConfig) Publisher {
	if !cfg.Enabled {
		return NewLogPublisher()
	}
	return NewAMQPPublisher(cfg)
}
