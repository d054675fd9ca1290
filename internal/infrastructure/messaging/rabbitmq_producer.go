// Package messaging publishes lifecycle events to RabbitMQ.
package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/url"
	"strings"
	"sync"
	"time"

	"athwela/internal/usecase/interfaces"

	"github.com/rabbitmq/amqp091-go"
)

// amqpChannel is the part of *amqp091.Channel the producer uses.
type amqpChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// EventProducer publishes JSON events to a durable topic exchange.
type EventProducer struct {
	mu       sync.Mutex
	exchange string
	conn     *amqp091.Connection
	channel  amqpChannel
	open     func() (amqpChannel, error)
	declared bool
}

var _ interfaces.IEventPublisher = (*EventProducer)(nil)

// EventProducerFallback is a no-op publisher used when RabbitMQ is not configured or
// unreachable at startup.
type EventProducerFallback struct{}

var _ interfaces.IEventPublisher = (*EventProducerFallback)(nil)

func (p *EventProducerFallback) Publish(_ context.Context, routingKey string, _ interface{}) error {
	log.Printf("level=warn component=rabbitmq_producer mode=fallback msg=\"publish skipped\" routing_key=%s", routingKey)
	return nil
}

func (p *EventProducerFallback) Close() {}

func sanitizeAMQPURL(raw string) (string, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.Trim(clean, "\"'")
	if idx := strings.Index(strings.ToLower(clean), "amqp"); idx > 0 {
		clean = clean[idx:]
	}
	u, err := url.Parse(clean)
	if err != nil {
		return "", err
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errors.New("AMQP scheme must be either 'amqp://' or 'amqps://'")
	}
	return clean, nil
}

// NewEventProducer dials RabbitMQ and opens a channel for exchange.
func NewEventProducer(amqpURL, exchange string) (*EventProducer, error) {
	cleanURL, err := sanitizeAMQPURL(amqpURL)
	if err != nil {
		return nil, err
	}

	conn, err := amqp091.DialConfig(cleanURL, amqp091.Config{Dial: amqp091.DefaultDial(10 * time.Second)})
	if err != nil {
		return nil, err
	}
	open := func() (amqpChannel, error) { return conn.Channel() }

	ch, err := open()
	if err != nil {
		conn.Close()
		return nil, err
	}
	return &EventProducer{exchange: exchange, conn: conn, channel: ch, open: open}, nil
}

// NewPublisher returns a RabbitMQ producer, or the fallback when url is empty or the
// broker cannot be reached.
func NewPublisher(amqpURL, exchange string) interfaces.IEventPublisher {
	if strings.TrimSpace(amqpURL) == "" {
		log.Println("level=warn component=bootstrap msg=\"RABBITMQ_URL not set; events will be dropped\"")
		return &EventProducerFallback{}
	}
	p, err := NewEventProducer(amqpURL, exchange)
	if err != nil {
		log.Printf("level=warn component=bootstrap msg=\"rabbitmq producer unavailable; using fallback\" err=%v", err)
		return &EventProducerFallback{}
	}
	log.Println("level=info component=bootstrap msg=\"rabbitmq producer connected\"")
	return p
}

func (p *EventProducer) declare() error {
	if p.declared {
		return nil
	}
	if err := p.channel.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
		return err
	}
	p.declared = true
	return nil
}

// reopen replaces a channel the broker closed after an error.
func (p *EventProducer) reopen() error {
	if p.open == nil {
		return errors.New("rabbitmq channel cannot be reopened")
	}
	ch, err := p.open()
	if err != nil {
		return err
	}
	if p.channel != nil {
		_ = p.channel.Close()
	}
	p.channel = ch
	p.declared = false
	return p.declare()
}

// Publish sends body as JSON with routingKey. A failed publish reopens the channel
// and retries once.
func (p *EventProducer) Publish(ctx context.Context, routingKey string, body interface{}) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		log.Printf("level=error component=rabbitmq_producer msg=\"json marshal failed\" exchange=%s routing_key=%s err=%v", p.exchange, routingKey, err)
		return err
	}
	msg := amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    time.Now(),
		Body:         jsonBody,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.declare(); err != nil {
		log.Printf("level=warn component=rabbitmq_producer msg=\"exchange declare failed; reopening channel\" exchange=%s err=%v", p.exchange, err)
		if err := p.reopen(); err != nil {
			return err
		}
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg)
	if err == nil {
		return nil
	}
	log.Printf("level=warn component=rabbitmq_producer msg=\"publish failed; reopening channel\" exchange=%s routing_key=%s err=%v", p.exchange, routingKey, err)
	if rerr := p.reopen(); rerr != nil {
		return err
	}
	return p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg)
}

// Close closes the channel and the connection.
func (p *EventProducer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
