package interfaces

import "context"

// IEventPublisher publishes lifecycle events (RabbitMQ in production).

type IEventPublisher interface {
	Publish(ctx context.Context, routingKey string, body interface{}) error
	Close()
}
