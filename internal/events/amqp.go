package events

import (
	"context"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"moneymanager/internal/logger"
)

// publishChannel is the subset of *amqp091.Channel used for publishing.
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// AMQPPublisher forwards store changes to a RabbitMQ topic exchange.
type AMQPPublisher struct {
	conn     *amqp091.Connection
	channel  publishChannel
	exchange string
	timeout  time.Duration
}

// DialAMQP connects to url and declares a durable topic exchange.
func DialAMQP(url, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &AMQPPublisher{conn: conn, channel: ch, exchange: exchange, timeout: 5 * time.Second}, nil
}

// PublishChange sends one change to the exchange.
func (p *AMQPPublisher) PublishChange(ctx context.Context, c Change) error {
	body, err := c.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal change: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,     // exchange
		c.RoutingKey(), // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    c.Timestamp,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish change: %w", err)
	}
	return nil
}

// Run forwards every change published on topic until ctx is done. Publish
// failures are logged and the change is dropped.
func (p *AMQPPublisher) Run(ctx context.Context, topic *Topic[Change]) {
	started := time.Now()
	for c := range topic.Subscribe(ctx) {
		// The topic replays its latest value on subscribe.
		if c.Timestamp.Before(started) {
			continue
		}

		if err := p.PublishChange(ctx, c); err != nil {
			logger.Get().Warnw("failed to forward change",
				"error", err,
				"routing_key", c.RoutingKey(),
				"id", c.ID,
			)
		}
	}
}

// Close closes the channel's connection.
func (p *AMQPPublisher) Close() error {
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
