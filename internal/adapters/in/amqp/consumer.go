// Package amqp contains the inbound message adapters: consumers that read
// events from the broker and dispatch them to the application's event
// handlers with an explicit acknowledgement discipline.
//
// Outcome mapping:
//   - nil: the message is acknowledged
//   - a terminal error: the message is unrecoverable, logged and dropped
//   - any other error: the message is requeued for another attempt
package amqp

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/adapters/out/rabbitmq"
	"fooddelivery/internal/core/application/eventhandlers"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	prefetch       = 50
	retryBaseDelay = time.Second
	retryMaxDelay  = 30 * time.Second
)

// MessageHandler processes one raw message body.
type MessageHandler func(ctx context.Context, body []byte) error

// Consumer reads one queue bound to a topic exchange and feeds messages to
// a handler.
type Consumer struct {
	client   *rabbitmq.Client
	exchange string
	queue    string
	handler  MessageHandler
	logger   *slog.Logger
}

// NewConsumer creates a consumer for a queue bound to the given exchange.
func NewConsumer(
	client *rabbitmq.Client,
	exchange string,
	queue string,
	handler MessageHandler,
	logger *slog.Logger,
) *Consumer {
	return &Consumer{
		client:   client,
		exchange: exchange,
		queue:    queue,
		handler:  handler,
		logger:   logger.With("component", "consumer", "queue", queue),
	}
}

// Run consumes until the context is cancelled, recreating the channel with
// backoff after broker failures.
func (c *Consumer) Run(ctx context.Context) {
	backoff := retryBaseDelay
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		ch, err := c.openChannel()
		if err != nil {
			c.logger.ErrorContext(ctx, "failed to open consumer channel", "error", err)
			if !sleepWithContext(ctx, backoff) {
				return
			}
			backoff = nextBackoff(backoff)
			continue
		}
		backoff = retryBaseDelay

		deliveries, err := ch.Consume(c.queue, "", false, false, false, false, nil)
		if err != nil {
			_ = ch.Close()
			c.logger.ErrorContext(ctx, "failed to start consuming", "error", err)
			if !sleepWithContext(ctx, backoff) {
				return
			}
			backoff = nextBackoff(backoff)
			continue
		}

		closed := ch.NotifyClose(make(chan *amqp.Error, 1))

	consumption:
		for {
			select {
			case <-ctx.Done():
				_ = ch.Close()
				return

			case amqpErr := <-closed:
				if amqpErr != nil {
					c.logger.ErrorContext(ctx, "consumer channel closed", "error", amqpErr)
				}
				break consumption

			case d, ok := <-deliveries:
				if !ok {
					break consumption
				}
				c.dispatch(ctx, d)
			}
		}

		if !sleepWithContext(ctx, backoff) {
			return
		}
		backoff = nextBackoff(backoff)
	}
}

// openChannel acquires a fresh channel, declares the durable queue and
// binds it to every routing key of the exchange. Declaration is
// idempotent, so a reconnect re-runs it safely.
func (c *Consumer) openChannel() (*amqp.Channel, error) {
	ch, err := c.client.NewConsumerChannel(prefetch)
	if err != nil {
		return nil, err
	}

	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, err
	}

	if err := ch.QueueBind(c.queue, "#", c.exchange, false, nil); err != nil {
		_ = ch.Close()
		return nil, err
	}

	return ch, nil
}

// dispatch runs the handler and settles the message. Terminal failures are
// dropped with an acknowledgement so a poison message cannot wedge the
// queue; everything else is requeued.
func (c *Consumer) dispatch(ctx context.Context, d amqp.Delivery) {
	err := c.handler(ctx, d.Body)
	switch {
	case err == nil:
		if ackErr := d.Ack(false); ackErr != nil {
			c.logger.ErrorContext(ctx, "failed to ack message", "error", ackErr)
		}

	case eventhandlers.IsTerminal(err):
		c.logger.ErrorContext(ctx, "dropping unprocessable message", "error", err)
		if ackErr := d.Ack(false); ackErr != nil {
			c.logger.ErrorContext(ctx, "failed to ack message", "error", ackErr)
		}

	default:
		c.logger.WarnContext(ctx, "requeueing message", "error", err)
		if nackErr := d.Nack(false, true); nackErr != nil {
			c.logger.ErrorContext(ctx, "failed to nack message", "error", nackErr)
		}
	}
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

func nextBackoff(current time.Duration) time.Duration {
	next := current * 2
	if next > retryMaxDelay {
		return retryMaxDelay
	}
	return next
}
