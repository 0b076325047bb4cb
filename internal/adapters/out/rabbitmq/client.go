// Package rabbitmq provides the AMQP transport: a reconnecting broker
// client, the event publisher and topology declaration. Exchanges are
// topic exchanges, one per event topic, and messages are routed by order
// id so all events of one order stay ordered.
package rabbitmq

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"fooddelivery/internal/contracts"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	dialTimeout      = 10 * time.Second
	heartbeat        = 10 * time.Second
	reconnectBackoff = time.Second
	maxBackoff       = 30 * time.Second
)

// ErrNotConnected is returned when an operation is attempted while the
// broker connection is down. Callers treat it as retryable.
var ErrNotConnected = errors.New("rabbitmq: connection is not ready")

// Client is a reconnecting AMQP connector. It owns one connection plus a
// dedicated publish channel and re-establishes both, including topology,
// after broker failures.
type Client struct {
	url    string
	logger *slog.Logger

	mu      sync.RWMutex
	conn    *amqp.Connection
	pubChan *amqp.Channel

	closed    chan struct{}
	reconnect chan struct{}
}

// Connect dials the broker, declares the topology and starts the
// background reconnect watcher.
func Connect(ctx context.Context, url string, logger *slog.Logger) (*Client, error) {
	client := &Client{
		url:       url,
		logger:    logger.With("component", "rabbitmq"),
		closed:    make(chan struct{}),
		reconnect: make(chan struct{}, 1),
	}

	if err := client.connectOnce(ctx); err != nil {
		return nil, err
	}

	go client.watch()

	return client, nil
}

// NewConsumerChannel returns a fresh channel with the prefetch applied.
// Consumers own the returned channel and must close it.
func (c *Client) NewConsumerChannel(prefetch int) (*amqp.Channel, error) {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil || conn.IsClosed() {
		return nil, ErrNotConnected
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	if prefetch > 0 {
		if err := ch.Qos(prefetch, 0, false); err != nil {
			_ = ch.Close()
			return nil, err
		}
	}

	return ch, nil
}

// Publish sends a persistent JSON message to a topic exchange.
func (c *Client) Publish(ctx context.Context, exchange, routingKey string, body []byte) error {
	c.mu.RLock()
	conn := c.conn
	ch := c.pubChan
	c.mu.RUnlock()

	if conn == nil || conn.IsClosed() || ch == nil || ch.IsClosed() {
		return ErrNotConnected
	}

	return ch.PublishWithContext(ctx,
		exchange, routingKey, false, false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now().UTC(),
		})
}

// Close stops the watcher and closes the AMQP resources.
func (c *Client) Close() {
	select {
	case <-c.closed:
	default:
		close(c.closed)
	}

	c.mu.Lock()
	if c.pubChan != nil {
		_ = c.pubChan.Close()
		c.pubChan = nil
	}
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
	c.mu.Unlock()
}

func (c *Client) connectOnce(ctx context.Context) error {
	conn, err := amqp.DialConfig(c.url, amqp.Config{
		Heartbeat: heartbeat,
		Dial:      amqp.DefaultDial(dialTimeout),
	})
	if err != nil {
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return err
	}

	if err := declareTopology(ch); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return err
	}

	c.mu.Lock()
	c.conn = conn
	if c.pubChan != nil {
		_ = c.pubChan.Close()
	}
	c.pubChan = ch
	c.mu.Unlock()

	go func() {
		connClosed := conn.NotifyClose(make(chan *amqp.Error, 1))
		chClosed := ch.NotifyClose(make(chan *amqp.Error, 1))
		select {
		case <-c.closed:
			return
		case <-connClosed:
		case <-chClosed:
		}

		select {
		case c.reconnect <- struct{}{}:
		default:
		}
	}()

	c.logger.InfoContext(ctx, "connected to broker")
	return nil
}

// watch re-establishes the connection with exponential backoff whenever a
// closure is signalled.
func (c *Client) watch() {
	backoff := reconnectBackoff
	for {
		select {
		case <-c.closed:
			return
		case <-c.reconnect:
			for {
				select {
				case <-c.closed:
					return
				default:
				}

				ctx, cancel := context.WithTimeout(context.Background(), maxBackoff)
				err := c.connectOnce(ctx)
				cancel()

				if err == nil {
					backoff = reconnectBackoff
					c.logger.Info("reconnected to broker")
					break
				}

				c.logger.Error("reconnect failed", "error", err)

				time.Sleep(backoff)
				if backoff < maxBackoff {
					backoff *= 2
					if backoff > maxBackoff {
						backoff = maxBackoff
					}
				}
			}
		}
	}
}

// declareTopology declares the durable topic exchanges. Queue declaration
// and binding belong to the consumers; declaring exchanges on both sides
// keeps startup order irrelevant.
func declareTopology(ch *amqp.Channel) error {
	topics := []string{
		contracts.TopicOrderEvents,
		contracts.TopicPaymentEvents,
		contracts.TopicDeliveryEvents,
		contracts.TopicUserEvents,
		contracts.TopicNotificationEvents,
	}

	for _, topic := range topics {
		if err := ch.ExchangeDeclare(topic, "topic", true, false, false, false, nil); err != nil {
			return err
		}
	}

	return nil
}
