package mq

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Message struct {
	ID         string
	RoutingKey string
	Body       []byte
	Timestamp  time.Time
}

// session is one connection plus a confirm-mode channel.
type session interface {
	Publish(ctx context.Context, exchange string, msg amqp.Publishing, routingKey string) (acked bool, err error)
	IsClosed() bool
	Close() error
}

type dialFunc func() (session, error)

// Publisher sends persistent JSON messages to one topic exchange.
// A closed connection or channel is redialed on the next Publish.
type Publisher struct {
	mu       sync.Mutex
	dial     dialFunc
	sess     session
	exchange string
}

func NewPublisher(url, exchange string) (*Publisher, error) {
	return newPublisher(func() (session, error) { return dialSession(url, exchange) }, exchange)
}

func newPublisher(dial dialFunc, exchange string) (*Publisher, error) {
	sess, err := dial()
	if err != nil {
		return nil, err
	}
	return &Publisher{dial: dial, sess: sess, exchange: exchange}, nil
}

// Publish blocks until the broker confirms the message or ctx ends.
func (p *Publisher) Publish(ctx context.Context, msg Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sess == nil || p.sess.IsClosed() {
		if p.sess != nil {
			_ = p.sess.Close()
			p.sess = nil
		}
		sess, err := p.dial()
		if err != nil {
			return fmt.Errorf("redial rabbitmq: %w", err)
		}
		p.sess = sess
	}

	acked, err := p.sess.Publish(ctx, p.exchange, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.ID,
		Timestamp:    msg.Timestamp,
		Body:         msg.Body,
	}, msg.RoutingKey)
	if err != nil {
		return fmt.Errorf("publish %s: %w", msg.RoutingKey, err)
	}
	if !acked {
		return fmt.Errorf("broker nacked %s", msg.RoutingKey)
	}
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sess == nil {
		return nil
	}
	err := p.sess.Close()
	p.sess = nil
	return err
}

type amqpSession struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func dialSession(url, exchange string) (session, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	if err := ch.Confirm(false); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("enable publisher confirms: %w", err)
	}
	return &amqpSession{conn: conn, ch: ch}, nil
}

func (s *amqpSession) Publish(ctx context.Context, exchange string, msg amqp.Publishing, routingKey string) (bool, error) {
	confirm, err := s.ch.PublishWithDeferredConfirmWithContext(ctx, exchange, routingKey, false, false, msg)
	if err != nil {
		return false, err
	}
	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return false, fmt.Errorf("await confirm: %w", err)
	}
	return acked, nil
}

func (s *amqpSession) IsClosed() bool {
	return s.conn.IsClosed() || s.ch.IsClosed()
}

func (s *amqpSession) Close() error {
	_ = s.ch.Close()
	return s.conn.Close()
}
