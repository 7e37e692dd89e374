package mq

import (
	"context"
	"errors"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Handle func(ctx context.Context, body []byte) error

type Consumer interface {
	Consume(ctx context.Context, prefetch int, queue string, handler Handle) error
}

type RabbitConsumer struct {
	ch *amqp.Channel
}

func NewRabbitConsumer(ch *amqp.Channel) Consumer {
	return &RabbitConsumer{ch: ch}
}

// Consume processes deliveries from queue until ctx is cancelled or the
// channel closes. Handler errors wrapped with Temporary are nacked with
// requeue; anything else is nacked dead.
func (c *RabbitConsumer) Consume(ctx context.Context, prefetch int, queue string, handler Handle) error {
	if prefetch <= 0 {
		prefetch = 1
	}

	if err := c.ch.Qos(prefetch, 0, false); err != nil {
		return err
	}

	tag := queue + ".worker"
	deliveries, err := c.ch.Consume(queue, tag, false, false, false, false, nil)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			_ = c.ch.Cancel(tag, false)
			// drain deliveries already in flight so they return to the queue
			for d := range deliveries {
				_ = d.Nack(false, true)
			}
			return ctx.Err()

		case d, ok := <-deliveries:
			if !ok {
				return nil
			}

			if err := handler(ctx, d.Body); err != nil {
				_ = d.Nack(false, shouldRequeue(err))
				continue
			}

			_ = d.Ack(false)
		}
	}
}

func shouldRequeue(err error) bool {
	var te TempError
	return errors.As(err, &te) && te.Temporary()
}
