package handler

import (
	"context"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/kcls/circulation/pkg/kafka"
)

type record func(ctx context.Context, event kafka.EventCirculation) error

const (
	retryBackoff    = 100 * time.Millisecond
	maxRetryBackoff = 10 * time.Second
)

type Consumer struct {
	record    record
	log       *zap.Logger
	ready     chan struct{}
	readyOnce sync.Once
	backoff   time.Duration
}

func NewConsumer(record record, log *zap.Logger) *Consumer {
	return &Consumer{
		record:  record,
		log:     log.Named("consumer"),
		ready:   make(chan struct{}),
		backoff: retryBackoff,
	}
}

// Ready is closed once the first session is set up.
func (consumer *Consumer) Ready() <-chan struct{} {
	return consumer.ready
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	consumer.readyOnce.Do(func() { close(consumer.ready) })
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			if !consumer.store(session.Context(), message) {
				// not stored; the next session starts over from the last mark
				return nil
			}
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

// store retries the message until it is handled or ctx is done. The rest of
// the claim waits meanwhile, so no offset past a failed event gets marked.
func (consumer *Consumer) store(ctx context.Context, message *sarama.ConsumerMessage) bool {
	wait := consumer.backoff
	for !consumer.handle(ctx, message) {
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}
		if wait *= 2; wait > maxRetryBackoff {
			wait = maxRetryBackoff
		}
	}
	return true
}

// handle reports whether the message may be committed. Undecodable messages
// are committed and skipped. Storage failures are not.
func (consumer *Consumer) handle(ctx context.Context, message *sarama.ConsumerMessage) bool {
	event, err := kafka.DecodeEventCirculation(message.Value)
	if err != nil {
		consumer.log.Error("decode", zap.Error(err), zap.Int64("offset", message.Offset))
		return true
	}
	if err := consumer.record(ctx, event); err != nil {
		consumer.log.Error("consumer.record", zap.Error(err), zap.String("eventId", event.EventID))
		return false
	}
	consumer.log.Debug("Message claimed:",
		zap.String("value", string(message.Value)),
		zap.Time("timestamp", message.Timestamp),
		zap.String("topic", message.Topic))
	return true
}
