package handler

import (
	"context"
	"strconv"

	"github.com/IBM/sarama"

	"github.com/kcls/circulation/pkg/kafka"
)

type Enqueuer interface {
	Publish(ctx context.Context, event kafka.EventCirculation) error
}

// NewEnqueuer publishes to the circulation topic. A nil producer gives an
// enqueuer that drops events, for deployments without Kafka.
func NewEnqueuer(producer sarama.SyncProducer) Enqueuer {
	if producer == nil {
		return noopEnqueuer{}
	}
	return &enqueuerImpl{
		producer: producer,
		topic:    kafka.CirculationTopic,
	}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

func (q *enqueuerImpl) Publish(_ context.Context, event kafka.EventCirculation) error {
	data, err := event.Encode()
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: q.topic,
		Key:   sarama.StringEncoder(strconv.Itoa(event.BorrowID)),
		Value: sarama.ByteEncoder(data),
	}
	_, _, err = q.producer.SendMessage(msg)
	return err
}

type noopEnqueuer struct{}

func (noopEnqueuer) Publish(context.Context, kafka.EventCirculation) error {
	return nil
}
