package repository

import (
	"context"
	"encoding/json"
	"errors"

	"shopStore/entities"
	"shopStore/models"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const orderCreatedTopic = "order.created"

type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, order entities.Order) error
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  orderCreatedTopic,
		Balancer:               &kafka.CRC32Balancer{},
		AllowAutoTopicCreation: true,
	}
}

func NewEventPublisher(writer *kafka.Writer) (EventPublisher, error) {
	if writer == nil {
		return nil, errors.New("writer must be non-nil")
	}
	return &KafkaPublisher{
		writer: writer,
	}, nil
}

func (k *KafkaPublisher) PublishOrderCreated(ctx context.Context, order entities.Order) (err error) {
	jsonData, err := json.Marshal(order)
	if err != nil {
		log.Error().Err(err).Msg("PublishOrderCreated: Marshal")
		err = models.ErrServerError
		return
	}
	err = k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.Id.Hex()),
		Value: jsonData,
	})
	if err != nil {
		log.Error().Err(err).Msg("PublishOrderCreated")
		err = models.ErrServerError
	}
	return
}
