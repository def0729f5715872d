package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/sirupsen/logrus"
)

type KafkaPublisher struct {
	producer    sarama.SyncProducer
	topicPrefix string
	log         *logrus.Logger
}

func NewKafkaPublisher(producer sarama.SyncProducer, topicPrefix string, logger *logrus.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		producer:    producer,
		topicPrefix: topicPrefix,
		log:         logger,
	}
}

// DialKafka builds a sync producer that waits for all in-sync replicas,
// retrying while the brokers come up.
func DialKafka(ctx context.Context, brokers []string, attempts int, wait time.Duration, logger *logrus.Logger) (sarama.SyncProducer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	var producer sarama.SyncProducer
	var err error
	for i := 1; i <= attempts; i++ {
		producer, err = sarama.NewSyncProducer(brokers, config)
		if err == nil {
			logger.Infof("Kafka producer connected to %v", brokers)
			return producer, nil
		}

		logger.Warnf("Waiting for Kafka... (%d/%d) Error: %v", i, attempts, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	return nil, fmt.Errorf("failed to start kafka producer after %d attempts: %w", attempts, err)
}

func (p *KafkaPublisher) Publish(_ context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", event.Type, err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     p.topicPrefix + event.Type,
		Key:       sarama.StringEncoder(strconv.Itoa(event.ID)),
		Value:     sarama.ByteEncoder(data),
		Timestamp: event.OccurredAt,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send kafka message to %s: %w", msg.Topic, err)
	}
	p.log.Debugf("Published %s to partition %d at offset %d", msg.Topic, partition, offset)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
