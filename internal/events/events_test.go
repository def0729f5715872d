package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestNew(t *testing.T) {
	e := New(EntityProduct, ActionUpdated, 4, map[string]int{"stock": 3})
	assert.Equal(t, "product.updated", e.Type)
	assert.Equal(t, EntityProduct, e.Entity)
	assert.Equal(t, 4, e.ID)
	assert.False(t, e.OccurredAt.IsZero())
}

func TestKafkaPublisher_Publish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "catalog.tag.deleted" {
			return errors.New("unexpected topic " + msg.Topic)
		}
		key, _ := msg.Key.Encode()
		if string(key) != "7" {
			return errors.New("unexpected key " + string(key))
		}
		value, _ := msg.Value.Encode()
		var decoded Event
		if err := json.Unmarshal(value, &decoded); err != nil {
			return err
		}
		if decoded.Type != "tag.deleted" || decoded.ID != 7 {
			return errors.New("unexpected payload " + string(value))
		}
		return nil
	})

	publisher := NewKafkaPublisher(producer, "catalog.", quietLogger())
	require.NoError(t, publisher.Publish(context.Background(), New(EntityTag, ActionDeleted, 7, nil)))
	require.NoError(t, publisher.Close())
}

func TestKafkaPublisher_SendFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	publisher := NewKafkaPublisher(producer, "catalog.", quietLogger())
	err := publisher.Publish(context.Background(), New(EntityCategory, ActionCreated, 1, nil))
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, publisher.Close())
}

func TestDialKafka_Unreachable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := DialKafka(ctx, []string{"127.0.0.1:1"}, 1, 0, quietLogger())
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	p := NewNop()
	assert.NoError(t, p.Publish(context.Background(), New(EntityTag, ActionCreated, 1, nil)))
	assert.NoError(t, p.Close())
}
