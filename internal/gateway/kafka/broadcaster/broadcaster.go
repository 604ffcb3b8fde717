package broadcaster

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
)

// Broadcaster публикует события смены статуса доставки. Ключ сообщения - order id,
// поэтому все события одного заказа попадают в одну партицию и читаются по порядку.
type Broadcaster struct {
	producer sarama.SyncProducer
	topic    string
}

func New(producer sarama.SyncProducer, topic string) *Broadcaster {
	return &Broadcaster{
		producer: producer,
		topic:    topic,
	}
}

func (b *Broadcaster) Broadcast(ctx context.Context, key string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("broadcast %s: %w", key, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: b.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("content-type"), Value: []byte("application/json")},
		},
	}

	_, _, err := b.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("broadcast %s to %s: %w", key, b.topic, err)
	}

	kafkaMessagesProduced.WithLabelValues(b.topic).Inc()
	return nil
}
