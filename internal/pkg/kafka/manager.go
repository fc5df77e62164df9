package kafka

import (
	"Parchment/internal/api/config"
	"Parchment/internal/pkg/es"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	contentsTopic    string
	contentsConsumer sarama.ConsumerGroup
	contentsHandler  sarama.ConsumerGroupHandler
}

func NewConsumerManager(cfg *config.Config, contentESRepo es.ContentRepo) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	contentsConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaContentConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &ConsumerManager{
		contentsTopic:    cfg.KafkaContentConsumer.Topic,
		contentsConsumer: contentsConsumer,
		contentsHandler:  NewContentsHandler(contentESRepo),
	}, nil
}

// Start 启动所有消费者，ctx 取消后关闭
func (m *ConsumerManager) Start(ctx context.Context) error {
	go func() {
		for err := range m.contentsConsumer.Errors() {
			log.Error("contents consumer error", "err", err)
		}
	}()

	go func() {
		log.Info("Contents consumer started", "topic", m.contentsTopic)
		for {
			if err := m.contentsConsumer.Consume(ctx, []string{m.contentsTopic}, m.contentsHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.contentsConsumer.Close(); err != nil {
		log.Error("Failed to close contents consumer", "err", err)
		return err
	}
	return nil
}
