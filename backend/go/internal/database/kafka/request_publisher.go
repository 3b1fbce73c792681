package kafka

import (
	"Trivio/backend/go/internal/models"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

const FactRequestTopic = "fact_requests"

// RequestPublisher 封装了向 Kafka 投递生成请求事件的逻辑。
// 事件由下游的生成 worker 消费；请求行本身始终以数据库为准。
type RequestPublisher struct {
	writer *kafka.Writer
}

// NewRequestPublisher 创建一个新的 RequestPublisher 实例。
func NewRequestPublisher(client *KafkaClient) *RequestPublisher {
	// 为生成请求主题创建一个新的 writer 实例配置
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers:      client.Config.Brokers,
		Topic:        FactRequestTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		BatchSize:    100,
	})
	return &RequestPublisher{writer: writer}
}

// PublishRequest 将 FactRequest 序列化为事件并发送到 Kafka。
func (p *RequestPublisher) PublishRequest(ctx context.Context, req *models.FactRequest) error {
	event := models.FactRequestEvent{
		RequestID: req.ID,
		UserID:    req.UserID,
		TopicID:   req.TopicID,
		Prompt:    req.Prompt,
		Status:    req.Status,
		Timestamp: time.Now(),
	}
	jsonData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal request event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(req.ID), 10)),
		Value: jsonData,
	})

	if err != nil {
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}

	return nil
}

// Close 关闭底层的 writer 连接。
func (p *RequestPublisher) Close() error {
	return p.writer.Close()
}
