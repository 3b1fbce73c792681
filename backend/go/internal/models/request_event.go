package models

import "time"

// FactRequestEvent 定义了发送到 Kafka 的生成请求事件的统一结构。
// 下游的生成 worker 消费该事件并执行实际的生成任务；本服务只负责投递。
type FactRequestEvent struct {
	RequestID uint          `json:"request_id"`
	UserID    *uint         `json:"user_id,omitempty"`
	TopicID   *uint         `json:"topic_id,omitempty"`
	Prompt    *string       `json:"prompt,omitempty"`
	Status    RequestStatus `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
}
