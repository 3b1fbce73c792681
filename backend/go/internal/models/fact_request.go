package models

import (
	"time"

	"gorm.io/datatypes"
)

// RequestStatus 定义了生成请求的状态枚举。
type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestCompleted RequestStatus = "completed"
	RequestFailed    RequestStatus = "failed"
)

// Valid 报告状态值是否为合法的枚举值。
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestCompleted, RequestFailed:
		return true
	}
	return false
}

// FactRequest 记录一次事实生成任务的输入与输出。
// 这是一个只追加的日志表：本服务只负责记录请求，不执行生成。
type FactRequest struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    *uint          `gorm:"index" json:"user_id,omitempty"`
	TopicID   *uint          `json:"topic_id,omitempty"` // 可选的主题引用，写入时校验存在性
	Prompt    *string        `gorm:"type:text" json:"prompt,omitempty"`
	Input     datatypes.JSON `json:"input,omitempty"`  // 生成任务的任意输入参数
	Output    datatypes.JSON `json:"output,omitempty"` // 生成任务的任意输出结果
	Status    RequestStatus  `gorm:"type:varchar(20);default:'completed';not null" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

func (FactRequest) TableName() string {
	return "fact_requests"
}
