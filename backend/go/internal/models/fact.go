package models

import (
	"time"

	"gorm.io/datatypes"
)

// Difficulty 定义了事实的难度等级。
type Difficulty string

const (
	DifficultyBasic        Difficulty = "basic"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Valid 报告难度值是否为合法的枚举值。
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBasic, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// FactOrigin 定义了事实的来源类型。
type FactOrigin string

const (
	OriginAI      FactOrigin = "ai"      // 由生成任务产出
	OriginUser    FactOrigin = "user"    // 用户手动录入
	OriginCurated FactOrigin = "curated" // 人工审核整理
)

// Valid 报告来源值是否为合法的枚举值。
func (o FactOrigin) Valid() bool {
	switch o {
	case OriginAI, OriginUser, OriginCurated:
		return true
	}
	return false
}

// Fact 代表一条事实记录及其元数据。
type Fact struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	TopicID    *uint          `gorm:"index" json:"topic_id,omitempty"` // 可选的主题引用，写入时校验存在性
	Content    string         `gorm:"type:text;not null" json:"content"`
	Difficulty Difficulty     `gorm:"type:varchar(20);default:'basic';not null" json:"difficulty"`
	Source     *string        `gorm:"size:512" json:"source,omitempty"`
	SourceMeta datatypes.JSON `json:"source_meta,omitempty"` // 来源的任意结构化元数据
	Origin     FactOrigin     `gorm:"type:varchar(20);default:'ai';not null" json:"origin"`
	OwnerID    *uint          `gorm:"index" json:"owner_id,omitempty"` // 为空表示共享事实
	IsActive   bool           `gorm:"default:true;not null" json:"is_active"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func (Fact) TableName() string {
	return "facts"
}
