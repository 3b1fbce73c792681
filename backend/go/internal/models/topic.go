package models

import "time"

// Topic 代表一个事实所属的主题。
// OwnerID 为空的主题被视为共享主题：所有用户可见，但任何人都无法修改。
type Topic struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OwnerID     *uint     `gorm:"index" json:"owner_id,omitempty"` // 创建者；为空表示共享主题
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description *string   `gorm:"size:1024" json:"description,omitempty"`
	Slug        *string   `gorm:"size:255" json:"slug,omitempty"`
	IsActive    bool      `gorm:"default:true;not null" json:"is_active"` // 软停用标记，主题从不硬删除
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Topic) TableName() string {
	return "topics"
}
