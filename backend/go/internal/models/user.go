package models

import (
	"time"

	"gorm.io/gorm"
)

// UserStatus 定义了用户账户的生命周期状态。
type UserStatus string

const (
	StatusPending     UserStatus = "pending"     // 账号待激活或验证
	StatusActive      UserStatus = "active"      // 账号正常
	StatusSuspended   UserStatus = "suspended"   // 账号被暂停
	StatusDeactivated UserStatus = "deactivated" // 账号已停用
)

// User 代表系统中的一个用户账户。
type User struct {
	gorm.Model

	Username string `gorm:"unique;not null"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"size:255" json:"-"` // 存储哈希后的密码，json中忽略

	Provider   string `gorm:"not null"` // 认证来源，目前只有 "email"
	ProviderID string `gorm:"index:idx_provider_id,unique;not null"`

	Status      UserStatus `gorm:"type:varchar(20);default:'pending';not null"`
	LastLoginAt *time.Time
}

func (User) TableName() string {
	return "users"
}
