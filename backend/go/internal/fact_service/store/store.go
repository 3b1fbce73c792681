package store

import (
	"gorm.io/gorm"
)

// Store 封装了所有与事实服务相关的数据库操作。
type Store struct {
	DB *gorm.DB
}

// NewStore 创建一个新的 Store 实例。
func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}
