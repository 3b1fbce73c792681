package store

import (
	"Trivio/backend/go/internal/models"
)

// --- Request Log ---

// CreateRequest 在数据库中追加一条生成请求记录。
// 请求日志是只追加的，没有更新或删除操作。
func (s *Store) CreateRequest(req *models.FactRequest) error {
	return s.DB.Create(req).Error
}
