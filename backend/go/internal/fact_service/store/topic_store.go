package store

import (
	"Trivio/backend/go/internal/models"
)

// --- Topic Management ---

// CreateTopic 在数据库中创建一个新主题。
func (s *Store) CreateTopic(topic *models.Topic) error {
	return s.DB.Create(topic).Error
}

// GetTopicOwnedBy 通过 ID 和所有者查找主题。
// 按 id 和 owner_id 联合查询：查不到即视为不存在，
// 不区分"行不存在"和"行属于他人"，避免泄露他人主题的存在性。
func (s *Store) GetTopicOwnedBy(id, ownerID uint) (*models.Topic, error) {
	var topic models.Topic
	if err := s.DB.Where("id = ? AND owner_id = ?", id, ownerID).First(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

// TopicExists 检查指定 ID 的主题是否存在（不限所有者）。
func (s *Store) TopicExists(id uint) (bool, error) {
	var count int64
	if err := s.DB.Model(&models.Topic{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateTopic 将指定字段应用到主题行上。
// 调用方只传入显式提供的字段，未提供的字段保持原值；
// updated_at 由 GORM 在更新时自动刷新。
func (s *Store) UpdateTopic(topic *models.Topic, fields map[string]interface{}) error {
	return s.DB.Model(topic).Updates(fields).Error
}

// ListTopics 返回调用方可见的主题列表。
// 可见性规则：无所有者的共享主题对所有人可见，有所有者的主题只对所有者可见；
// 过滤条件直接下推到查询谓词中，而不是在内存中过滤。
func (s *Store) ListTopics(ownerID uint, includeInactive bool) ([]*models.Topic, error) {
	query := s.DB.Where("owner_id IS NULL OR owner_id = ?", ownerID)
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var topics []*models.Topic
	if err := query.Order("id").Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}
