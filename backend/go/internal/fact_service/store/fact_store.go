package store

import (
	"Trivio/backend/go/internal/models"
)

// --- Fact Management ---

// CreateFact 在数据库中创建一条新事实。
func (s *Store) CreateFact(fact *models.Fact) error {
	return s.DB.Create(fact).Error
}

// GetFactOwnedBy 通过 ID 和所有者查找事实。
// 与主题相同：查不到即视为不存在，不泄露他人事实的存在性。
func (s *Store) GetFactOwnedBy(id, ownerID uint) (*models.Fact, error) {
	var fact models.Fact
	if err := s.DB.Where("id = ? AND owner_id = ?", id, ownerID).First(&fact).Error; err != nil {
		return nil, err
	}
	return &fact, nil
}

// FactExists 检查指定 ID 的事实是否存在（不限所有者）。
func (s *Store) FactExists(id uint) (bool, error) {
	var count int64
	if err := s.DB.Model(&models.Fact{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateFact 将指定字段应用到事实行上。
func (s *Store) UpdateFact(fact *models.Fact, fields map[string]interface{}) error {
	return s.DB.Model(fact).Updates(fields).Error
}

// ListFacts 返回调用方可见的事实列表，可选按主题过滤。
// 过滤条件全部下推到查询谓词中。
func (s *Store) ListFacts(ownerID uint, topicID *uint, includeInactive bool) ([]*models.Fact, error) {
	query := s.DB.Where("owner_id IS NULL OR owner_id = ?", ownerID)
	if topicID != nil {
		query = query.Where("topic_id = ?", *topicID)
	}
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var facts []*models.Fact
	if err := query.Order("id").Find(&facts).Error; err != nil {
		return nil, err
	}
	return facts, nil
}
