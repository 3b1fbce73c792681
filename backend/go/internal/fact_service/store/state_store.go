package store

import (
	"Trivio/backend/go/internal/models"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// --- User Fact State ---

// GetState 查找用户对某条事实的参与状态行；不存在时返回 (nil, nil)。
func (s *Store) GetState(userID, factID uint) (*models.UserFactState, error) {
	var state models.UserFactState
	err := s.DB.Where("user_id = ? AND fact_id = ?", userID, factID).First(&state).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &state, nil
}

// UpsertState 以单条条件化 upsert 写入状态行。
// (user_id, fact_id) 上的唯一索引保证并发写入不会产生重复行：
// 两个并发调用都没读到已有行时，后插入的一方会落到 ON CONFLICT 的更新分支。
// 冲突更新不触碰 created_at，已有行保留最初的创建时间。
func (s *Store) UpsertState(state *models.UserFactState) error {
	return s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "fact_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"seen", "seen_at", "is_favorite", "reaction", "updated_at",
		}),
	}).Create(state).Error
}

// ListStates 返回用户的全部状态行，可选只保留收藏。
func (s *Store) ListStates(userID uint, onlyFavorites bool) ([]*models.UserFactState, error) {
	query := s.DB.Where("user_id = ?", userID)
	if onlyFavorites {
		query = query.Where("is_favorite = ?", true)
	}

	var states []*models.UserFactState
	if err := query.Order("id").Find(&states).Error; err != nil {
		return nil, err
	}
	return states, nil
}
