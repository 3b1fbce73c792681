package service

import (
	"Trivio/backend/go/internal/models"
	"Trivio/backend/go/pkg/apperr"
	"time"
)

// StateUpdate 是更新用户事实状态的输入，nil 字段表示保持原值。
type StateUpdate struct {
	Seen       *bool
	SeenAt     *time.Time
	IsFavorite *bool
	Reaction   *models.Reaction
}

// UpdateUserFactState 写入调用方对某条事实的参与状态。
// 合并语义：每个字段取显式提供的值，否则取已有行的值，否则取类型默认值
// (seen=false, isFavorite=false, reaction=none, seenAt 为空)。
// 写入走单条条件化 upsert，并发调用同一 (user, fact) 不会产生重复行。
func (s *Service) UpdateUserFactState(callerID, factID uint, in StateUpdate) (*models.UserFactState, error) {
	exists, err := s.store.FactExists(factID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("事实不存在")
	}

	if in.Reaction != nil && !in.Reaction.Valid() {
		return nil, apperr.Validation("非法的反应值: " + string(*in.Reaction))
	}

	existing, err := s.store.GetState(callerID, factID)
	if err != nil {
		return nil, err
	}

	// 只复制状态字段，主键留空让冲突落在 (user_id, fact_id) 唯一索引上。
	merged := models.UserFactState{
		UserID:   callerID,
		FactID:   factID,
		Reaction: models.ReactionNone,
	}
	if existing != nil {
		merged.Seen = existing.Seen
		merged.SeenAt = existing.SeenAt
		merged.IsFavorite = existing.IsFavorite
		merged.Reaction = existing.Reaction
	}
	if in.Seen != nil {
		merged.Seen = *in.Seen
	}
	if in.SeenAt != nil {
		merged.SeenAt = in.SeenAt
	}
	if in.IsFavorite != nil {
		merged.IsFavorite = *in.IsFavorite
	}
	if in.Reaction != nil {
		merged.Reaction = *in.Reaction
	}

	if err := s.store.UpsertState(&merged); err != nil {
		return nil, err
	}

	// 重新读取，返回数据库中的权威行（并发下 upsert 可能落在更新分支）。
	state, err := s.store.GetState(callerID, factID)
	if err != nil {
		return nil, err
	}
	return state, nil
}

// ListUserFactState 返回调用方的全部状态行，可选只保留收藏。
func (s *Service) ListUserFactState(callerID uint, onlyFavorites bool) ([]*models.UserFactState, error) {
	return s.store.ListStates(callerID, onlyFavorites)
}
