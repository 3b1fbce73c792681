package service

import (
	"Trivio/backend/go/internal/models"
	"Trivio/backend/go/pkg/apperr"
	"errors"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FactCreate 是创建事实的输入。
type FactCreate struct {
	TopicID    *uint
	Content    string
	Difficulty *models.Difficulty
	Source     *string
	SourceMeta datatypes.JSON
	Origin     *models.FactOrigin
	IsActive   *bool
}

// FactUpdate 是部分更新事实的输入，nil 字段表示保持原值。
type FactUpdate struct {
	TopicID    *uint
	Content    *string
	Difficulty *models.Difficulty
	Source     *string
	SourceMeta datatypes.JSON
	Origin     *models.FactOrigin
	IsActive   *bool
}

// CreateFact 以调用方为所有者创建一条新事实。
// 引用了主题时先校验主题存在（只校验存在性，不限所有者），
// 校验失败不会写入任何行。
func (s *Service) CreateFact(callerID uint, in FactCreate) (*models.Fact, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, apperr.Validation("事实内容不能为空")
	}

	if in.TopicID != nil {
		if err := s.requireTopic(*in.TopicID); err != nil {
			return nil, err
		}
	}

	fact := &models.Fact{
		TopicID:    in.TopicID,
		Content:    content,
		Difficulty: models.DifficultyBasic,
		Source:     in.Source,
		SourceMeta: in.SourceMeta,
		Origin:     models.OriginAI,
		OwnerID:    &callerID,
		IsActive:   true,
	}
	if in.Difficulty != nil {
		if !in.Difficulty.Valid() {
			return nil, apperr.Validation("非法的难度值: " + string(*in.Difficulty))
		}
		fact.Difficulty = *in.Difficulty
	}
	if in.Origin != nil {
		if !in.Origin.Valid() {
			return nil, apperr.Validation("非法的来源值: " + string(*in.Origin))
		}
		fact.Origin = *in.Origin
	}
	if in.IsActive != nil {
		fact.IsActive = *in.IsActive
	}

	if err := s.store.CreateFact(fact); err != nil {
		return nil, err
	}
	return fact, nil
}

// UpdateFact 对调用方拥有的事实做部分更新。
// 更新中携带主题引用时，同样先校验主题存在再应用任何字段。
func (s *Service) UpdateFact(callerID, id uint, in FactUpdate) (*models.Fact, error) {
	fact, err := s.store.GetFactOwnedBy(id, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("事实不存在")
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.TopicID != nil {
		if err := s.requireTopic(*in.TopicID); err != nil {
			return nil, err
		}
		fields["topic_id"] = *in.TopicID
	}
	if in.Content != nil {
		content := strings.TrimSpace(*in.Content)
		if content == "" {
			return nil, apperr.Validation("事实内容不能为空")
		}
		fields["content"] = content
	}
	if in.Difficulty != nil {
		if !in.Difficulty.Valid() {
			return nil, apperr.Validation("非法的难度值: " + string(*in.Difficulty))
		}
		fields["difficulty"] = *in.Difficulty
	}
	if in.Source != nil {
		fields["source"] = *in.Source
	}
	if in.SourceMeta != nil {
		fields["source_meta"] = in.SourceMeta
	}
	if in.Origin != nil {
		if !in.Origin.Valid() {
			return nil, apperr.Validation("非法的来源值: " + string(*in.Origin))
		}
		fields["origin"] = *in.Origin
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}

	if len(fields) == 0 {
		return fact, nil
	}

	if err := s.store.UpdateFact(fact, fields); err != nil {
		return nil, err
	}
	return fact, nil
}

// ListFacts 返回调用方可见的事实，可选按主题过滤，默认排除已软停用的事实。
func (s *Service) ListFacts(callerID uint, topicID *uint, includeInactive bool) ([]*models.Fact, error) {
	return s.store.ListFacts(callerID, topicID, includeInactive)
}

// requireTopic 校验主题存在，否则返回 NOT_FOUND。
func (s *Service) requireTopic(topicID uint) error {
	exists, err := s.store.TopicExists(topicID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("主题不存在")
	}
	return nil
}
