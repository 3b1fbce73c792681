package service

import (
	"Trivio/backend/go/internal/models"
	"Trivio/backend/go/pkg/apperr"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// TopicCreate 是创建主题的输入。
type TopicCreate struct {
	Name        string
	Description *string
	Slug        *string
	IsActive    *bool
}

// TopicUpdate 是部分更新主题的输入，nil 字段表示保持原值。
type TopicUpdate struct {
	Name        *string
	Description *string
	Slug        *string
	IsActive    *bool
}

// CreateTopic 以调用方为所有者创建一个新主题。
func (s *Service) CreateTopic(callerID uint, in TopicCreate) (*models.Topic, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("主题名称不能为空")
	}

	topic := &models.Topic{
		OwnerID:     &callerID,
		Name:        name,
		Description: in.Description,
		Slug:        in.Slug,
		IsActive:    true,
	}
	if in.IsActive != nil {
		topic.IsActive = *in.IsActive
	}

	if err := s.store.CreateTopic(topic); err != nil {
		return nil, err
	}
	return topic, nil
}

// UpdateTopic 对调用方拥有的主题做部分更新。
// 只有所有者能命中查询，他人的主题和不存在的主题返回同一个 NOT_FOUND。
// 没有提供任何字段时原样返回现有行，不刷新 updated_at。
func (s *Service) UpdateTopic(callerID, id uint, in TopicUpdate) (*models.Topic, error) {
	topic, err := s.store.GetTopicOwnedBy(id, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("主题不存在")
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, apperr.Validation("主题名称不能为空")
		}
		fields["name"] = name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Slug != nil {
		fields["slug"] = *in.Slug
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}

	if len(fields) == 0 {
		return topic, nil
	}

	if err := s.store.UpdateTopic(topic, fields); err != nil {
		return nil, err
	}
	return topic, nil
}

// ListTopics 返回调用方可见的主题，默认排除已软停用的主题。
func (s *Service) ListTopics(callerID uint, includeInactive bool) ([]*models.Topic, error) {
	return s.store.ListTopics(callerID, includeInactive)
}
