package service

import (
	"Trivio/backend/go/internal/models"
	"Trivio/backend/go/pkg/apperr"
	"context"

	"gorm.io/datatypes"
)

// RequestCreate 是记录生成请求的输入。
type RequestCreate struct {
	TopicID *uint
	Prompt  *string
	Input   datatypes.JSON
	Output  datatypes.JSON
	Status  *models.RequestStatus
}

// CreateRequest 追加一条生成请求记录并把事件投递到 Kafka。
// 本服务只记录请求，不执行生成；实际的生成工作由消费事件的下游 worker 完成。
// 调用方没有提供状态时默认为 pending（等待下游处理）。
func (s *Service) CreateRequest(ctx context.Context, callerID uint, in RequestCreate) (*models.FactRequest, error) {
	if in.TopicID != nil {
		if err := s.requireTopic(*in.TopicID); err != nil {
			return nil, err
		}
	}

	status := models.RequestPending
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, apperr.Validation("非法的请求状态: " + string(*in.Status))
		}
		status = *in.Status
	}

	req := &models.FactRequest{
		UserID:  &callerID,
		TopicID: in.TopicID,
		Prompt:  in.Prompt,
		Input:   in.Input,
		Output:  in.Output,
		Status:  status,
	}

	if err := s.store.CreateRequest(req); err != nil {
		return nil, err
	}

	// 投递失败只降级为告警：数据库中的请求行才是事实来源。
	if s.publisher != nil {
		if err := s.publisher.PublishRequest(ctx, req); err != nil {
			s.logger.WithError(models.ErrorInfo{Message: err.Error(), Type: "kafka_error"}).Warn("生成请求事件投递失败")
		}
	}

	return req, nil
}
