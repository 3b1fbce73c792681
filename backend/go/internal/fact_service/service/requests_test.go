package service

import (
	"Trivio/backend/go/internal/models"
	"Trivio/backend/go/pkg/apperr"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestCreateRequestDefaultsToPending(t *testing.T) {
	svc, _ := newTestService(t)

	req, err := svc.CreateRequest(context.Background(), userA, RequestCreate{
		Prompt: strPtr("five facts about deep sea creatures"),
	})
	require.NoError(t, err)
	assert.NotZero(t, req.ID)
	assert.Equal(t, models.RequestPending, req.Status)
	require.NotNil(t, req.UserID)
	assert.Equal(t, userA, *req.UserID)
	assert.False(t, req.CreatedAt.IsZero())
}

func TestCreateRequestWithStatus(t *testing.T) {
	svc, _ := newTestService(t)

	req, err := svc.CreateRequest(context.Background(), userA, RequestCreate{
		Status: requestStatusPtr(models.RequestCompleted),
		Input:  datatypes.JSON(`{"count":5}`),
	})
	require.NoError(t, err)
	assert.Equal(t, models.RequestCompleted, req.Status)
}

func TestCreateRequestInvalidStatus(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateRequest(context.Background(), userA, RequestCreate{
		Status: requestStatusPtr(models.RequestStatus("cancelled")),
	})
	requireCode(t, err, apperr.CodeValidation)
}

func TestCreateRequestMissingTopic(t *testing.T) {
	svc, st := newTestService(t)

	_, err := svc.CreateRequest(context.Background(), userA, RequestCreate{
		TopicID: uintPtr(999),
	})
	requireCode(t, err, apperr.CodeNotFound)

	var count int64
	require.NoError(t, st.DB.Model(&models.FactRequest{}).Count(&count).Error)
	assert.Zero(t, count)
}

func requestStatusPtr(s models.RequestStatus) *models.RequestStatus { return &s }
