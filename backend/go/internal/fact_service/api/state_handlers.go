package api

import (
	"Trivio/backend/go/internal/fact_service/service"
	"Trivio/backend/go/internal/models"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// --- Request Log Handlers ---

// CreateRequestRequest 定义了记录生成请求的 JSON 结构。
type CreateRequestRequest struct {
	TopicID *uint                 `json:"topic_id"`
	Prompt  *string               `json:"prompt"`
	Input   datatypes.JSON        `json:"input"`
	Output  datatypes.JSON        `json:"output"`
	Status  *models.RequestStatus `json:"status"`
}

// CreateRequest 处理记录生成请求的调用。
// 请求只被记录和投递，生成工作由下游 worker 执行，所以这里返回 202。
func (h *Handler) CreateRequest(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		abortUnauthorized(c, "无法获取调用者信息")
		return
	}

	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	request, err := h.service.CreateRequest(c.Request.Context(), callerID, service.RequestCreate{
		TopicID: req.TopicID,
		Prompt:  req.Prompt,
		Input:   req.Input,
		Output:  req.Output,
		Status:  req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, request)
}

// --- User Fact State Handlers ---

// UpdateStateRequest 定义了更新用户事实状态的 JSON 结构。
// 除 fact_id 外所有字段都是可选的，缺失的字段保持原值。
type UpdateStateRequest struct {
	FactID     uint             `json:"fact_id" binding:"required"`
	Seen       *bool            `json:"seen"`
	SeenAt     *time.Time       `json:"seen_at"`
	IsFavorite *bool            `json:"is_favorite"`
	Reaction   *models.Reaction `json:"reaction"`
}

// UpdateUserFactState 处理更新用户事实状态的请求。
func (h *Handler) UpdateUserFactState(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		abortUnauthorized(c, "无法获取调用者信息")
		return
	}

	var req UpdateStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	state, err := h.service.UpdateUserFactState(callerID, req.FactID, service.StateUpdate{
		Seen:       req.Seen,
		SeenAt:     req.SeenAt,
		IsFavorite: req.IsFavorite,
		Reaction:   req.Reaction,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// ListUserFactState 处理列出用户事实状态的请求。
func (h *Handler) ListUserFactState(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		abortUnauthorized(c, "无法获取调用者信息")
		return
	}

	onlyFavorites := c.Query("onlyFavorites") == "true"

	states, err := h.service.ListUserFactState(callerID, onlyFavorites)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"states": states})
}
