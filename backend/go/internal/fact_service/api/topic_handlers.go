package api

import (
	"Trivio/backend/go/internal/fact_service/service"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// --- Topic Handlers ---

// CreateTopicRequest 定义了创建主题请求的 JSON 结构。
type CreateTopicRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Slug        *string `json:"slug"`
	IsActive    *bool   `json:"is_active"`
}

// CreateTopic 处理创建主题的请求。
func (h *Handler) CreateTopic(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		abortUnauthorized(c, "无法获取调用者信息")
		return
	}

	var req CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	topic, err := h.service.CreateTopic(callerID, service.TopicCreate{
		Name:        req.Name,
		Description: req.Description,
		Slug:        req.Slug,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, topic)
}

// UpdateTopicRequest 定义了部分更新主题请求的 JSON 结构。
// 所有字段都是可选的，缺失的字段保持原值。
type UpdateTopicRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Slug        *string `json:"slug"`
	IsActive    *bool   `json:"is_active"`
}

// UpdateTopic 处理部分更新主题的请求。
func (h *Handler) UpdateTopic(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		abortUnauthorized(c, "无法获取调用者信息")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBindError(c, err)
		return
	}

	var req UpdateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	topic, err := h.service.UpdateTopic(callerID, uint(id), service.TopicUpdate{
		Name:        req.Name,
		Description: req.Description,
		Slug:        req.Slug,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, topic)
}

// ListTopics 处理列出主题的请求。
func (h *Handler) ListTopics(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		abortUnauthorized(c, "无法获取调用者信息")
		return
	}

	includeInactive := c.Query("includeInactive") == "true"

	topics, err := h.service.ListTopics(callerID, includeInactive)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"topics": topics})
}
