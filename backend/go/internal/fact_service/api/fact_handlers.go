package api

import (
	"Trivio/backend/go/internal/fact_service/service"
	"Trivio/backend/go/internal/models"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// --- Fact Handlers ---

// CreateFactRequest 定义了创建事实请求的 JSON 结构。
type CreateFactRequest struct {
	TopicID    *uint              `json:"topic_id"`
	Content    string             `json:"content" binding:"required"`
	Difficulty *models.Difficulty `json:"difficulty"`
	Source     *string            `json:"source"`
	SourceMeta datatypes.JSON     `json:"source_meta"`
	Origin     *models.FactOrigin `json:"origin"`
	IsActive   *bool              `json:"is_active"`
}

// CreateFact 处理创建事实的请求。
func (h *Handler) CreateFact(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		abortUnauthorized(c, "无法获取调用者信息")
		return
	}

	var req CreateFactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	fact, err := h.service.CreateFact(callerID, service.FactCreate{
		TopicID:    req.TopicID,
		Content:    req.Content,
		Difficulty: req.Difficulty,
		Source:     req.Source,
		SourceMeta: req.SourceMeta,
		Origin:     req.Origin,
		IsActive:   req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, fact)
}

// UpdateFactRequest 定义了部分更新事实请求的 JSON 结构。
// 所有字段都是可选的，缺失的字段保持原值。
type UpdateFactRequest struct {
	TopicID    *uint              `json:"topic_id"`
	Content    *string            `json:"content"`
	Difficulty *models.Difficulty `json:"difficulty"`
	Source     *string            `json:"source"`
	SourceMeta datatypes.JSON     `json:"source_meta"`
	Origin     *models.FactOrigin `json:"origin"`
	IsActive   *bool              `json:"is_active"`
}

// UpdateFact 处理部分更新事实的请求。
func (h *Handler) UpdateFact(c *gin.Context) {
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

	var req UpdateFactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	fact, err := h.service.UpdateFact(callerID, uint(id), service.FactUpdate{
		TopicID:    req.TopicID,
		Content:    req.Content,
		Difficulty: req.Difficulty,
		Source:     req.Source,
		SourceMeta: req.SourceMeta,
		Origin:     req.Origin,
		IsActive:   req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, fact)
}

// ListFacts 处理列出事实的请求。
func (h *Handler) ListFacts(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		abortUnauthorized(c, "无法获取调用者信息")
		return
	}

	var topicID *uint
	if raw := c.Query("topicId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondBindError(c, err)
			return
		}
		id := uint(parsed)
		topicID = &id
	}
	includeInactive := c.Query("includeInactive") == "true"

	facts, err := h.service.ListFacts(callerID, topicID, includeInactive)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"facts": facts})
}
