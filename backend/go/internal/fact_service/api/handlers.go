package api

import (
	"Trivio/backend/go/internal/fact_service/service"
	"Trivio/backend/go/pkg/apperr"
	"Trivio/backend/go/pkg/logger"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler 封装了所有 API endpoint 的处理函数。
type Handler struct {
	service *service.Service
	logger  *logger.Logger
}

// NewHandler 创建一个新的 Handler 实例。
func NewHandler(s *service.Service, log *logger.Logger) *Handler {
	return &Handler{service: s, logger: log}
}

// respondError 将业务错误映射为统一的 JSON 错误响应。
// 带稳定错误码的业务错误按其自带的 HTTP 状态返回，其余一律视为内部错误。
func respondError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{"error": gin.H{"code": appErr.Code, "message": appErr.Error()}})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": apperr.CodeInternal, "message": "内部错误"}})
}

// respondBindError 将请求体绑定/校验失败映射为 VALIDATION_ERROR。
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": apperr.CodeValidation, "message": err.Error()}})
}

// currentUserID 从认证中间件写入的上下文中取出调用方的用户 ID。
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// --- Registration and Login Handlers ---

// RegisterEmailRequest 定义了邮箱注册请求的 JSON 结构。
type RegisterEmailRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Username string `json:"username" binding:"required"`
}

// RegisterEmail 处理邮箱注册请求。
func (h *Handler) RegisterEmail(c *gin.Context) {
	var req RegisterEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.service.RegisterUserByEmail(req.Email, req.Password, req.Username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "注册成功", "user_id": user.ID})
}

// LoginEmailRequest 定义了邮箱登录请求的 JSON 结构。
type LoginEmailRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginEmail 处理邮箱登录请求。
func (h *Handler) LoginEmail(c *gin.Context) {
	var req LoginEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	token, err := h.service.LoginUserByEmail(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout 吊销当前请求携带的令牌。
func (h *Handler) Logout(c *gin.Context) {
	jti := c.GetString("tokenJTI")
	ttl := tokenRemainingTTL(c)

	if err := h.service.RevokeToken(c.Request.Context(), jti, ttl); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "已注销"})
}
