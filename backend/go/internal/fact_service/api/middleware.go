package api

import (
	"Trivio/backend/go/internal/fact_service/service"
	"Trivio/backend/go/internal/models"
	"Trivio/backend/go/pkg/apperr"
	"Trivio/backend/go/pkg/logger"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

// abortUnauthorized 以统一的错误结构终止未认证的请求。
func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": apperr.CodeUnauthorized, "message": message}})
	c.Abort()
}

// AuthMiddleware 创建一个 Gin 中间件，用于验证 JWT。
// 这是所有受保护操作的认证入口：没有合法身份的调用一律在这里被拒绝，
// 通过后调用方的用户 ID 被写入上下文，由处理函数显式传给业务层。
func AuthMiddleware(jwtSecret string, svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "请求未包含授权标头")
			return
		}

		// 我们期望的格式是 "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "授权标头格式不正确")
			return
		}

		tokenString := parts[1]

		// 解析和验证 token
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			// 确保 token 的签名方法是我们期望的
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("非预期的签名方法")
			}
			return []byte(jwtSecret), nil
		})

		if err != nil {
			abortUnauthorized(c, "无效的 token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			abortUnauthorized(c, "无效的 token")
			return
		}

		// 从 claims 中获取用户 ID
		userID, ok := claims["sub"].(float64) // JWT 解析数字时默认为 float64
		if !ok {
			abortUnauthorized(c, "无效的 token claims")
			return
		}

		// 已注销的令牌视同没有令牌
		jti, _ := claims["jti"].(string)
		if jti != "" {
			revoked, err := svc.IsTokenRevoked(c.Request.Context(), jti)
			if err == nil && revoked {
				abortUnauthorized(c, "token 已被吊销")
				return
			}
		}

		// 将用户 ID 和令牌信息存储在 Gin 的上下文中，以便后续的处理函数可以使用
		c.Set("userID", uint(userID))
		c.Set("tokenJTI", jti)
		if exp, ok := claims["exp"].(float64); ok {
			c.Set("tokenExp", int64(exp))
		}

		// 进入下一个处理函数
		c.Next()
	}
}

// tokenRemainingTTL 计算当前令牌的剩余生命周期，用作吊销记录的过期时间。
func tokenRemainingTTL(c *gin.Context) time.Duration {
	exp := c.GetInt64("tokenExp")
	if exp == 0 {
		return 0
	}
	return time.Until(time.Unix(exp, 0))
}

// TraceMiddleware 为每个请求分配一个 trace id，并输出一条结构化的访问日志。
func TraceMiddleware(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := uuid.NewString()
		c.Set("traceID", traceID)
		c.Header("X-Trace-ID", traceID)

		c.Next()

		userID := ""
		if id, ok := currentUserID(c); ok {
			userID = strconv.FormatUint(uint64(id), 10)
		}
		log := logger.New(serviceName, traceID, userID).WithRequest(models.RequestInfo{
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			RemoteAddr: c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
		})
		log.WithPayload(map[string]interface{}{"status": c.Writer.Status()}).Info("request completed")
	}
}
