package api

import (
	"Trivio/backend/go/internal/fact_service/service"
	"Trivio/backend/go/internal/fact_service/store"
	"Trivio/backend/go/internal/models"
	"Trivio/backend/go/pkg/logger"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Topic{}, &models.Fact{},
		&models.FactRequest{}, &models.UserFactState{},
	))

	log := logger.New("fact_service_test", "", "")
	svc := service.NewService(store.NewStore(db), testSecret, time.Hour, nil, nil, log)
	return SetupRouter(NewHandler(svc, log), testSecret, svc)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// registerAndLogin 注册一个用户并返回其登录令牌。
func registerAndLogin(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email": email, "password": "correct-horse", "username": strings.Split(email, "@")[0],
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": email, "password": "correct-horse",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/topics", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/topics", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := registerAndLogin(t, r, "ada@example.com")
	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestTopicLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	tokenA := registerAndLogin(t, r, "ada@example.com")
	tokenB := registerAndLogin(t, r, "bob@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/v1/topics", tokenA, gin.H{"name": "Space"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var topic models.Topic
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &topic))
	require.NotZero(t, topic.ID)

	// 他人更新得到 404，而不是泄露存在性的 403
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/topics/%d", topic.ID), tokenB,
		gin.H{"name": "Astronomy"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/topics/%d", topic.ID), tokenA,
		gin.H{"name": "Astronomy"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/v1/topics", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Astronomy")
}

func TestCreateFactValidationOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "ada@example.com")

	// 缺失 content 由绑定校验拦下
	w := doJSON(t, r, http.MethodPost, "/api/v1/facts", token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")

	// 引用不存在的主题
	w = doJSON(t, r, http.MethodPost, "/api/v1/facts", token, gin.H{
		"content": "Bananas are berries.", "topic_id": 999,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRequestAcceptedOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "ada@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/v1/requests", token, gin.H{
		"prompt": "five facts about deep sea creatures",
	})
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
}

func TestFactStateUpsertOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "ada@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/v1/facts", token, gin.H{"content": "x"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var fact models.Fact
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fact))

	w = doJSON(t, r, http.MethodPut, "/api/v1/fact-states", token, gin.H{
		"fact_id": fact.ID, "seen": true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPut, "/api/v1/fact-states", token, gin.H{
		"fact_id": fact.ID, "is_favorite": true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var state models.UserFactState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.True(t, state.Seen)
	assert.True(t, state.IsFavorite)

	w = doJSON(t, r, http.MethodGet, "/api/v1/fact-states?onlyFavorites=true", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		States []models.UserFactState `json:"states"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.States, 1)
}
