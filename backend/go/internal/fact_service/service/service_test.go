package service

import (
	"Trivio/backend/go/internal/fact_service/store"
	"Trivio/backend/go/internal/models"
	"Trivio/backend/go/pkg/apperr"
	"Trivio/backend/go/pkg/logger"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestService spins up the service on an in-memory sqlite database.
// Each test gets its own named shared-cache DB so tests stay isolated.
func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Topic{}, &models.Fact{},
		&models.FactRequest{}, &models.UserFactState{},
	))

	st := store.NewStore(db)
	svc := NewService(st, "test-secret", time.Hour, nil, nil, testLogger())
	return svc, st
}

func testLogger() *logger.Logger {
	return logger.New("fact_service_test", "", "")
}

func boolPtr(v bool) *bool    { return &v }
func uintPtr(v uint) *uint    { return &v }
func strPtr(v string) *string { return &v }

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService(t)

	user, err := svc.RegisterUserByEmail("ada@example.com", "correct-horse", "ada")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, models.StatusActive, user.Status)

	tokenString, err := svc.LoginUserByEmail("ada@example.com", "correct-horse")
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(user.ID), claims["sub"])
	assert.NotEmpty(t, claims["jti"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RegisterUserByEmail("ada@example.com", "correct-horse", "ada")
	require.NoError(t, err)

	_, err = svc.RegisterUserByEmail("ada@example.com", "another-pass", "ada2")
	requireCode(t, err, apperr.CodeValidation)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RegisterUserByEmail("ada@example.com", "correct-horse", "ada")
	require.NoError(t, err)

	_, err = svc.LoginUserByEmail("ada@example.com", "wrong-horse")
	requireCode(t, err, apperr.CodeUnauthorized)

	_, err = svc.LoginUserByEmail("nobody@example.com", "correct-horse")
	requireCode(t, err, apperr.CodeUnauthorized)
}
