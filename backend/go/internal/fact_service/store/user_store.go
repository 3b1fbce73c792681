package store

import (
	"Trivio/backend/go/internal/models"
)

// --- User Management ---

// CreateUser 在数据库中创建一个新用户。
func (s *Store) CreateUser(user *models.User) error {
	return s.DB.Create(user).Error
}

// GetUserByEmail 通过邮箱地址查找用户。
func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID 通过 ID 查找用户。
func (s *Store) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// TouchLastLogin 更新用户的最近登录时间。
func (s *Store) TouchLastLogin(user *models.User) error {
	return s.DB.Model(user).Update("last_login_at", s.DB.NowFunc()).Error
}
