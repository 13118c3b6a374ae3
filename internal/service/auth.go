package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ADI-2707/Web-App/internal/model"
	"github.com/ADI-2707/Web-App/pkg/hash"
	jwtpkg "github.com/ADI-2707/Web-App/pkg/jwt"
	"gorm.io/gorm"
)

const minPasswordLength = 6

type AuthService struct {
	db        *gorm.DB
	jwtSecret string
	jwtExpire int
}

func NewAuthService(db *gorm.DB, jwtSecret string, jwtExpire int) *AuthService {
	return &AuthService{db: db, jwtSecret: jwtSecret, jwtExpire: jwtExpire}
}

func (s *AuthService) Register(fullName, email, password, confirmPassword string) (*model.User, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.ToLower(strings.TrimSpace(email))
	if fullName == "" || email == "" {
		return nil, fmt.Errorf("40001:full name and email are required")
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("40001:password must be at least %d characters", minPasswordLength)
	}
	if password != confirmPassword {
		return nil, fmt.Errorf("40001:passwords do not match")
	}

	var count int64
	if err := s.db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("40009:email already registered")
	}

	digest, err := hash.Make(password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: digest,
		Status:       1,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (*model.User, string, time.Time, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user model.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", time.Time{}, fmt.Errorf("40102:invalid email or password")
		}
		return nil, "", time.Time{}, err
	}
	if user.Status == 0 {
		return nil, "", time.Time{}, fmt.Errorf("40104:account disabled")
	}
	if !hash.Check(password, user.PasswordHash) {
		return nil, "", time.Time{}, fmt.Errorf("40102:invalid email or password")
	}

	now := time.Now()
	s.db.Model(&user).Update("last_login_at", &now)

	token, expireAt, err := jwtpkg.GenerateToken(s.jwtSecret, user.ID, user.Email, s.jwtExpire)
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("generate token: %w", err)
	}
	return &user, token, expireAt, nil
}

func (s *AuthService) GetUserByID(id uint) (*model.User, error) {
	var user model.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// SearchUsers backs the invite picker on project creation.
func (s *AuthService) SearchUsers(keyword string, limit int) ([]model.User, error) {
	query := s.db.Model(&model.User{}).Where("status = 1")
	if keyword != "" {
		pattern := "%" + strings.ToLower(keyword) + "%"
		query = query.Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}
	var users []model.User
	if err := query.Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
