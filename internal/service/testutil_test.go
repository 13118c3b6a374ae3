package service

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ADI-2707/Web-App/internal/config"
	"github.com/ADI-2707/Web-App/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Project{}, &model.ProjectMember{}))
	return db
}

func newProjectService(db *gorm.DB, security config.SecurityConfig) *ProjectService {
	if security.PINLength == 0 {
		security.PINLength = 8
	}
	return NewProjectService(db, nil, zap.NewNop().Sugar(), security)
}

func createUser(t *testing.T, db *gorm.DB, name, email string) *model.User {
	t.Helper()
	user := &model.User{
		FullName:     name,
		Email:        email,
		PasswordHash: "x",
		Status:       1,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// seedProject inserts a project row and its root membership directly,
// bypassing the orchestrator, for query-focused tests.
func seedProject(t *testing.T, db *gorm.DB, name string, ownerID uint, createdAt time.Time) *model.Project {
	t.Helper()
	project := &model.Project{
		ID:         uuid.NewString(),
		Name:       name,
		PublicCode: fmt.Sprintf("pc-%d", atomic.AddInt64(&dbSeq, 1)),
		OwnerID:    ownerID,
		PinHash:    "digest",
		IsActive:   true,
		CreatedAt:  createdAt,
	}
	require.NoError(t, db.Create(project).Error)
	require.NoError(t, db.Create(&model.ProjectMember{
		ProjectID: project.ID,
		UserID:    ownerID,
		Role:      model.RoleRoot,
		JoinedAt:  createdAt,
		IsActive:  true,
	}).Error)
	return project
}

func addMember(t *testing.T, db *gorm.DB, projectID string, userID uint, role model.Role, joinedAt time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&model.ProjectMember{
		ProjectID: projectID,
		UserID:    userID,
		Role:      role,
		JoinedAt:  joinedAt,
		IsActive:  true,
	}).Error)
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), code+":"), "want code %s, got %q", code, err.Error())
}
