package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ADI-2707/Web-App/internal/config"
	"github.com/ADI-2707/Web-App/internal/model"
	"github.com/ADI-2707/Web-App/internal/pagination"
	"github.com/ADI-2707/Web-App/pkg/hash"
	"github.com/ADI-2707/Web-App/pkg/secret"
	"github.com/google/uuid"
	"github.com/teris-io/shortid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxInvitedMembers = 3

// searchResultCap bounds the unordered single-page search response.
const searchResultCap = 10

type ProjectService struct {
	db       *gorm.DB
	guard    *PINGuard
	log      *zap.SugaredLogger
	security config.SecurityConfig
}

func NewProjectService(db *gorm.DB, guard *PINGuard, log *zap.SugaredLogger, security config.SecurityConfig) *ProjectService {
	return &ProjectService{db: db, guard: guard, log: log, security: security}
}

type InviteInput struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"`
}

// CreateResult carries the plaintext PIN and access key exactly once.
// Nothing here is retained after the response is written.
type CreateResult struct {
	Project   *model.Project
	PIN       string
	AccessKey string
	Skipped   []string
}

// Create mints a project, its root membership, and best-effort invited
// memberships in a single transaction. Unknown invite emails are skipped
// unless strict invites are configured; the creator is never duplicated.
func (s *ProjectService) Create(ownerID uint, name string, invites []InviteInput) (*CreateResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("40001:project name is required")
	}
	if len(invites) > maxInvitedMembers {
		return nil, fmt.Errorf("40002:maximum %d members allowed during creation", maxInvitedMembers)
	}
	if s.security.RequireAdminInvite {
		admins := 0
		for _, inv := range invites {
			if model.Role(inv.Role) == model.RoleAdmin {
				admins++
			}
		}
		if admins < 1 {
			return nil, fmt.Errorf("40003:at least one admin required")
		}
	}

	pin, err := secret.GeneratePIN(s.security.PINLength)
	if err != nil {
		return nil, err
	}
	accessKey, err := secret.NewAccessKey()
	if err != nil {
		return nil, err
	}
	pinHash, err := hash.Make(pin)
	if err != nil {
		return nil, err
	}
	keyHash, err := hash.Make(accessKey)
	if err != nil {
		return nil, err
	}
	code, err := shortid.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate public code: %w", err)
	}

	project := &model.Project{
		ID:            uuid.NewString(),
		Name:          name,
		PublicCode:    code,
		OwnerID:       ownerID,
		PinHash:       pinHash,
		AccessKeyHash: keyHash,
		IsActive:      true,
	}

	var skipped []string
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		if err := tx.Create(&model.ProjectMember{
			ProjectID: project.ID,
			UserID:    ownerID,
			Role:      model.RoleRoot,
			IsActive:  true,
		}).Error; err != nil {
			return err
		}

		seen := map[string]bool{}
		for _, inv := range invites {
			email := strings.ToLower(strings.TrimSpace(inv.Email))
			if email == "" || seen[email] {
				continue
			}
			seen[email] = true

			var user model.User
			if err := tx.Where("email = ?", email).First(&user).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					if s.security.StrictInvites {
						return fmt.Errorf("40004:no registered user for %s", email)
					}
					skipped = append(skipped, email)
					continue
				}
				return err
			}
			if user.ID == ownerID {
				continue
			}

			role := model.RoleUser
			if model.Role(inv.Role) == model.RoleAdmin {
				role = model.RoleAdmin
			}
			if err := tx.Create(&model.ProjectMember{
				ProjectID: project.ID,
				UserID:    user.ID,
				Role:      role,
				IsActive:  true,
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Infow("project created",
		"project_id", project.ID,
		"owner_id", ownerID,
		"invited", len(invites)-len(skipped),
		"skipped", len(skipped),
	)

	return &CreateResult{
		Project:   project,
		PIN:       pin,
		AccessKey: accessKey,
		Skipped:   skipped,
	}, nil
}

// Owned lists projects where the requester is the root owner, newest first.
// Role is axiomatic here; no resolver call is needed.
func (s *ProjectService) Owned(userID uint, cursor *time.Time, limit int) (pagination.Page[model.Project], error) {
	q := s.db.Where("owner_id = ? AND is_active = ?", userID, true)
	if cursor != nil {
		q = q.Where("created_at < ?", *cursor)
	}
	var rows []model.Project
	if err := q.Order("created_at DESC").Limit(limit + 1).Find(&rows).Error; err != nil {
		return pagination.Page[model.Project]{}, err
	}
	return pagination.Slice(rows, limit, func(p model.Project) time.Time { return p.CreatedAt }), nil
}

// Joined lists active non-root memberships ordered by join time.
func (s *ProjectService) Joined(userID uint, cursor *time.Time, limit int) (pagination.Page[model.ProjectMember], error) {
	q := s.db.Where("user_id = ? AND role <> ? AND is_active = ?", userID, model.RoleRoot, true)
	if cursor != nil {
		q = q.Where("joined_at < ?", *cursor)
	}
	var rows []model.ProjectMember
	err := q.Order("joined_at DESC").
		Limit(limit + 1).
		Find(&rows).Error
	if err != nil {
		return pagination.Page[model.ProjectMember]{}, err
	}
	return pagination.Slice(rows, limit, func(m model.ProjectMember) time.Time { return m.JoinedAt }), nil
}

// ProjectsFor loads the project rows behind a page of memberships so
// handlers can surface role and join time alongside project fields.
func (s *ProjectService) ProjectsFor(members []model.ProjectMember) (map[string]model.Project, error) {
	if len(members) == 0 {
		return map[string]model.Project{}, nil
	}
	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ProjectID)
	}
	var projects []model.Project
	if err := s.db.Preload("Owner").Where("id IN ?", ids).Find(&projects).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]model.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}
	return byID, nil
}

type SearchResult struct {
	Project model.Project
	Access  Access
}

// Search matches name or public code case-insensitively over the union of
// owned and joined projects. An empty query returns an empty result without
// touching the store. Single page, capped, unordered.
func (s *ProjectService) Search(userID uint, query string) ([]SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []SearchResult{}, nil
	}
	pattern := "%" + strings.ToLower(query) + "%"

	var rows []model.Project
	err := s.db.
		Where("is_active = ?", true).
		Where("LOWER(name) LIKE ? OR LOWER(public_code) LIKE ?", pattern, pattern).
		Where("owner_id = ? OR id IN (SELECT project_id FROM project_members WHERE user_id = ? AND is_active = ?)",
			userID, userID, true).
		Limit(searchResultCap).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(rows))
	for i := range rows {
		access, err := resolveAccess(s.db, &rows[i], userID)
		if err != nil {
			if errors.Is(err, ErrAccessDenied) {
				continue
			}
			return nil, err
		}
		results = append(results, SearchResult{Project: rows[i], Access: access})
	}
	return results, nil
}

// Overview resolves a single project for the requester. A missing row is a
// 404; an unresolvable membership is a 403.
func (s *ProjectService) Overview(projectID string, userID uint) (*model.Project, Access, error) {
	var project model.Project
	if err := s.db.First(&project, "id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, Access{}, fmt.Errorf("40402:project not found")
		}
		return nil, Access{}, err
	}
	access, err := resolveAccess(s.db, &project, userID)
	if err != nil {
		return nil, Access{}, err
	}
	return &project, access, nil
}

// VerifyPIN checks a member-supplied PIN against the stored digest,
// rate-limited per (project, user).
func (s *ProjectService) VerifyPIN(ctx context.Context, projectID string, userID uint, pin string) error {
	project, _, err := s.Overview(projectID, userID)
	if err != nil {
		return err
	}

	if s.guard != nil && !s.guard.Allow(ctx, projectID, userID) {
		return fmt.Errorf("42901:too many PIN attempts, try again later")
	}
	if !hash.Check(pin, project.PinHash) {
		if s.guard != nil {
			s.guard.RecordFailure(ctx, projectID, userID)
		}
		return fmt.Errorf("40005:invalid PIN")
	}
	if s.guard != nil {
		s.guard.Reset(ctx, projectID, userID)
	}
	return nil
}
