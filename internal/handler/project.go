package handler

import (
	"github.com/ADI-2707/Web-App/internal/middleware"
	"github.com/ADI-2707/Web-App/internal/pagination"
	"github.com/ADI-2707/Web-App/internal/service"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectService *service.ProjectService
}

func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// POST /projects
//
// The pin and access_key fields below are the only place the plaintext
// secrets ever appear.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req struct {
		Name    string                `json:"name"`
		Members []service.InviteInput `json:"members"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	userID := middleware.GetCurrentUserID(c)
	result, err := h.projectService.Create(userID, req.Name, req.Members)
	if err != nil {
		ReplyError(c, err)
		return
	}

	Created(c, gin.H{
		"project": gin.H{
			"id":          result.Project.ID,
			"name":        result.Project.Name,
			"public_code": result.Project.PublicCode,
			"created_at":  result.Project.CreatedAt,
		},
		"pin":            result.PIN,
		"access_key":     result.AccessKey,
		"skipped_emails": result.Skipped,
	})
}

// GET /projects/owned
func (h *ProjectHandler) Owned(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	cursor, err := pagination.ParseCursor(c.Query("cursor"))
	if err != nil {
		BadRequest(c, 40001, "invalid cursor")
		return
	}
	limit := pagination.ParseLimit(c.Query("limit"))

	page, err := h.projectService.Owned(userID, cursor, limit)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	list := make([]gin.H, 0, len(page.Items))
	for _, p := range page.Items {
		list = append(list, gin.H{
			"id":          p.ID,
			"name":        p.Name,
			"public_code": p.PublicCode,
			"created_at":  p.CreatedAt,
			"role":        "admin", // root owner always sees an admin-level role
			"is_owner":    true,
		})
	}
	Success(c, pagedBody(list, page.HasMore, pagination.FormatCursor(page.NextCursor)))
}

// GET /projects/joined
func (h *ProjectHandler) Joined(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	cursor, err := pagination.ParseCursor(c.Query("cursor"))
	if err != nil {
		BadRequest(c, 40001, "invalid cursor")
		return
	}
	limit := pagination.ParseLimit(c.Query("limit"))

	page, err := h.projectService.Joined(userID, cursor, limit)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	projects, err := h.projectService.ProjectsFor(page.Items)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	list := make([]gin.H, 0, len(page.Items))
	for _, m := range page.Items {
		p, ok := projects[m.ProjectID]
		if !ok {
			continue
		}
		item := gin.H{
			"id":          p.ID,
			"name":        p.Name,
			"public_code": p.PublicCode,
			"role":        m.Role.Display(),
			"is_owner":    false,
			"joined_at":   m.JoinedAt,
		}
		if p.Owner != nil {
			item["root_admin"] = p.Owner.Brief()
		}
		list = append(list, item)
	}
	Success(c, pagedBody(list, page.HasMore, pagination.FormatCursor(page.NextCursor)))
}

// GET /projects/search
func (h *ProjectHandler) Search(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	results, err := h.projectService.Search(userID, c.Query("q"))
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	list := make([]gin.H, 0, len(results))
	for _, r := range results {
		list = append(list, gin.H{
			"id":          r.Project.ID,
			"name":        r.Project.Name,
			"public_code": r.Project.PublicCode,
			"created_at":  r.Project.CreatedAt,
			"role":        r.Access.Role.Display(),
			"is_owner":    r.Access.IsOwner,
		})
	}
	Success(c, gin.H{"results": list})
}

// GET /projects/:id
func (h *ProjectHandler) Overview(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	project, access, err := h.projectService.Overview(c.Param("id"), userID)
	if err != nil {
		ReplyError(c, err)
		return
	}

	Success(c, gin.H{
		"id":          project.ID,
		"name":        project.Name,
		"public_code": project.PublicCode,
		"created_at":  project.CreatedAt,
		"role":        access.Role,
		"is_owner":    access.IsOwner,
	})
}

// POST /projects/:id/verify-pin
func (h *ProjectHandler) VerifyPIN(c *gin.Context) {
	var req struct {
		PIN string `json:"pin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	userID := middleware.GetCurrentUserID(c)
	if err := h.projectService.VerifyPIN(c.Request.Context(), c.Param("id"), userID, req.PIN); err != nil {
		ReplyError(c, err)
		return
	}
	Success(c, gin.H{"valid": true})
}

func pagedBody(list []gin.H, hasMore bool, nextCursor string) gin.H {
	body := gin.H{
		"results":     list,
		"has_more":    hasMore,
		"next_cursor": nil,
	}
	if nextCursor != "" {
		body["next_cursor"] = nextCursor
	}
	return body
}
