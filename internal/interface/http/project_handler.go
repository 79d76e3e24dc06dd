package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/devpad-api/internal/application"
	"github.com/oksasatya/devpad-api/internal/interface/middleware"
	"github.com/oksasatya/devpad-api/pkg/response"
	"github.com/oksasatya/devpad-api/pkg/validation"
)

// ProjectHandler covers CRUD on the caller's projects. Every operation
// that references an existing project resolves it first (404 on unknown
// ids) and then runs the ownership guard (403 for non-owners).
type ProjectHandler struct {
	Svc    *application.ProjectService
	Logger *logrus.Logger
}

func NewProjectHandler(svc *application.ProjectService, logger *logrus.Logger) *ProjectHandler {
	return &ProjectHandler{Svc: svc, Logger: logger}
}

type storeProjectRequest struct {
	Title string          `json:"title" binding:"required,max=255"`
	Code  json.RawMessage `json:"code"`
}

type updateProjectRequest struct {
	Title *string         `json:"title"`
	Code  json.RawMessage `json:"code"`
}

// Index GET /v1/projects
func (h *ProjectHandler) Index(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	projects, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("list projects failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Store POST /v1/projects
func (h *ProjectHandler) Store(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req storeProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.ToErrors(err))
		return
	}
	code, ferrs := normalizeCode(req.Code)
	if ferrs != nil {
		response.ValidationFailed(c, ferrs)
		return
	}

	p, err := h.Svc.Create(c.Request.Context(), uid, req.Title, code)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("create project failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Show GET /v1/projects/:id
func (h *ProjectHandler) Show(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	p, err := h.Svc.Get(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), id)
	if err != nil {
		h.respondError(c, err, "show project failed")
		return
	}
	c.JSON(http.StatusOK, p)
}

// Update PUT/PATCH /v1/projects/:id applies only the supplied fields.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.ToErrors(err))
		return
	}

	ferrs := response.FieldErrors{}
	if req.Title != nil {
		if *req.Title == "" {
			ferrs["title"] = append(ferrs["title"], "is required")
		} else if utf8.RuneCountInString(*req.Title) > 255 {
			ferrs["title"] = append(ferrs["title"], "must be at most 255 characters long")
		}
	}
	in := application.UpdateInput{Title: req.Title}
	if len(req.Code) > 0 {
		in.CodeSet = true
		switch {
		case validation.IsNull(req.Code):
			in.Code = nil // explicit null clears the payload
		case validation.IsStructured(req.Code):
			in.Code = req.Code
		default:
			ferrs["code"] = append(ferrs["code"], "must be an array or object")
		}
	}
	if len(ferrs) > 0 {
		response.ValidationFailed(c, ferrs)
		return
	}

	p, err := h.Svc.Update(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), id, in)
	if err != nil {
		h.respondError(c, err, "update project failed")
		return
	}
	c.JSON(http.StatusOK, p)
}

// Destroy DELETE /v1/projects/:id
func (h *ProjectHandler) Destroy(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), id); err != nil {
		h.respondError(c, err, "destroy project failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// projectID validates the path parameter. A malformed id can never
// match a row, so it is reported as 404 without touching the database.
func projectID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.NotFound(c)
		return "", false
	}
	return id, true
}

// normalizeCode validates the optional structured payload on store.
// An explicit null is treated the same as absent.
func normalizeCode(raw json.RawMessage) (json.RawMessage, response.FieldErrors) {
	if len(raw) == 0 || validation.IsNull(raw) {
		return nil, nil
	}
	if !validation.IsStructured(raw) {
		return nil, response.FieldErrors{"code": {"must be an array or object"}}
	}
	return raw, nil
}

func (h *ProjectHandler) respondError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, application.ErrProjectNotFound):
		response.NotFound(c)
	case errors.Is(err, application.ErrNotProjectOwner):
		response.NotAuthorized(c)
	default:
		h.Logger.WithError(err).Error(msg)
		response.ServerError(c)
	}
}
