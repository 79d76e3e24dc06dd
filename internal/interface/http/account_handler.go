package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/devpad-api/internal/application"
	"github.com/oksasatya/devpad-api/internal/interface/middleware"
	"github.com/oksasatya/devpad-api/pkg/response"
	"github.com/oksasatya/devpad-api/pkg/validation"
)

// AccountHandler covers registration, login, logout and the caller's
// own profile.
type AccountHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAccountHandler(svc *application.AuthService, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name                 string `json:"name" binding:"required,max=255"`
	Email                string `json:"email" binding:"required,email"`
	Username             string `json:"username" binding:"required,username"`
	Password             string `json:"password" binding:"required,pwd"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password"`
}

type loginRequest struct {
	Identity string `json:"identity" binding:"required,identity"`
	Password string `json:"password" binding:"required"`
}

// Register POST /v1/register
func (h *AccountHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ferrs := validation.ToErrors(err)
		// A malformed payload cannot be checked further, but fields
		// that did bind still get the uniqueness checks so one
		// response names every violated field.
		if _, malformed := ferrs["payload"]; !malformed {
			conflicts, cerr := h.Svc.Conflicts(c.Request.Context(), req.Email, req.Username)
			if cerr != nil {
				h.Logger.WithError(cerr).Error("register failed")
				response.ServerError(c)
				return
			}
			for field, msgs := range conflicts {
				ferrs[field] = append(ferrs[field], msgs...)
			}
		}
		response.ValidationFailed(c, ferrs)
		return
	}

	u, tok, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		var ferrs application.FieldErrors
		if errors.As(err, &ferrs) {
			response.ValidationFailed(c, response.FieldErrors(ferrs))
			return
		}
		h.Logger.WithError(err).Error("register failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": tok, "user": u})
}

// Login POST /v1/login
func (h *AccountHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.ToErrors(err))
		return
	}

	u, tok, err := h.Svc.Login(c.Request.Context(), req.Identity, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.ValidationFailed(c, response.FieldErrors{
				"credentials": {"The provided credentials are incorrect."},
			})
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tok, "user": u})
}

// Logout POST /v1/logout revokes the token used for this request.
func (h *AccountHandler) Logout(c *gin.Context) {
	tok := c.GetString(middleware.CtxTokenKey)
	if err := h.Svc.Logout(c.Request.Context(), tok); err != nil {
		h.Logger.WithError(err).Error("logout failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me GET /v1/user
func (h *AccountHandler) Me(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.NotFound(c)
			return
		}
		h.Logger.WithError(err).WithField("user_id", uid).Error("get profile failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, u)
}
