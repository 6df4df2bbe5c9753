package handlers

import (
	"github.com/gin-gonic/gin"

	"nautica/internal/domain/auth"
	"nautica/internal/infrastructure/http/v1/dto"
)

// AuthHandler serves registration, login and user administration.
type AuthHandler struct {
	*BaseHandler
	service *auth.Service
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(base *BaseHandler, service *auth.Service) *AuthHandler {
	return &AuthHandler{BaseHandler: base, service: service}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindJSON(c, &req) {
		return
	}

	u := &auth.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	session, err := h.service.Register(c.Request.Context(), u, req.Password)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, session)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	session, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, session)
}

// Me handles GET /auth/me for the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.service.Get(c.Request.Context(), h.GetUserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, u)
}

// List handles GET /users.
func (h *AuthHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, users)
}

// Get handles GET /users/:id.
func (h *AuthHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	u, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, u)
}

// UpdateRole handles PATCH /users/:id/role.
func (h *AuthHandler) UpdateRole(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateRoleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	u, err := h.service.UpdateRole(c.Request.Context(), id, req.Role)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, u)
}

// Delete handles DELETE /users/:id.
func (h *AuthHandler) Delete(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "user deleted successfully")
}
