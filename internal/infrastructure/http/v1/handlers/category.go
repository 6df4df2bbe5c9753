package handlers

import (
	"github.com/gin-gonic/gin"

	"nautica/internal/core/apperror"
	"nautica/internal/domain/catalog/category"
	"nautica/internal/infrastructure/http/v1/dto"
)

// CategoryHandler serves the kind-discriminated category catalogs. The
// kind (yacht, tour, club) comes from the route.
type CategoryHandler struct {
	*BaseHandler
	service *category.Service
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(base *BaseHandler, service *category.Service) *CategoryHandler {
	return &CategoryHandler{BaseHandler: base, service: service}
}

func (h *CategoryHandler) kind(c *gin.Context) (category.Kind, bool) {
	kind := category.Kind(c.Param("kind"))
	switch kind {
	case category.KindYacht, category.KindTour, category.KindClub:
		return kind, true
	}
	h.Error(c, apperror.NewValidation("invalid category kind").WithDetail("kind", c.Param("kind")))
	return "", false
}

// Create handles POST /categories/:kind.
func (h *CategoryHandler) Create(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cat := req.ToModel(kind)
	if err := h.service.Create(c.Request.Context(), cat); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, cat)
}

// List handles GET /categories/:kind.
func (h *CategoryHandler) List(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	items, err := h.service.List(c.Request.Context(), kind)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, items)
}

// Get handles GET /categories/:kind/:id.
func (h *CategoryHandler) Get(c *gin.Context) {
	if _, ok := h.kind(c); !ok {
		return
	}
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	cat, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, cat)
}

// Update handles PUT /categories/:kind/:id.
func (h *CategoryHandler) Update(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cat := req.ToModel(kind)
	cat.ID = id
	if err := h.service.Update(c.Request.Context(), cat); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, cat)
}

// Delete handles DELETE /categories/:kind/:id.
func (h *CategoryHandler) Delete(c *gin.Context) {
	if _, ok := h.kind(c); !ok {
		return
	}
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "category deleted successfully")
}
