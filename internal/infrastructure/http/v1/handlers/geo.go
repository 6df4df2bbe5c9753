package handlers

import (
	"github.com/gin-gonic/gin"

	"nautica/internal/domain/geo"
	"nautica/internal/infrastructure/http/v1/dto"
)

// GeoHandler serves the state / municipality / locality taxonomy.
type GeoHandler struct {
	*BaseHandler
	service *geo.Service
}

// NewGeoHandler creates a new geography handler.
func NewGeoHandler(base *BaseHandler, service *geo.Service) *GeoHandler {
	return &GeoHandler{BaseHandler: base, service: service}
}

// CreateState handles POST /states.
func (h *GeoHandler) CreateState(c *gin.Context) {
	var req dto.CreateStateRequest
	if !h.BindJSON(c, &req) {
		return
	}

	st := &geo.State{Name: req.Name}
	if err := h.service.CreateState(c.Request.Context(), st); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, st)
}

// ListStates handles GET /states.
func (h *GeoHandler) ListStates(c *gin.Context) {
	items, err := h.service.ListStates(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, items)
}

// GetState handles GET /states/:id.
func (h *GeoHandler) GetState(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	st, err := h.service.GetState(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, st)
}

// UpdateState handles PUT /states/:id.
func (h *GeoHandler) UpdateState(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateStateRequest
	if !h.BindJSON(c, &req) {
		return
	}

	st := &geo.State{ID: id, Name: req.Name}
	if err := h.service.UpdateState(c.Request.Context(), st); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, st)
}

// DeleteState handles DELETE /states/:id.
func (h *GeoHandler) DeleteState(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteState(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "state deleted successfully")
}

// CreateMunicipality handles POST /municipalities.
func (h *GeoHandler) CreateMunicipality(c *gin.Context) {
	var req dto.CreateMunicipalityRequest
	if !h.BindJSON(c, &req) {
		return
	}

	m := &geo.Municipality{Name: req.Name, StateID: req.StateID}
	if err := h.service.CreateMunicipality(c.Request.Context(), m); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, m)
}

// ListMunicipalities handles GET /municipalities. An optional
// stateId query parameter narrows the listing to one state.
func (h *GeoHandler) ListMunicipalities(c *gin.Context) {
	stateID := h.ParseIntQuery(c, "stateId", 0)

	items, err := h.service.ListMunicipalities(c.Request.Context(), int64(stateID))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, items)
}

// GetMunicipality handles GET /municipalities/:id.
func (h *GeoHandler) GetMunicipality(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	m, err := h.service.GetMunicipality(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, m)
}

// UpdateMunicipality handles PUT /municipalities/:id.
func (h *GeoHandler) UpdateMunicipality(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateMunicipalityRequest
	if !h.BindJSON(c, &req) {
		return
	}

	m := &geo.Municipality{ID: id, Name: req.Name, StateID: req.StateID}
	if err := h.service.UpdateMunicipality(c.Request.Context(), m); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, m)
}

// DeleteMunicipality handles DELETE /municipalities/:id.
func (h *GeoHandler) DeleteMunicipality(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteMunicipality(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "municipality deleted successfully")
}

// CreateLocality handles POST /localities.
func (h *GeoHandler) CreateLocality(c *gin.Context) {
	var req dto.CreateLocalityRequest
	if !h.BindJSON(c, &req) {
		return
	}

	l := &geo.Locality{Name: req.Name, MunicipalityID: req.MunicipalityID}
	if err := h.service.CreateLocality(c.Request.Context(), l); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, l)
}

// ListLocalities handles GET /localities. An optional
// municipalityId query parameter narrows the listing.
func (h *GeoHandler) ListLocalities(c *gin.Context) {
	municipalityID := h.ParseIntQuery(c, "municipalityId", 0)

	items, err := h.service.ListLocalities(c.Request.Context(), int64(municipalityID))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, items)
}

// GetLocality handles GET /localities/:id.
func (h *GeoHandler) GetLocality(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	l, err := h.service.GetLocality(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, l)
}

// UpdateLocality handles PUT /localities/:id.
func (h *GeoHandler) UpdateLocality(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateLocalityRequest
	if !h.BindJSON(c, &req) {
		return
	}

	l := &geo.Locality{ID: id, Name: req.Name, MunicipalityID: req.MunicipalityID}
	if err := h.service.UpdateLocality(c.Request.Context(), l); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, l)
}

// DeleteLocality handles DELETE /localities/:id.
func (h *GeoHandler) DeleteLocality(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteLocality(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "locality deleted successfully")
}
