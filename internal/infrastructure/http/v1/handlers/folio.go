package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"nautica/internal/core/apperror"
	"nautica/internal/domain/folio"
	"nautica/internal/domain/reservation"
)

// FolioHandler exposes issued receipt numbers. Lookups go through the
// reservation service so a folio comes back with its bookings attached.
type FolioHandler struct {
	*BaseHandler
	folios       *folio.Service
	reservations *reservation.Service
}

// NewFolioHandler creates a new folio handler.
func NewFolioHandler(base *BaseHandler, folios *folio.Service, reservations *reservation.Service) *FolioHandler {
	return &FolioHandler{BaseHandler: base, folios: folios, reservations: reservations}
}

// Generate handles GET /folio/generate. It mints a fresh folio for the
// current year; the number is burned even if the caller never attaches
// a reservation to it.
func (h *FolioHandler) Generate(c *gin.Context) {
	issued, err := h.folios.Generate(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, issued)
}

// Get handles GET /folio/:folio. The path parameter is the composite
// public number. Repeating the call never mints a new folio.
func (h *FolioHandler) Get(c *gin.Context) {
	composite, err := strconv.ParseInt(c.Param("folio"), 10, 64)
	if err != nil || composite <= 0 {
		h.Error(c, apperror.NewValidation("invalid folio number").WithDetail("folio", c.Param("folio")))
		return
	}

	details, err := h.reservations.FindByFolio(c.Request.Context(), composite)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, details)
}
