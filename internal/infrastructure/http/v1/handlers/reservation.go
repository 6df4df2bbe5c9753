package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nautica/internal/core/apperror"
	"nautica/internal/domain/reservation"
	"nautica/internal/infrastructure/http/v1/dto"
)

// ReservationHandler handles booking endpoints.
type ReservationHandler struct {
	*BaseHandler
	service *reservation.Service
}

// NewReservationHandler creates a new reservation handler.
func NewReservationHandler(base *BaseHandler, service *reservation.Service) *ReservationHandler {
	return &ReservationHandler{BaseHandler: base, service: service}
}

// Create handles POST /reservations. The response carries the public
// folio number assigned to the booking.
func (h *ReservationHandler) Create(c *gin.Context) {
	var req dto.CreateReservationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	r, err := req.ToModel()
	if err != nil {
		h.Error(c, err)
		return
	}

	// An authenticated caller always books as themselves.
	if userID := h.GetUserID(c); userID > 0 {
		r.UserID = userID
	}

	created, err := h.service.Create(c.Request.Context(), r)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":    created.Reservation,
		"status":  "success",
		"message": "Reservation created successfully",
		"folio":   created.Folio,
	})
}

// List handles GET /reservations, newest first.
func (h *ReservationHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, items)
}

// Get handles GET /reservations/:id.
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	r, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, r)
}

// ByProduct handles GET /reservations/product/:productId?type=. The
// type query parameter names the catalog the id belongs to.
func (h *ReservationHandler) ByProduct(c *gin.Context) {
	productID, ok := h.ParseIDParam(c, "productId")
	if !ok {
		return
	}

	items, err := h.service.FindByProduct(c.Request.Context(), productID, reservation.ProductType(c.Query("type")))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, items)
}

// ByStatus handles GET /reservations/status/:status.
func (h *ReservationHandler) ByStatus(c *gin.Context) {
	items, err := h.service.FindByStatus(c.Request.Context(), reservation.Status(c.Param("status")))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, items)
}

// ByEmail handles GET /reservations/email/:email.
func (h *ReservationHandler) ByEmail(c *gin.Context) {
	items, err := h.service.FindByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, items)
}

// ByFolio handles GET /reservations/folio/:folio. The parameter is
// the composite public number, e.g. 125 for the first folio of 2025.
func (h *ReservationHandler) ByFolio(c *gin.Context) {
	composite, err := strconv.ParseInt(c.Param("folio"), 10, 64)
	if err != nil || composite <= 0 {
		h.Error(c, apperror.NewValidation("invalid folio number").WithDetail("folio", c.Param("folio")))
		return
	}

	details, err := h.service.FindByFolio(c.Request.Context(), composite)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, details)
}

// Update handles PATCH /reservations/:id.
func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateReservationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	r, err := h.service.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, r)
}

// Delete handles DELETE /reservations/:id.
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "Reservation deleted successfully")
}
