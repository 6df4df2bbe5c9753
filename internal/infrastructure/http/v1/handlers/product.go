package handlers

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/gin-gonic/gin"

	"nautica/internal/core/apperror"
	"nautica/internal/domain/catalog/media"
	"nautica/internal/infrastructure/http/v1/dto"
)

// ProductService is the shape shared by the yacht, tour and club services.
type ProductService[E any] interface {
	Create(ctx context.Context, e E) error
	GetByID(ctx context.Context, id int64) (E, error)
	List(ctx context.Context) ([]E, error)
	Update(ctx context.Context, e E) error
	Delete(ctx context.Context, id int64) error

	AddImage(ctx context.Context, ownerID int64, name, contentType string, data []byte) (*media.Image, error)
	RemoveImage(ctx context.Context, imageID int64) error
	AddCharacteristic(ctx context.Context, ownerID int64, name string) (*media.Characteristic, error)
	RemoveCharacteristic(ctx context.Context, characteristicID int64) error
}

// ProductHandlerConfig wires one catalog family into the generic handler.
type ProductHandlerConfig[E any, CreateReq any] struct {
	Service    ProductService[E]
	EntityName string

	// MapCreateDTO converts a bound request into the domain entity.
	MapCreateDTO func(req CreateReq) E

	// SetID stamps the path id onto the entity before a full update.
	SetID func(e E, id int64)
}

// ProductHandler provides CRUD plus nested image/characteristic endpoints
// for one catalog family.
type ProductHandler[E any, CreateReq any] struct {
	*BaseHandler
	cfg ProductHandlerConfig[E, CreateReq]
}

// NewProductHandler creates a configured catalog handler.
func NewProductHandler[E any, CreateReq any](base *BaseHandler, cfg ProductHandlerConfig[E, CreateReq]) *ProductHandler[E, CreateReq] {
	return &ProductHandler[E, CreateReq]{BaseHandler: base, cfg: cfg}
}

// Create handles POST /<entity>.
func (h *ProductHandler[E, CreateReq]) Create(c *gin.Context) {
	var req CreateReq
	if !h.BindJSON(c, &req) {
		return
	}

	entity := h.cfg.MapCreateDTO(req)
	if err := h.cfg.Service.Create(c.Request.Context(), entity); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, entity)
}

// List handles GET /<entity>.
func (h *ProductHandler[E, CreateReq]) List(c *gin.Context) {
	items, err := h.cfg.Service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, items)
}

// Get handles GET /<entity>/:id.
func (h *ProductHandler[E, CreateReq]) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	entity, err := h.cfg.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, entity)
}

// Update handles PUT /<entity>/:id as a full replace.
func (h *ProductHandler[E, CreateReq]) Update(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req CreateReq
	if !h.BindJSON(c, &req) {
		return
	}

	entity := h.cfg.MapCreateDTO(req)
	h.cfg.SetID(entity, id)
	if err := h.cfg.Service.Update(c.Request.Context(), entity); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, entity)
}

// Delete handles DELETE /<entity>/:id.
func (h *ProductHandler[E, CreateReq]) Delete(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.cfg.Service.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, h.cfg.EntityName+" deleted successfully")
}

// AddImage handles POST /<entity>/:id/images with a base64 payload.
func (h *ProductHandler[E, CreateReq]) AddImage(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AddImageRequest
	if !h.BindJSON(c, &req) {
		return
	}

	data, contentType, err := decodeImagePayload(req)
	if err != nil {
		h.Error(c, err)
		return
	}

	img, err := h.cfg.Service.AddImage(c.Request.Context(), id, req.FileName, contentType, data)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, img)
}

// RemoveImage handles DELETE /<entity>/:id/images/:imageId.
func (h *ProductHandler[E, CreateReq]) RemoveImage(c *gin.Context) {
	imageID, ok := h.ParseIDParam(c, "imageId")
	if !ok {
		return
	}

	if err := h.cfg.Service.RemoveImage(c.Request.Context(), imageID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// AddCharacteristic handles POST /<entity>/:id/characteristics.
func (h *ProductHandler[E, CreateReq]) AddCharacteristic(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AddCharacteristicRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ch, err := h.cfg.Service.AddCharacteristic(c.Request.Context(), id, req.Name)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, ch)
}

// RemoveCharacteristic handles DELETE /<entity>/:id/characteristics/:characteristicId.
func (h *ProductHandler[E, CreateReq]) RemoveCharacteristic(c *gin.Context) {
	characteristicID, ok := h.ParseIDParam(c, "characteristicId")
	if !ok {
		return
	}

	if err := h.cfg.Service.RemoveCharacteristic(c.Request.Context(), characteristicID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// decodeImagePayload accepts raw base64 or a data URL and returns the
// bytes plus the effective content type.
func decodeImagePayload(req dto.AddImageRequest) ([]byte, string, error) {
	payload := req.Data
	contentType := req.ContentType

	if strings.HasPrefix(payload, "data:") {
		sep := strings.Index(payload, ",")
		if sep < 0 {
			return nil, "", apperror.NewValidation("malformed data URL")
		}
		meta := payload[len("data:"):sep]
		payload = payload[sep+1:]
		if contentType == "" {
			contentType = strings.TrimSuffix(meta, ";base64")
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", apperror.NewValidation("invalid base64 image data").WithCause(err)
	}
	return data, contentType, nil
}
