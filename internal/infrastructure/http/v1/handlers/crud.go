package handlers

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"insural/internal/core/apperror"
	"insural/internal/core/entity"
	"insural/internal/core/id"
	"insural/internal/domain"
)

// CrudService is the service surface the generic handler needs. The
// concrete *domain.CrudService satisfies it; per-entity services override
// parts of it.
type CrudService[T entity.Persistable] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id id.ID) (T, error)
	Create(ctx context.Context, e T) (T, error)
	Update(ctx context.Context, e T) (T, error)
	Delete(ctx context.Context, id id.ID) error
}

var _ CrudService[entity.Persistable] = (*domain.CrudService[entity.Persistable])(nil)

// CrudHandler provides generic HTTP handlers for an entity collection.
type CrudHandler[T entity.Persistable, CreateDTO any, UpdateDTO any] struct {
	*BaseHandler
	service    CrudService[T]
	entityName string

	// Mapper functions
	mapCreateDTO func(dto CreateDTO) T
	mapUpdateDTO func(dto UpdateDTO, existing T) T
	mapToDTO     func(entity T) any
}

// CrudHandlerConfig configures the generic handler.
type CrudHandlerConfig[T entity.Persistable, CreateDTO any, UpdateDTO any] struct {
	Service    CrudService[T]
	EntityName string

	MapCreateDTO func(dto CreateDTO) T
	// MapUpdateDTO may be left nil by handlers that shadow Update with
	// their own flow; the generic Update then refuses to run.
	MapUpdateDTO func(dto UpdateDTO, existing T) T
	MapToDTO     func(entity T) any
}

// NewCrudHandler creates a new generic handler.
func NewCrudHandler[T entity.Persistable, CreateDTO any, UpdateDTO any](
	base *BaseHandler,
	cfg CrudHandlerConfig[T, CreateDTO, UpdateDTO],
) *CrudHandler[T, CreateDTO, UpdateDTO] {
	return &CrudHandler[T, CreateDTO, UpdateDTO]{
		BaseHandler:  base,
		service:      cfg.Service,
		entityName:   cfg.EntityName,
		mapCreateDTO: cfg.MapCreateDTO,
		mapUpdateDTO: cfg.MapUpdateDTO,
		mapToDTO:     cfg.MapToDTO,
	}
}

// List handles GET /{entity} - the full collection, oldest first.
func (h *CrudHandler[T, CreateDTO, UpdateDTO]) List(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := h.service.GetAll(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}

	dtos := make([]any, len(items))
	for i, item := range items {
		dtos[i] = h.mapToDTO(item)
	}

	h.OK(c, dtos)
}

// Get handles GET /{entity}/:id - get single entity.
func (h *CrudHandler[T, CreateDTO, UpdateDTO]) Get(c *gin.Context) {
	ctx := c.Request.Context()

	entityID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	e, err := h.service.GetByID(ctx, entityID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.mapToDTO(e))
}

// Create handles POST /{entity} - create new entity. The response carries
// the stored record including its assigned identifier.
func (h *CrudHandler[T, CreateDTO, UpdateDTO]) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	created, err := h.service.Create(ctx, h.mapCreateDTO(req))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.mapToDTO(created))
}

// Update handles PUT /{entity}/:id - partial update of existing entity.
func (h *CrudHandler[T, CreateDTO, UpdateDTO]) Update(c *gin.Context) {
	ctx := c.Request.Context()

	if h.mapUpdateDTO == nil {
		h.Error(c, apperror.NewInternal(fmt.Errorf("%s has no update mapping", h.entityName)))
		return
	}

	entityID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req UpdateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	existing, err := h.service.GetByID(ctx, entityID)
	if err != nil {
		h.Error(c, err)
		return
	}

	updated, err := h.service.Update(ctx, h.mapUpdateDTO(req, existing))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.mapToDTO(updated))
}

// Delete handles DELETE /{entity}/:id - remove entity.
func (h *CrudHandler[T, CreateDTO, UpdateDTO]) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	entityID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(ctx, entityID); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, h.entityName+" deleted")
}
