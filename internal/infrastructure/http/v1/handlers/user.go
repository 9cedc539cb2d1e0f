package handlers

import (
	"github.com/gin-gonic/gin"

	"insural/internal/core/apperror"
	"insural/internal/core/id"
	"insural/internal/domain/user"
	"insural/internal/infrastructure/http/v1/dto"
)

// UserHandler handles account and authentication endpoints. The generic
// collection endpoints are embedded; login, registration and the
// authenticated profile are specific to accounts.
type UserHandler struct {
	*CrudHandler[*user.User, dto.RegisterUserRequest, dto.UpdateUserRequest]
	service *user.Service
}

// NewUserHandler creates a new user handler.
func NewUserHandler(base *BaseHandler, service *user.Service) *UserHandler {
	return &UserHandler{
		CrudHandler: NewCrudHandler(base, CrudHandlerConfig[*user.User, dto.RegisterUserRequest, dto.UpdateUserRequest]{
			Service:    service,
			EntityName: "user",
			// Create is overridden by Register; the generic mapper never runs.
			MapCreateDTO: func(req dto.RegisterUserRequest) *user.User {
				return req.ToEntity()
			},
			MapUpdateDTO: func(req dto.UpdateUserRequest, existing *user.User) *user.User {
				req.ApplyTo(existing)
				return existing
			},
			MapToDTO: func(u *user.User) any {
				return dto.FromUser(u)
			},
		}),
		service: service,
	}
}

// Login handles GET /user?email=&password= - credential check returning a
// session token. Unknown email and wrong password produce the identical
// failure.
func (h *UserHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LoginRequest
	if !h.BindQuery(c, &req) {
		return
	}

	token, _, err := h.service.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.LoginResponse{Token: token})
}

// Register handles POST /users - create an account.
func (h *UserHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RegisterUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	created, err := h.service.Register(ctx, req.ToEntity(), req.Password)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromUser(created))
}

// Me handles GET /users/me - the authenticated account.
func (h *UserHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	userID := h.GetUserID(c)
	if userID == "" {
		h.Error(c, apperror.NewUnauthorized("authentication required"))
		return
	}

	uid, err := id.Parse(userID)
	if err != nil {
		h.Error(c, apperror.NewUnauthorized("malformed token subject"))
		return
	}

	u, err := h.service.GetByID(ctx, uid)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromUser(u))
}
