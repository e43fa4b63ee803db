package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/eventdesk/eventdesk/internal/api/handler/v1/response"
	"github.com/eventdesk/eventdesk/internal/domain"
	"github.com/eventdesk/eventdesk/internal/service"
)

var errMissingUsername = errors.New("username is required")

type UserService interface {
	Get(ctx context.Context, name string) (domain.User, error)
	List(ctx context.Context) []domain.User
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleListUsers godoc
// @Summary      List all known users
// @Tags         users
// @Produce      json
// @Success      200      {array}    domain.User
// @Router       /users [get]
func (h *UserHandler) HandleListUsers(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.List(ctx.Request.Context()))
}

// HandleGetUser godoc
// @Summary      Get a user by handle
// @Tags         users
// @Produce      json
// @Param        username  path      string true "user handle"
// @Success      200      {object}   domain.User
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /users/{username} [get]
func (h *UserHandler) HandleGetUser(ctx *gin.Context) {
	username := strings.TrimSpace(ctx.Param("username"))
	if username == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errMissingUsername))
		return
	}

	user, err := h.svc.Get(ctx.Request.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))
			return
		}

		err = fmt.Errorf("v1.HandleGetUser -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, user)
}
