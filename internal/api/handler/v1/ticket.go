package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eventdesk/eventdesk/internal/api/handler/v1/request"
	"github.com/eventdesk/eventdesk/internal/api/handler/v1/response"
	"github.com/eventdesk/eventdesk/internal/domain"
	"github.com/eventdesk/eventdesk/internal/service"
)

var errInvalidTicketID = errors.New("invalid ticket id")

type TicketService interface {
	Create(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error)
	Get(ctx context.Context, id int) (domain.Ticket, error)
	ListByEvent(ctx context.Context, eventID int) []domain.Ticket
	Update(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) []domain.Ticket
}

type TicketHandler struct {
	svc TicketService
}

func NewTicketHandler(svc TicketService) *TicketHandler {
	return &TicketHandler{
		svc: svc,
	}
}

func ticketIDParam(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("ticketID"))
	if err != nil || id < 1 {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidTicketID))
		return 0, false
	}
	return id, true
}

// HandleListTickets godoc
// @Summary      List all tickets
// @Tags         tickets
// @Produce      json
// @Success      200      {array}    domain.Ticket
// @Router       /tickets [get]
func (h *TicketHandler) HandleListTickets(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.List(ctx.Request.Context()))
}

// HandleListEventTickets godoc
// @Summary      List an event's tickets
// @Tags         tickets
// @Produce      json
// @Param        eventID   path      int true "event ID"
// @Success      200      {array}    domain.Ticket
// @Failure      400      {object}   response.Err
// @Router       /events/{eventID}/tickets [get]
func (h *TicketHandler) HandleListEventTickets(ctx *gin.Context) {
	eventID, ok := eventIDParam(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, h.svc.ListByEvent(ctx.Request.Context(), eventID))
}

// HandleCreateTicket godoc
// @Summary      Create a ticket
// @Tags         tickets
// @Produce      json
// @Param        request   body      request.TicketRequest true "request body"
// @Success      201      {object}   domain.Ticket
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /tickets [post]
func (h *TicketHandler) HandleCreateTicket(ctx *gin.Context) {
	var req request.TicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.Create(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateTicket -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleGetTicket godoc
// @Summary      Get a ticket by ID
// @Tags         tickets
// @Produce      json
// @Param        ticketID  path      int true "ticket ID"
// @Success      200      {object}   domain.Ticket
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /tickets/{ticketID} [get]
func (h *TicketHandler) HandleGetTicket(ctx *gin.Context) {
	id, ok := ticketIDParam(ctx)
	if !ok {
		return
	}

	ticket, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))
			return
		}

		err = fmt.Errorf("v1.HandleGetTicket -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, ticket)
}

// HandleUpdateTicket godoc
// @Summary      Replace a ticket
// @Tags         tickets
// @Produce      json
// @Param        ticketID  path      int true "ticket ID"
// @Param        request   body      request.TicketRequest true "request body"
// @Success      200      {object}   domain.Ticket
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /tickets/{ticketID} [put]
func (h *TicketHandler) HandleUpdateTicket(ctx *gin.Context) {
	id, ok := ticketIDParam(ctx)
	if !ok {
		return
	}

	var req request.TicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ticket := req.ToDomain()
	ticket.ID = id

	updated, err := h.svc.Update(ctx.Request.Context(), ticket)
	if err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateTicket -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteTicket godoc
// @Summary      Delete a ticket
// @Tags         tickets
// @Produce      json
// @Param        ticketID  path      int true "ticket ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /tickets/{ticketID} [delete]
func (h *TicketHandler) HandleDeleteTicket(ctx *gin.Context) {
	id, ok := ticketIDParam(ctx)
	if !ok {
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteTicket -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
