package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/eventdesk/eventdesk/internal/api/handler/v1/request"
	"github.com/eventdesk/eventdesk/internal/api/handler/v1/response"
	"github.com/eventdesk/eventdesk/internal/domain"
	"github.com/eventdesk/eventdesk/internal/service"
)

var (
	errMissingParticipantName = errors.New("first_name and last_name are required")
	errMissingOrganizerName   = errors.New("organizer username is required")
)

type RosterService interface {
	AddParticipant(ctx context.Context, eventID int, participant domain.Participant) error
	RemoveParticipant(ctx context.Context, eventID int, firstName, lastName string) error
	AddOrganizer(ctx context.Context, eventID int, organizer domain.Organizer) error
	RemoveOrganizer(ctx context.Context, eventID int, username string) error
	Participants(ctx context.Context, eventID int) ([]domain.Participant, error)
	Organizers(ctx context.Context, eventID int) ([]domain.Organizer, error)
}

type RosterHandler struct {
	svc RosterService
}

func NewRosterHandler(svc RosterService) *RosterHandler {
	return &RosterHandler{
		svc: svc,
	}
}

// HandleListParticipants godoc
// @Summary      List an event's participants
// @Tags         roster
// @Produce      json
// @Param        eventID   path      int true "event ID"
// @Success      200      {array}    domain.Participant
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID}/participants [get]
func (h *RosterHandler) HandleListParticipants(ctx *gin.Context) {
	eventID, ok := eventIDParam(ctx)
	if !ok {
		return
	}

	participants, err := h.svc.Participants(ctx.Request.Context(), eventID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListParticipants -> h.svc.Participants -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, participants)
}

// HandleAddParticipant godoc
// @Summary      Add a participant to an event
// @Tags         roster
// @Produce      json
// @Param        eventID   path      int true "event ID"
// @Param        request   body      request.AddParticipantRequest true "request body"
// @Success      201
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID}/participants [post]
func (h *RosterHandler) HandleAddParticipant(ctx *gin.Context) {
	eventID, ok := eventIDParam(ctx)
	if !ok {
		return
	}

	var req request.AddParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.AddParticipant(ctx.Request.Context(), eventID, req.ToDomain()); err != nil {
		if errors.Is(err, service.ErrParticipantExists) {
			response.RenderErr(ctx, response.ErrConflict(err))
			return
		}

		err = fmt.Errorf("v1.HandleAddParticipant -> h.svc.AddParticipant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusCreated)
}

// HandleRemoveParticipant godoc
// @Summary      Remove a participant from an event
// @Tags         roster
// @Produce      json
// @Param        eventID     path     int    true "event ID"
// @Param        first_name  query    string true "participant first name"
// @Param        last_name   query    string true "participant last name"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID}/participants [delete]
func (h *RosterHandler) HandleRemoveParticipant(ctx *gin.Context) {
	eventID, ok := eventIDParam(ctx)
	if !ok {
		return
	}

	firstName := strings.TrimSpace(ctx.Query("first_name"))
	lastName := strings.TrimSpace(ctx.Query("last_name"))
	if firstName == "" || lastName == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errMissingParticipantName))
		return
	}

	if err := h.svc.RemoveParticipant(ctx.Request.Context(), eventID, firstName, lastName); err != nil {
		err = fmt.Errorf("v1.HandleRemoveParticipant -> h.svc.RemoveParticipant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListOrganizers godoc
// @Summary      List an event's organizers
// @Tags         roster
// @Produce      json
// @Param        eventID   path      int true "event ID"
// @Success      200      {array}    domain.Organizer
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID}/organizers [get]
func (h *RosterHandler) HandleListOrganizers(ctx *gin.Context) {
	eventID, ok := eventIDParam(ctx)
	if !ok {
		return
	}

	organizers, err := h.svc.Organizers(ctx.Request.Context(), eventID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListOrganizers -> h.svc.Organizers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, organizers)
}

// HandleAddOrganizer godoc
// @Summary      Add an organizer to an event
// @Tags         roster
// @Produce      json
// @Param        eventID   path      int true "event ID"
// @Param        request   body      request.AddOrganizerRequest true "request body"
// @Success      201
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID}/organizers [post]
func (h *RosterHandler) HandleAddOrganizer(ctx *gin.Context) {
	eventID, ok := eventIDParam(ctx)
	if !ok {
		return
	}

	var req request.AddOrganizerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.AddOrganizer(ctx.Request.Context(), eventID, req.ToDomain()); err != nil {
		if errors.Is(err, service.ErrOrganizerExists) {
			response.RenderErr(ctx, response.ErrConflict(err))
			return
		}

		err = fmt.Errorf("v1.HandleAddOrganizer -> h.svc.AddOrganizer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusCreated)
}

// HandleRemoveOrganizer godoc
// @Summary      Remove an organizer from an event
// @Tags         roster
// @Produce      json
// @Param        eventID   path      int    true "event ID"
// @Param        username  path      string true "organizer username"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID}/organizers/{username} [delete]
func (h *RosterHandler) HandleRemoveOrganizer(ctx *gin.Context) {
	eventID, ok := eventIDParam(ctx)
	if !ok {
		return
	}

	username := strings.TrimSpace(ctx.Param("username"))
	if username == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errMissingOrganizerName))
		return
	}

	if err := h.svc.RemoveOrganizer(ctx.Request.Context(), eventID, username); err != nil {
		err = fmt.Errorf("v1.HandleRemoveOrganizer -> h.svc.RemoveOrganizer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
