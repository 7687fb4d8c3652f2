package handler

import (
	"github.com/labstack/echo/v4"

	"tutorhub/internal/usecase"
	"tutorhub/pkg/response"
)

type EventHandler struct {
	eventUseCase *usecase.EventUseCase
	authUseCase  *usecase.AuthUseCase
}

func NewEventHandler(eventUseCase *usecase.EventUseCase, authUseCase *usecase.AuthUseCase) *EventHandler {
	return &EventHandler{
		eventUseCase: eventUseCase,
		authUseCase:  authUseCase,
	}
}

type createEventRequest struct {
	ClientID    string `json:"client_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" validate:"required"`
	Description string `json:"description" validate:"omitempty"`
}

func (h *EventHandler) CreateEvent(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	event, err := h.eventUseCase.CreateEvent(c.Request().Context(), usecase.CreateEventInput{
		ClientID:    req.ClientID,
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Description: req.Description,
		CreatedBy:   uid,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, event)
}

// ListUpcoming scopes the calendar to the caller: admins see every client's
// events, clients only their own.
func (h *EventHandler) ListUpcoming(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.authUseCase.GetUserByID(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	clientID := uid
	if user.IsAdmin() {
		clientID = c.QueryParam("client_id")
	}

	events, err := h.eventUseCase.ListUpcoming(c.Request().Context(), clientID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, events)
}

func (h *EventHandler) DeleteEvent(c echo.Context) error {
	if err := h.eventUseCase.DeleteEvent(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Event deleted",
	})
}
