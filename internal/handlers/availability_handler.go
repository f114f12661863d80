package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-api/internal/authz"
	"github.com/BruksfildServices01/agenda-api/internal/dto"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/httpresp"
	"github.com/BruksfildServices01/agenda-api/internal/middleware"
	"github.com/BruksfildServices01/agenda-api/internal/models"
	ucAvailability "github.com/BruksfildServices01/agenda-api/internal/usecase/availability"
)

type availabilityPublisher interface {
	Execute(ctx context.Context, in ucAvailability.PublishAvailabilityInput, userID string) (*models.Availability, error)
}

type availabilityLister interface {
	Execute(ctx context.Context, professionalID string) ([]models.Availability, error)
}

type availabilityRetractor interface {
	Execute(ctx context.Context, availabilityID, requesterID string) error
}

type AvailabilityHandler struct {
	publish availabilityPublisher
	list    availabilityLister
	retract availabilityRetractor
}

func NewAvailabilityHandler(
	publish availabilityPublisher,
	list availabilityLister,
	retract availabilityRetractor,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		publish: publish,
		list:    list,
		retract: retract,
	}
}

type PublishAvailabilityRequest struct {
	DayOfWeek *int   `json:"dayOfWeek" binding:"required,min=0,max=6"`
	StartTime string `json:"startTime" binding:"required,hhmm"`
	EndTime   string `json:"endTime" binding:"required,hhmm"`
}

func (h *AvailabilityHandler) Publish(c *gin.Context) {
	id := middleware.Identity(c)
	if err := authz.Require(id, models.RoleProfessional); err != nil {
		httperr.Respond(c, err)
		return
	}

	var req PublishAvailabilityRequest
	if !bindJSON(c, &req) {
		return
	}

	a, err := h.publish.Execute(c.Request.Context(), ucAvailability.PublishAvailabilityInput{
		DayOfWeek: *req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, id.UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.Availability(a))
}

// List is public.
func (h *AvailabilityHandler) List(c *gin.Context) {
	profID, ok := pathID(c, "professionalId", "professional_not_found", "Professional not found.")
	if !ok {
		return
	}

	slots, err := h.list.Execute(c.Request.Context(), profID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, dto.Availabilities(slots))
}

func (h *AvailabilityHandler) Retract(c *gin.Context) {
	id := middleware.Identity(c)
	if err := authz.Require(id, models.RoleProfessional); err != nil {
		httperr.Respond(c, err)
		return
	}

	avID, ok := pathID(c, "id", "availability_not_found", "Availability not found.")
	if !ok {
		return
	}

	if err := h.retract.Execute(c.Request.Context(), avID, id.UserID); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "Availability deleted."})
}
