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
	ucAppointment "github.com/BruksfildServices01/agenda-api/internal/usecase/appointment"
)

// ======================================================
// USE CASE CONTRACTS
// ======================================================

type appointmentCreator interface {
	Execute(ctx context.Context, in ucAppointment.CreateAppointmentInput, clientID string) (*models.Appointment, error)
}

type appointmentLister interface {
	Execute(ctx context.Context, id authz.Identity) ([]models.Appointment, error)
}

type appointmentTransition interface {
	Execute(ctx context.Context, appointmentID, requesterID string) (*models.Appointment, error)
}

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create   appointmentCreator
	listMine appointmentLister
	cancel   appointmentTransition
	complete appointmentTransition
}

func NewAppointmentHandler(
	create appointmentCreator,
	listMine appointmentLister,
	cancel appointmentTransition,
	complete appointmentTransition,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:   create,
		listMine: listMine,
		cancel:   cancel,
		complete: complete,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ProfessionalID string `json:"professionalId" binding:"required,uuid"`
	Date           string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime      string `json:"startTime" binding:"required,hhmm"`
	EndTime        string `json:"endTime" binding:"required,hhmm"`
	Notes          string `json:"notes" binding:"max=255"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	id := middleware.Identity(c)
	if err := authz.Require(id, models.RoleClient); err != nil {
		httperr.Respond(c, err)
		return
	}

	var req CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Notes:          req.Notes,
	}, id.UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.Appointment(ap))
}

// ======================================================
// LIST MINE
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	aps, err := h.listMine.Execute(c.Request.Context(), middleware.Identity(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, dto.Appointments(aps))
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cancel)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, h.complete)
}

// transition runs a status change. Ownership is decided by the use case,
// so no role guard applies here.
func (h *AppointmentHandler) transition(c *gin.Context, uc appointmentTransition) {
	apID, ok := pathID(c, "id", "appointment_not_found", "Appointment not found.")
	if !ok {
		return
	}

	ap, err := uc.Execute(c.Request.Context(), apID, middleware.Identity(c).UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.Appointment(ap))
}
