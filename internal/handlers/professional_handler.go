package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-api/internal/dto"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/httpresp"
	"github.com/BruksfildServices01/agenda-api/internal/middleware"
	"github.com/BruksfildServices01/agenda-api/internal/models"
	ucProfessional "github.com/BruksfildServices01/agenda-api/internal/usecase/professional"
)

type professionalPromoter interface {
	Execute(ctx context.Context, in ucProfessional.PromoteInput, adminID string) (*models.Professional, error)
}

type professionalLister interface {
	Execute(ctx context.Context) ([]models.Professional, error)
}

type professionalGetter interface {
	Execute(ctx context.Context, id string) (*models.Professional, error)
}

type ProfessionalHandler struct {
	promote professionalPromoter
	list    professionalLister
	get     professionalGetter
}

func NewProfessionalHandler(
	promote professionalPromoter,
	list professionalLister,
	get professionalGetter,
) *ProfessionalHandler {
	return &ProfessionalHandler{
		promote: promote,
		list:    list,
		get:     get,
	}
}

type PromoteProfessionalRequest struct {
	UserID    string `json:"userId" binding:"required,uuid"`
	Specialty string `json:"specialty" binding:"required,max=100"`
}

// Promote is mounted behind RequireRole(ADMIN).
func (h *ProfessionalHandler) Promote(c *gin.Context) {
	var req PromoteProfessionalRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.promote.Execute(c.Request.Context(), ucProfessional.PromoteInput{
		UserID:    req.UserID,
		Specialty: req.Specialty,
	}, middleware.Identity(c).UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.Professional(p))
}

func (h *ProfessionalHandler) List(c *gin.Context) {
	ps, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, dto.Professionals(ps))
}

func (h *ProfessionalHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "professional_not_found", "Professional not found.")
	if !ok {
		return
	}

	p, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out := dto.Professional(p)
	if out.Availability == nil {
		out.Availability = []dto.AvailabilityDTO{}
	}
	httpresp.OK(c, out)
}
