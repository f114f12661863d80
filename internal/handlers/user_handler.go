package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-api/internal/dto"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/httpresp"
	"github.com/BruksfildServices01/agenda-api/internal/middleware"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type userGetter interface {
	Execute(ctx context.Context, id string) (*models.User, error)
}

type userLister interface {
	Execute(ctx context.Context) ([]models.User, error)
}

type UserHandler struct {
	get  userGetter
	list userLister
}

func NewUserHandler(get userGetter, list userLister) *UserHandler {
	return &UserHandler{get: get, list: list}
}

func (h *UserHandler) Me(c *gin.Context) {
	u, err := h.get.Execute(c.Request.Context(), middleware.Identity(c).UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.User(u))
}

func (h *UserHandler) List(c *gin.Context) {
	us, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, dto.Users(us))
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "user_not_found", "User not found.")
	if !ok {
		return
	}

	u, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.User(u))
}
