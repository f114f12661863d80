package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-api/internal/domain/timeslot"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/httpresp"
	"github.com/BruksfildServices01/agenda-api/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type auditLogLister interface {
	List(ctx context.Context, f repository.AuditLogFilter) ([]models.AuditLog, int64, error)
}

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs auditLogLister
}

func NewAuditLogsHandler(logs auditLogLister) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

// List is mounted behind RequireRole(ADMIN).
func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	f := repository.AuditLogFilter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	// --------------------------------------------------
	// Date range, inclusive of both days
	// --------------------------------------------------
	if s := c.Query("from"); s != "" {
		from, err := timeslot.ParseDate(s)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "from must be in YYYY-MM-DD format.")
			return
		}
		f.From = &from
	}
	if s := c.Query("to"); s != "" {
		to, err := timeslot.ParseDate(s)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "to must be in YYYY-MM-DD format.")
			return
		}
		to = to.Add(24 * time.Hour)
		f.To = &to
	}

	logs, total, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Page(c, logs, page, limit, total)
}
