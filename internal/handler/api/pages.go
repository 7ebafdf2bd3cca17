package api

import (
	"bytes"

	"GodSignal/internal/domain/models"
	domsvc "GodSignal/internal/domain/service"
	"GodSignal/internal/usecase"
	xhttp "GodSignal/pkg/http"
	xlogger "GodSignal/pkg/logger"

	"github.com/labstack/echo/v4"
)

const csvContentType = "text/csv; charset=utf-8"

// PagesHandler serves one JSON snapshot per dashboard page.
type PagesHandler struct {
	logger *xlogger.Logger
	pages  domsvc.Pages
}

func NewPagesHandler(logger *xlogger.Logger, pages domsvc.Pages) *PagesHandler {
	return &PagesHandler{logger: logger, pages: pages}
}

func (h *PagesHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)

	g := e.Group("/api")
	g.GET("/dashboard", h.Dashboard)
	g.GET("/signals", h.Signals)
	g.GET("/signals/export", h.ExportSignals)
	g.GET("/whales", h.Whales)
	g.GET("/analytics", h.Analytics)
}

func (h *PagesHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

func (h *PagesHandler) Dashboard(c echo.Context) error {
	noStore(c)
	return xhttp.SuccessResponse(c, h.pages.Dashboard(c.Request().Context()))
}

func (h *PagesHandler) Signals(c echo.Context) error {
	req := &models.SignalsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	noStore(c)
	return xhttp.SuccessResponse(c, h.pages.Signals(c.Request().Context(), *req))
}

// ExportSignals answers with the same filtered list as Signals, as a CSV download.
func (h *PagesHandler) ExportSignals(c echo.Context) error {
	req := &models.SignalsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	var buf bytes.Buffer
	n, err := h.pages.ExportSignals(c.Request().Context(), *req, &buf)
	if err != nil {
		h.logger.Error("signals export failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("export failed").WithError(err))
	}
	h.logger.Debug("signals exported", xlogger.Int("rows", n))
	noStore(c)
	return xhttp.AttachmentResponse(c, csvContentType, usecase.ExportFilename, buf.Bytes())
}

func (h *PagesHandler) Whales(c echo.Context) error {
	req := &models.WhalesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	noStore(c)
	return xhttp.SuccessResponse(c, h.pages.Whales(c.Request().Context(), *req))
}

func (h *PagesHandler) Analytics(c echo.Context) error {
	noStore(c)
	return xhttp.SuccessResponse(c, h.pages.Analytics(c.Request().Context()))
}

// Every request re-acquires from upstream, so nothing may be cached downstream either.
func noStore(c echo.Context) {
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
}

