package http

import (
	"net/http"

	"suremotor-backend/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct{ uc *report.Usecase }

func NewReportHandler(uc *report.Usecase) *ReportHandler { return &ReportHandler{uc: uc} }

func (h *ReportHandler) Dashboard(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	d, err := h.uc.Dashboard(c.Request().Context(), owner)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *ReportHandler) Analytics(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	a, err := h.uc.Analytics(c.Request().Context(), owner)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

// AdminOverview aggregates across every owner; the admin gateway guards it.
func (h *ReportHandler) AdminOverview(c echo.Context) error {
	o, err := h.uc.Admin(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}
