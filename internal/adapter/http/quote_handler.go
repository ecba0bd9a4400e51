package http

import (
	"net/http"
	"time"

	"suremotor-backend/internal/usecase/quote"

	"github.com/labstack/echo/v4"
)

type QuoteHandler struct{ uc *quote.Usecase }

func NewQuoteHandler(uc *quote.Usecase) *QuoteHandler { return &QuoteHandler{uc: uc} }

type createQuoteReq struct {
	Make               string    `json:"make"                validate:"required"`
	Model              string    `json:"model"               validate:"required"`
	Year               int       `json:"year"                validate:"required,gte=1900"`
	RegistrationNumber string    `json:"registration_number" validate:"required"`
	EngineSize         string    `json:"engine_size"         validate:"required"`
	FuelType           string    `json:"fuel_type"           validate:"required,oneof=petrol diesel electric hybrid"`
	VehicleValue       int64     `json:"vehicle_value"       validate:"required,gt=0"`
	Color              string    `json:"color"               validate:"required"`
	ChassisNumber      string    `json:"chassis_number"      validate:"required"`
	CoverageType       string    `json:"coverage_type"       validate:"required,oneof=third-party fire-theft comprehensive"`
	StartDate          time.Time `json:"start_date"          validate:"required"`
	DurationMonths     int       `json:"duration_months"     validate:"required,term"`
	AdditionalDrivers  int       `json:"additional_drivers"  validate:"gte=0"`
	VoluntaryExcess    int64     `json:"voluntary_excess"    validate:"gte=0"`
}

type updateQuoteReq struct {
	Make               *string    `json:"make"`
	Model              *string    `json:"model"`
	Year               *int       `json:"year"`
	RegistrationNumber *string    `json:"registration_number"`
	EngineSize         *string    `json:"engine_size"`
	FuelType           *string    `json:"fuel_type"`
	VehicleValue       *int64     `json:"vehicle_value"`
	Color              *string    `json:"color"`
	ChassisNumber      *string    `json:"chassis_number"`
	CoverageType       *string    `json:"coverage_type"`
	StartDate          *time.Time `json:"start_date"`
	DurationMonths     *int       `json:"duration_months"`
	AdditionalDrivers  *int       `json:"additional_drivers"`
	VoluntaryExcess    *int64     `json:"voluntary_excess"`
}

func (h *QuoteHandler) CreateQuote(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	var req createQuoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), quote.CreateQuoteInput{
		OwnerID:            owner,
		Make:               req.Make,
		Model:              req.Model,
		Year:               req.Year,
		RegistrationNumber: req.RegistrationNumber,
		EngineSize:         req.EngineSize,
		FuelType:           req.FuelType,
		VehicleValue:       req.VehicleValue,
		Color:              req.Color,
		ChassisNumber:      req.ChassisNumber,
		CoverageType:       req.CoverageType,
		StartDate:          req.StartDate,
		DurationMonths:     req.DurationMonths,
		AdditionalDrivers:  req.AdditionalDrivers,
		VoluntaryExcess:    req.VoluntaryExcess,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *QuoteHandler) ListQuotes(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	dtos, err := h.uc.List(c.Request().Context(), owner)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *QuoteHandler) GetQuote(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	dto, err := h.uc.Get(c.Request().Context(), c.Param("quote_id"), owner)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *QuoteHandler) UpdateQuote(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	var req updateQuoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Update(c.Request().Context(), c.Param("quote_id"), owner, quote.UpdateQuoteInput(req))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *QuoteHandler) DeleteQuote(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	if err := h.uc.Delete(c.Request().Context(), c.Param("quote_id"), owner); err != nil {
		return jsonError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *QuoteHandler) QuoteStats(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	st, err := h.uc.Stats(c.Request().Context(), owner)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, st)
}
