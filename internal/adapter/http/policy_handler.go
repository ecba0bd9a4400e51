package http

import (
	"net/http"

	"suremotor-backend/internal/usecase/policy"

	"github.com/labstack/echo/v4"
)

type PolicyHandler struct{ uc *policy.Usecase }

func NewPolicyHandler(uc *policy.Usecase) *PolicyHandler { return &PolicyHandler{uc: uc} }

// PurchaseQuote binds a policy from an active quote. Retrying after the quote
// was already converted replays the existing policy, so the route is safe to
// sit behind the idempotency layer and still be retried client-side.
func (h *PolicyHandler) PurchaseQuote(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	quoteID := c.Param("quote_id")
	if quoteID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing quote_id path param"})
	}
	dto, err := h.uc.Purchase(c.Request().Context(), quoteID, owner)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PolicyHandler) ListPolicies(c echo.Context) error {
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

func (h *PolicyHandler) GetPolicy(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	dto, err := h.uc.Get(c.Request().Context(), c.Param("policy_id"), owner)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PolicyHandler) CancelPolicy(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	dto, err := h.uc.Cancel(c.Request().Context(), c.Param("policy_id"), owner)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PolicyHandler) PolicyStats(c echo.Context) error {
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
