package http

import (
	"net/http"
	"time"

	"suremotor-backend/internal/usecase/claim"

	"github.com/labstack/echo/v4"
)

type ClaimHandler struct{ uc *claim.Usecase }

func NewClaimHandler(uc *claim.Usecase) *ClaimHandler { return &ClaimHandler{uc: uc} }

type createClaimReq struct {
	PolicyID        string    `json:"policy_id"        validate:"required,hex32"`
	IncidentDate    time.Time `json:"incident_date"    validate:"required"`
	IncidentType    string    `json:"incident_type"    validate:"required,oneof=accident theft fire vandalism natural-disaster other"`
	Description     string    `json:"description"      validate:"required,min=20"`
	EstimatedAmount int64     `json:"estimated_amount" validate:"required,gt=0"`
	EvidenceURLs    []string  `json:"evidence_urls"    validate:"omitempty,dive,url"`
}

type updateClaimStatusReq struct {
	Status         string `json:"status"          validate:"required,oneof=under-review approved rejected settled"`
	ApprovedAmount *int64 `json:"approved_amount" validate:"omitempty,gt=0"`
}

func (h *ClaimHandler) CreateClaim(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	var req createClaimReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), claim.CreateClaimInput{
		PolicyID:        req.PolicyID,
		OwnerID:         owner,
		IncidentDate:    req.IncidentDate,
		IncidentType:    req.IncidentType,
		Description:     req.Description,
		EstimatedAmount: req.EstimatedAmount,
		EvidenceURLs:    req.EvidenceURLs,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ClaimHandler) ListClaims(c echo.Context) error {
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

func (h *ClaimHandler) GetClaim(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	dto, err := h.uc.Get(c.Request().Context(), c.Param("claim_id"), owner)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ClaimHandler) DeleteClaim(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	if err := h.uc.Delete(c.Request().Context(), c.Param("claim_id"), owner); err != nil {
		return jsonError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ClaimHandler) ClaimStats(c echo.Context) error {
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

// UpdateClaimStatus is the reviewer route and is not owner-scoped; the admin
// gateway guards access to it.
func (h *ClaimHandler) UpdateClaimStatus(c echo.Context) error {
	claimID := c.Param("claim_id")
	if claimID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing claim_id path param"})
	}
	var req updateClaimStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.UpdateStatus(c.Request().Context(), claimID, req.Status, req.ApprovedAmount)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
