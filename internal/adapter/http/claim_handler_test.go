package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	claimDomain "suremotor-backend/internal/domain/claim"
	policyDomain "suremotor-backend/internal/domain/policy"
	"suremotor-backend/internal/testutil/claimmock"
	"suremotor-backend/internal/testutil/policymock"
	uc "suremotor-backend/internal/usecase/claim"

	"github.com/labstack/echo/v4"
)

func claimReqBody(policyID string) map[string]any {
	return map[string]any{
		"policy_id":        policyID,
		"incident_date":    time.Now().UTC().Add(-48 * time.Hour).Format(time.RFC3339),
		"incident_type":    "accident",
		"description":      "rear-ended at a junction, bumper and tail light damaged",
		"estimated_amount": 1200,
		"evidence_urls":    []string{"https://cdn.example.com/photos/1.jpg"},
	}
}

func TestCreateClaim_Success(t *testing.T) {
	e := newEchoWithValidator()
	owner := strings.Repeat("b", 32)
	policyID := strings.Repeat("e", 32)

	policies := &policymock.Repo{
		GetByPolicyIDFn: func(ctx context.Context, id string) (*policyDomain.Policy, error) {
			return &policyDomain.Policy{PolicyID: policyID, OwnerID: owner,
				Status: policyDomain.StatusActive, EndDate: time.Now().UTC().Add(time.Hour)}, nil
		},
	}
	h := NewClaimHandler(uc.NewUsecase(&claimmock.Repo{}, policies, nil))

	req := httptest.NewRequest(stdhttp.MethodPost, "/claims", mustJSON(claimReqBody(policyID)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(OwnerHeader, owner)
	rec := httptest.NewRecorder()

	if err := h.CreateClaim(e.NewContext(req, rec)); err != nil {
		t.Fatalf("CreateClaim error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201; body=%s", rec.Code, rec.Body.String())
	}
	var got uc.ClaimDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !strings.HasPrefix(got.ClaimNumber, "CL-") || got.Status != string(claimDomain.StatusSubmitted) {
		t.Fatalf("unexpected dto: %+v", got)
	}
}

func TestCreateClaim_ValidationError(t *testing.T) {
	e := newEchoWithValidator()
	h := NewClaimHandler(uc.NewUsecase(&claimmock.Repo{
		CreateFn: func(ctx context.Context, c *claimDomain.Claim) error {
			t.Fatal("usecase must not be reached")
			return nil
		},
	}, &policymock.Repo{}, nil))

	body := claimReqBody(strings.Repeat("e", 32))
	body["description"] = "too short"
	body["incident_type"] = "meteor"
	req := httptest.NewRequest(stdhttp.MethodPost, "/claims", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(OwnerHeader, strings.Repeat("b", 32))
	rec := httptest.NewRecorder()

	if err := h.CreateClaim(e.NewContext(req, rec)); err != nil {
		t.Fatalf("CreateClaim error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if !containsFieldMsg(er.Details, "Description", "at least") {
		t.Fatalf("missing description detail: %+v", er.Details)
	}
	if !containsFieldMsg(er.Details, "IncidentType", "one of") {
		t.Fatalf("missing incident_type detail: %+v", er.Details)
	}
}

func TestCreateClaim_InactivePolicyConflict(t *testing.T) {
	e := newEchoWithValidator()
	owner := strings.Repeat("b", 32)
	policyID := strings.Repeat("e", 32)
	policies := &policymock.Repo{
		GetByPolicyIDFn: func(ctx context.Context, id string) (*policyDomain.Policy, error) {
			return &policyDomain.Policy{PolicyID: policyID, OwnerID: owner,
				Status: policyDomain.StatusCancelled}, nil
		},
	}
	h := NewClaimHandler(uc.NewUsecase(&claimmock.Repo{}, policies, nil))

	req := httptest.NewRequest(stdhttp.MethodPost, "/claims", mustJSON(claimReqBody(policyID)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(OwnerHeader, owner)
	rec := httptest.NewRecorder()

	if err := h.CreateClaim(e.NewContext(req, rec)); err != nil {
		t.Fatalf("CreateClaim error: %v", err)
	}
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestUpdateClaimStatus_Success(t *testing.T) {
	e := newEchoWithValidator()
	claimID := strings.Repeat("c", 32)
	cl := &claimDomain.Claim{ClaimID: claimID, Status: claimDomain.StatusUnderReview}
	h := NewClaimHandler(uc.NewUsecase(&claimmock.Repo{
		GetByClaimIDFn: func(ctx context.Context, id string) (*claimDomain.Claim, error) { return cl, nil },
	}, nil, nil))

	body := map[string]any{"status": "approved", "approved_amount": 950}
	req := httptest.NewRequest(stdhttp.MethodPatch, "/admin/claims/"+claimID+"/status", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/admin/claims/:claim_id/status")
	c.SetParamNames("claim_id")
	c.SetParamValues(claimID)

	if err := h.UpdateClaimStatus(c); err != nil {
		t.Fatalf("UpdateClaimStatus error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", rec.Code, rec.Body.String())
	}
	var got uc.ClaimDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.Status != string(claimDomain.StatusApproved) || got.ApprovedAmount == nil || *got.ApprovedAmount != 950 {
		t.Fatalf("unexpected dto: %+v", got)
	}
}

func TestUpdateClaimStatus_InvalidTransitionConflict(t *testing.T) {
	e := newEchoWithValidator()
	claimID := strings.Repeat("c", 32)
	cl := &claimDomain.Claim{ClaimID: claimID, Status: claimDomain.StatusSettled}
	h := NewClaimHandler(uc.NewUsecase(&claimmock.Repo{
		GetByClaimIDFn: func(ctx context.Context, id string) (*claimDomain.Claim, error) { return cl, nil },
	}, nil, nil))

	body := map[string]any{"status": "approved"}
	req := httptest.NewRequest(stdhttp.MethodPatch, "/admin/claims/"+claimID+"/status", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/admin/claims/:claim_id/status")
	c.SetParamNames("claim_id")
	c.SetParamValues(claimID)

	if err := h.UpdateClaimStatus(c); err != nil {
		t.Fatalf("UpdateClaimStatus error: %v", err)
	}
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestDeleteClaim_SubmittedConflict(t *testing.T) {
	e := newEchoWithValidator()
	owner := strings.Repeat("b", 32)
	claimID := strings.Repeat("c", 32)
	h := NewClaimHandler(uc.NewUsecase(&claimmock.Repo{
		GetByClaimIDFn: func(ctx context.Context, id string) (*claimDomain.Claim, error) {
			return &claimDomain.Claim{ClaimID: claimID, OwnerID: owner, Status: claimDomain.StatusSubmitted}, nil
		},
	}, nil, nil))

	req := httptest.NewRequest(stdhttp.MethodDelete, "/claims/"+claimID, nil)
	req.Header.Set(OwnerHeader, owner)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/claims/:claim_id")
	c.SetParamNames("claim_id")
	c.SetParamValues(claimID)

	if err := h.DeleteClaim(c); err != nil {
		t.Fatalf("DeleteClaim error: %v", err)
	}
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}
