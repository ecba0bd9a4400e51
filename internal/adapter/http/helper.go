package http

import (
	"errors"
	"net/http"
	"strings"

	claimDomain "suremotor-backend/internal/domain/claim"
	policyDomain "suremotor-backend/internal/domain/policy"
	quoteDomain "suremotor-backend/internal/domain/quote"

	"github.com/labstack/echo/v4"
)

// OwnerHeader carries the authenticated customer's id. The gateway in front
// of this service strips and re-writes it, so its value is trusted here.
const OwnerHeader = "Ax-Owner-Id"

func ownerID(c echo.Context) (string, error) {
	v := strings.TrimSpace(c.Request().Header.Get(OwnerHeader))
	if v == "" {
		return "", errors.New("missing " + OwnerHeader)
	}
	if !reHex32.MatchString(v) {
		return "", errors.New("invalid " + OwnerHeader)
	}
	return v, nil
}

// domainStatus maps sentinel domain errors onto HTTP status codes. Owner
// mismatches already surface as not-found from the usecases.
func domainStatus(err error) int {
	switch {
	case errors.Is(err, quoteDomain.ErrNotFound),
		errors.Is(err, policyDomain.ErrNotFound),
		errors.Is(err, claimDomain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, quoteDomain.ErrInvalidInput),
		errors.Is(err, claimDomain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, quoteDomain.ErrConverted),
		errors.Is(err, quoteDomain.ErrNotActive),
		errors.Is(err, policyDomain.ErrNotActive),
		errors.Is(err, claimDomain.ErrInvalidTransition),
		errors.Is(err, claimDomain.ErrNotDraft):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func jsonError(c echo.Context, err error) error {
	code := domainStatus(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal error"
	}
	return c.JSON(code, ErrorResponse{Error: msg})
}

// ---- helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
