package controllers

import (
	"net/http"

	"github.com/avaldez/nookstop-backend/api/responses"
	checkoutsvc "github.com/avaldez/nookstop-backend/internal/checkout"
	pkgerrors "github.com/avaldez/nookstop-backend/pkg/errors"
	"github.com/avaldez/nookstop-backend/pkg/logger"
)

// Checkout converts the caller's cart into a persisted order and returns the
// receipt. The cart is emptied only after the order commits.
func Checkout(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		userID, err := userIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		receipt, err := svc.Execute(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, receipt)
	}
}
