package controllers

import (
	"net/http"

	"github.com/avaldez/nookstop-backend/api/responses"
	"github.com/avaldez/nookstop-backend/api/validators"
	authsvc "github.com/avaldez/nookstop-backend/internal/auth"
	pkgerrors "github.com/avaldez/nookstop-backend/pkg/errors"
	"github.com/avaldez/nookstop-backend/pkg/logger"
)

// AccountUpdate changes the caller's shopping assistant or newsletter opt-in.
func AccountUpdate(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		userID, err := userIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload authsvc.UpdateAccountRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.UpdateAccount(r.Context(), userID, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, user)
	}
}
