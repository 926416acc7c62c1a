package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/avaldez/nookstop-backend/api/responses"
	"github.com/avaldez/nookstop-backend/api/validators"
	catalogsvc "github.com/avaldez/nookstop-backend/internal/catalog"
	pkgerrors "github.com/avaldez/nookstop-backend/pkg/errors"
	"github.com/avaldez/nookstop-backend/pkg/logger"
)

// CatalogMenu lists the furniture concepts, series, and sets available to
// browse.
func CatalogMenu(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		menu, err := svc.Menu(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, menu)
	}
}

// CatalogFurniture lists furniture in a category, paginated.
func CatalogFurniture(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		category := strings.TrimSpace(chi.URLParam(r, "category"))
		if category == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "category is required"))
			return
		}

		page, err := svc.ListFurniture(r.Context(), category, validators.PageParam(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, page)
	}
}

// CatalogVillagers lists villagers, optionally filtered by species,
// personality, and star sign query params.
func CatalogVillagers(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		filter := catalogsvc.VillagerFilter{
			Species:     strings.TrimSpace(r.URL.Query().Get("species")),
			Personality: strings.TrimSpace(r.URL.Query().Get("personality")),
			Sign:        strings.TrimSpace(r.URL.Query().Get("sign")),
		}

		page, err := svc.ListVillagers(r.Context(), filter, validators.PageParam(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, page)
	}
}

// CatalogVillagerTraits returns the distinct species, personalities, and star
// signs for building filter dropdowns.
func CatalogVillagerTraits(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		traits, err := svc.VillagerTraits(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, traits)
	}
}
