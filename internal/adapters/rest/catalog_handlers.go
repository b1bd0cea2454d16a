package rest

import (
	"errors"
	"net/http"

	"domain-market-web/internal/contextkeys"
	"domain-market-web/internal/core/domain"
	"domain-market-web/internal/core/port"
	"domain-market-web/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

// CatalogHandler serves the public pages: the catalog grid and the listing
// detail view.
type CatalogHandler struct {
	browseUC  usecases_port.BrowseCatalogUseCase
	detailsUC usecases_port.GetListingDetailsUseCase
}

func NewCatalogHandler(browseUC usecases_port.BrowseCatalogUseCase,
	detailsUC usecases_port.GetListingDetailsUseCase) *CatalogHandler {
	return &CatalogHandler{
		browseUC:  browseUC,
		detailsUC: detailsUC,
	}
}

// GetCatalog handles GET /api/v1/catalog?search=&city=&category=
func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetCatalog"})

	query := r.URL.Query()
	criteria := domain.FilterCriteria{
		Search:   query.Get("search"),
		City:     query.Get("city"),
		Category: query.Get("category"),
	}

	handlerLogger := logger.WithFields(port.Fields{
		"search":   criteria.Search,
		"city":     criteria.City,
		"category": criteria.Category,
	})
	handlerLogger.Info("Processing catalog request", nil)

	page, err := h.browseUC.Execute(r.Context(), criteria)
	if err != nil {
		handlerLogger.Error("Browse catalog use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to load catalog")
		return
	}

	response := CatalogResponse{
		Featured:   newListingCards(page.Featured),
		Listings:   newListingCards(page.Listings),
		Cities:     page.Cities,
		Categories: page.Categories,
	}

	handlerLogger.Info("Catalog page assembled", port.Fields{
		"listings_shown": len(response.Listings),
		"featured":       len(response.Featured),
	})
	RespondWithJSON(w, http.StatusOK, response)
}

// GetListingBySlug handles GET /api/v1/catalog/{slug}
func (h *CatalogHandler) GetListingBySlug(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetListingBySlug"})

	slug := chi.URLParam(r, "slug")
	if slug == "" {
		WriteJSONError(w, http.StatusBadRequest, "Missing slug in URL")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"slug": slug})
	handlerLogger.Info("Processing listing detail request", nil)

	listing, err := h.detailsUC.Execute(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Listing not found")
			return
		}
		handlerLogger.Error("Get listing details use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to load listing")
		return
	}

	RespondWithJSON(w, http.StatusOK, newListingDetail(listing))
}
