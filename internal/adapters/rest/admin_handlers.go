package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"domain-market-web/internal/auth"
	"domain-market-web/internal/contextkeys"
	"domain-market-web/internal/contracts"
	"domain-market-web/internal/core/domain"
	"domain-market-web/internal/core/port"
	"domain-market-web/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

// AdminHandler serves the dashboard: session lifecycle plus the listing
// mutations proxied to the backend.
type AdminHandler struct {
	sessions *auth.SessionManager

	listUC   usecases_port.ListAllListingsUseCase
	createUC usecases_port.CreateListingUseCase
	updateUC usecases_port.UpdateListingUseCase
	deleteUC usecases_port.DeleteListingUseCase
	recalcUC usecases_port.RecalculateBRLUseCase
}

func NewAdminHandler(sessions *auth.SessionManager,
	listUC usecases_port.ListAllListingsUseCase,
	createUC usecases_port.CreateListingUseCase,
	updateUC usecases_port.UpdateListingUseCase,
	deleteUC usecases_port.DeleteListingUseCase,
	recalcUC usecases_port.RecalculateBRLUseCase) *AdminHandler {
	return &AdminHandler{
		sessions: sessions,
		listUC:   listUC,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		recalcUC: recalcUC,
	}
}

// Login handles POST /api/v1/admin/session
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Login"})

	var reqDTO LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode login request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.sessions.Login(reqDTO.Token)
	if err != nil {
		logger.Warn("Admin login rejected", nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid admin token")
		return
	}

	logger.Info("Admin session created", port.Fields{"session_id": session.ID})
	RespondWithJSON(w, http.StatusCreated, SessionResponse{SessionID: session.ID})
}

// Logout handles DELETE /api/v1/admin/session
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Logout"})

	sessionID := r.Header.Get("X-Session-ID")
	if sessionID == "" {
		WriteJSONError(w, http.StatusBadRequest, "X-Session-ID header is missing")
		return
	}

	h.sessions.Logout(sessionID)
	logger.Info("Admin session cleared", port.Fields{"session_id": sessionID})
	w.WriteHeader(http.StatusNoContent)
}

// ListListings handles GET /api/v1/admin/listings
func (h *AdminHandler) ListListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListListings"})
	logger.Info("Processing request to list all listings", nil)

	listings, err := h.listUC.Execute(r.Context())
	if err != nil {
		h.writeUseCaseError(w, logger, err, "Failed to list listings")
		return
	}

	response := make([]AdminListingResponse, len(listings))
	for i, l := range listings {
		response[i] = newAdminListing(l)
	}

	logger.Info("Listings retrieved", port.Fields{"count": len(response)})
	RespondWithJSON(w, http.StatusOK, response)
}

// CreateListing handles POST /api/v1/admin/listings
func (h *AdminHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateListing"})

	token, ok := bearerTokenFromContext(r.Context())
	if !ok {
		logger.Error("Missing bearer token in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Missing session token")
		return
	}

	fields, ok := h.decodeListingFields(w, r, logger, "ListingCreatePayload")
	if !ok {
		return
	}

	domainName := ""
	if fields.DomainName != nil {
		domainName = *fields.DomainName
	}
	handlerLogger := logger.WithFields(port.Fields{"domain_name": domainName})
	handlerLogger.Info("Processing request to create listing", nil)

	listing, err := h.createUC.Execute(r.Context(), token, fields)
	if err != nil {
		h.writeUseCaseError(w, handlerLogger, err, "Failed to create listing")
		return
	}

	handlerLogger.Info("Listing created", port.Fields{"id": listing.ID})
	RespondWithJSON(w, http.StatusCreated, newAdminListing(*listing))
}

// UpdateListing handles PUT /api/v1/admin/listings/{id}
func (h *AdminHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateListing"})

	token, ok := bearerTokenFromContext(r.Context())
	if !ok {
		logger.Error("Missing bearer token in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Missing session token")
		return
	}

	id, err := parseListingID(r)
	if err != nil {
		logger.Warn("Invalid listing id in URL", port.Fields{"provided_id": chi.URLParam(r, "id")})
		WriteJSONError(w, http.StatusBadRequest, "Invalid listing id in URL")
		return
	}

	fields, ok := h.decodeListingFields(w, r, logger, "ListingUpdatePayload")
	if !ok {
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"id": id})
	handlerLogger.Info("Processing request to update listing", nil)

	listing, err := h.updateUC.Execute(r.Context(), token, id, fields)
	if err != nil {
		h.writeUseCaseError(w, handlerLogger, err, "Failed to update listing")
		return
	}

	handlerLogger.Info("Listing updated", nil)
	RespondWithJSON(w, http.StatusOK, newAdminListing(*listing))
}

// DeleteListing handles DELETE /api/v1/admin/listings/{id}
func (h *AdminHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteListing"})

	token, ok := bearerTokenFromContext(r.Context())
	if !ok {
		logger.Error("Missing bearer token in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Missing session token")
		return
	}

	id, err := parseListingID(r)
	if err != nil {
		logger.Warn("Invalid listing id in URL", port.Fields{"provided_id": chi.URLParam(r, "id")})
		WriteJSONError(w, http.StatusBadRequest, "Invalid listing id in URL")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"id": id})
	handlerLogger.Info("Processing request to delete listing", nil)

	if err := h.deleteUC.Execute(r.Context(), token, id); err != nil {
		h.writeUseCaseError(w, handlerLogger, err, "Failed to delete listing")
		return
	}

	handlerLogger.Info("Listing deleted", nil)
	w.WriteHeader(http.StatusNoContent)
}

// RecalculateBRL handles POST /api/v1/admin/recalculate-brl
func (h *AdminHandler) RecalculateBRL(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "RecalculateBRL"})

	token, ok := bearerTokenFromContext(r.Context())
	if !ok {
		logger.Error("Missing bearer token in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Missing session token")
		return
	}

	logger.Info("Processing request to recalculate BRL prices", nil)

	result, err := h.recalcUC.Execute(r.Context(), token)
	if err != nil {
		h.writeUseCaseError(w, logger, err, "Failed to recalculate BRL prices")
		return
	}

	logger.Info("BRL prices recalculated", port.Fields{"updated": result.Updated})
	RespondWithJSON(w, http.StatusOK, RecalculateResponse{Updated: result.Updated})
}

// decodeListingFields reads, schema-validates and unmarshals a mutation
// body. It writes the error response itself and returns ok=false on failure.
func (h *AdminHandler) decodeListingFields(w http.ResponseWriter, r *http.Request,
	logger port.LoggerPort, payloadType string) (domain.ListingFields, bool) {

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Warn("Failed to read request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return domain.ListingFields{}, false
	}

	if err := contracts.ValidatePayload(payloadType, "1.0.0", body); err != nil {
		logger.Warn("Request body failed schema validation", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return domain.ListingFields{}, false
	}

	var fields domain.ListingFields
	if err := json.Unmarshal(body, &fields); err != nil {
		logger.Warn("Failed to decode listing fields", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return domain.ListingFields{}, false
	}
	return fields, true
}

// writeUseCaseError maps a mutation error onto the response. Backend-supplied
// errors keep their original status and message so the dashboard shows what
// the backend actually said.
func (h *AdminHandler) writeUseCaseError(w http.ResponseWriter, logger port.LoggerPort,
	err error, fallback string) {

	if errors.Is(err, domain.ErrNotFound) {
		WriteJSONError(w, http.StatusNotFound, "Listing not found")
		return
	}
	if reqErr, ok := domain.AsRequestFailed(err); ok {
		logger.Warn("Backend rejected the request", port.Fields{
			"status_code": reqErr.StatusCode,
			"message":     reqErr.Message,
		})
		WriteJSONError(w, reqErr.StatusCode, reqErr.Message)
		return
	}

	logger.Error(fallback, err, nil)
	WriteJSONError(w, http.StatusInternalServerError, fallback)
}

func parseListingID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
