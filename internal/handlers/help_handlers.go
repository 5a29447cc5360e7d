package handlers

import (
	"encoding/json"
	"net/http"

	"rehab-app/internal/models"
	"rehab-app/internal/services"
	"rehab-app/pkg/logger"
)

type HelpHandlers struct {
	helpService *services.HelpService
}

func NewHelpHandlers(helpService *services.HelpService) *HelpHandlers {
	return &HelpHandlers{
		helpService: helpService,
	}
}

func (h *HelpHandlers) CreateHelpRequest(w http.ResponseWriter, r *http.Request) {
	var req models.CreateHelpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.helpService.CreateHelpRequest(r.Context(), &req); err != nil {
		logger.Error("Create help request error: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeMessage(w, http.StatusCreated, "help request submitted successfully")
}

func (h *HelpHandlers) ListGuardianHelpRequests(w http.ResponseWriter, r *http.Request) {
	guardianID, err := pathID(r, 3)
	if err != nil {
		http.Error(w, "invalid guardian ID", http.StatusBadRequest)
		return
	}

	requests, err := h.helpService.ListGuardianHelpRequests(r.Context(), guardianID)
	if err != nil {
		logger.Error("List guardian help requests error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, requests)
}

func (h *HelpHandlers) ListAllHelpRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.helpService.ListAllHelpRequests(r.Context())
	if err != nil {
		logger.Error("List help requests error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, requests)
}

func (h *HelpHandlers) UpdateHelpRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, 2)
	if err != nil {
		http.Error(w, "invalid help request ID", http.StatusBadRequest)
		return
	}

	var req models.UpdateHelpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.helpService.UpdateStatus(r.Context(), id, &req); err != nil {
		logger.Error("Update help request %d error: %v", id, err)
		http.Error(w, err.Error(), storeErrorStatus(err))
		return
	}

	writeMessage(w, http.StatusOK, "help request updated successfully")
}

func (h *HelpHandlers) GetHelpSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.helpService.GetHelpSummary(r.Context())
	if err != nil {
		logger.Error("Help summary error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
