package handlers

import (
	"encoding/json"
	"net/http"

	"rehab-app/internal/models"
	"rehab-app/internal/services"
	"rehab-app/pkg/logger"
)

type ParticipantHandlers struct {
	participantService *services.ParticipantService
}

func NewParticipantHandlers(participantService *services.ParticipantService) *ParticipantHandlers {
	return &ParticipantHandlers{
		participantService: participantService,
	}
}

func (h *ParticipantHandlers) CreateParticipant(w http.ResponseWriter, r *http.Request) {
	var req models.CreateParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	id, err := h.participantService.CreateParticipant(r.Context(), &req)
	if err != nil {
		logger.Error("Create participant error: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "participant added successfully",
		"id":      id,
	})
}

func (h *ParticipantHandlers) ListParticipants(w http.ResponseWriter, r *http.Request) {
	participants, err := h.participantService.ListParticipants(r.Context())
	if err != nil {
		logger.Error("List participants error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, participants)
}

func (h *ParticipantHandlers) GetParticipant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, 3)
	if err != nil {
		http.Error(w, "invalid participant ID", http.StatusBadRequest)
		return
	}

	participant, err := h.participantService.GetParticipant(r.Context(), id)
	if err != nil {
		http.Error(w, "participant not found", storeErrorStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, participant)
}

func (h *ParticipantHandlers) AssignGuardianAndProfessional(w http.ResponseWriter, r *http.Request) {
	var req models.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.participantService.AssignGuardianAndProfessional(r.Context(), &req); err != nil {
		logger.Error("Assign participant error: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeMessage(w, http.StatusOK, "guardian and professional assigned successfully")
}

func (h *ParticipantHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.participantService.UpdateStatus(r.Context(), &req); err != nil {
		logger.Error("Update participant status error: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeMessage(w, http.StatusOK, "status updated successfully")
}

func (h *ParticipantHandlers) UpdateParticipant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, 3)
	if err != nil {
		http.Error(w, "invalid participant ID", http.StatusBadRequest)
		return
	}

	var req models.UpdateParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.participantService.UpdateParticipant(r.Context(), id, &req); err != nil {
		logger.Error("Update participant %d error: %v", id, err)
		http.Error(w, err.Error(), storeErrorStatus(err))
		return
	}

	writeMessage(w, http.StatusOK, "participant updated successfully")
}

func (h *ParticipantHandlers) DeleteParticipant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, 3)
	if err != nil {
		http.Error(w, "invalid participant ID", http.StatusBadRequest)
		return
	}

	if err := h.participantService.DeleteParticipant(r.Context(), id); err != nil {
		logger.Error("Delete participant %d error: %v", id, err)
		http.Error(w, "failed to delete participant", storeErrorStatus(err))
		return
	}

	writeMessage(w, http.StatusOK, "participant deleted successfully")
}

func (h *ParticipantHandlers) ListAssignedParticipants(w http.ResponseWriter, r *http.Request) {
	professionalID, err := pathID(r, 3)
	if err != nil {
		http.Error(w, "invalid professional ID", http.StatusBadRequest)
		return
	}

	participants, err := h.participantService.ListAssignedParticipants(r.Context(), professionalID)
	if err != nil {
		logger.Error("List assigned participants error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, participants)
}

func (h *ParticipantHandlers) ListParticipantsByGuardian(w http.ResponseWriter, r *http.Request) {
	guardianID, err := pathID(r, 3)
	if err != nil {
		http.Error(w, "invalid guardian ID", http.StatusBadRequest)
		return
	}

	participants, err := h.participantService.ListParticipantsByGuardian(r.Context(), guardianID)
	if err != nil {
		logger.Error("List guardian participants error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, participants)
}
