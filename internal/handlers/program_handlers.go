package handlers

import (
	"encoding/json"
	"net/http"

	"rehab-app/internal/models"
	"rehab-app/internal/services"
	"rehab-app/pkg/logger"
)

type ProgramHandlers struct {
	programService *services.ProgramService
}

func NewProgramHandlers(programService *services.ProgramService) *ProgramHandlers {
	return &ProgramHandlers{
		programService: programService,
	}
}

func (h *ProgramHandlers) CreateProgram(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProgramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	id, err := h.programService.CreateProgram(r.Context(), &req)
	if err != nil {
		logger.Error("Create program error: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "program created successfully",
		"id":      id,
	})
}

func (h *ProgramHandlers) ListPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := h.programService.ListPrograms(r.Context())
	if err != nil {
		logger.Error("List programs error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, programs)
}

func (h *ProgramHandlers) GetProgram(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, 2)
	if err != nil {
		http.Error(w, "invalid program ID", http.StatusBadRequest)
		return
	}

	program, err := h.programService.GetProgram(r.Context(), id)
	if err != nil {
		http.Error(w, "program not found", storeErrorStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, program)
}

func (h *ProgramHandlers) UpdateProgram(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, 2)
	if err != nil {
		http.Error(w, "invalid program ID", http.StatusBadRequest)
		return
	}

	var req models.UpdateProgramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.programService.UpdateProgram(r.Context(), id, &req); err != nil {
		logger.Error("Update program %d error: %v", id, err)
		http.Error(w, err.Error(), storeErrorStatus(err))
		return
	}

	writeMessage(w, http.StatusOK, "program updated successfully")
}

func (h *ProgramHandlers) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, 2)
	if err != nil {
		http.Error(w, "invalid program ID", http.StatusBadRequest)
		return
	}

	var req models.ProgramProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.programService.UpdateProgress(r.Context(), id, &req); err != nil {
		logger.Error("Update program %d progress error: %v", id, err)
		http.Error(w, err.Error(), storeErrorStatus(err))
		return
	}

	writeMessage(w, http.StatusOK, "progress updated successfully")
}

func (h *ProgramHandlers) AddParticipant(w http.ResponseWriter, r *http.Request) {
	var req models.ProgramMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.programService.AddParticipant(r.Context(), &req); err != nil {
		logger.Error("Add program participant error: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeMessage(w, http.StatusOK, "participant added to program")
}

func (h *ProgramHandlers) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	var req models.ProgramMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.programService.RemoveParticipant(r.Context(), &req); err != nil {
		logger.Error("Remove program participant error: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeMessage(w, http.StatusOK, "participant removed from program")
}

func (h *ProgramHandlers) ListProgramMembers(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, 2)
	if err != nil {
		http.Error(w, "invalid program ID", http.StatusBadRequest)
		return
	}

	members, err := h.programService.ListProgramMembers(r.Context(), id)
	if err != nil {
		logger.Error("List program %d members error: %v", id, err)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, members)
}

func (h *ProgramHandlers) ListProgramsByProfessional(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, 3)
	if err != nil {
		http.Error(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	programs, err := h.programService.ListProgramsByProfessional(r.Context(), userID)
	if err != nil {
		logger.Error("List professional programs error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, programs)
}

func (h *ProgramHandlers) ListProgramsByParticipant(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, 3)
	if err != nil {
		http.Error(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	programs, err := h.programService.ListProgramsByParticipant(r.Context(), userID)
	if err != nil {
		logger.Error("List participant programs error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, programs)
}

func (h *ProgramHandlers) DeleteProgram(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, 2)
	if err != nil {
		http.Error(w, "invalid program ID", http.StatusBadRequest)
		return
	}

	if err := h.programService.DeleteProgram(r.Context(), id); err != nil {
		logger.Error("Delete program %d error: %v", id, err)
		http.Error(w, "failed to delete program", storeErrorStatus(err))
		return
	}

	writeMessage(w, http.StatusOK, "program deleted successfully")
}
