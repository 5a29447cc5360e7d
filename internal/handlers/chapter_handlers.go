package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"rehab-app/internal/database"
	"rehab-app/internal/models"
	"rehab-app/pkg/logger"
)

type ChapterHandlers struct {
	db database.Database
}

func NewChapterHandlers(db database.Database) *ChapterHandlers {
	return &ChapterHandlers{db: db}
}

func (h *ChapterHandlers) CreateChapter(w http.ResponseWriter, r *http.Request) {
	var req models.CreateChapterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.ProgramID == 0 || req.Name == "" {
		http.Error(w, "program_id and name are required", http.StatusBadRequest)
		return
	}

	id, err := h.db.CreateChapter(r.Context(), &req)
	if err != nil {
		logger.Error("Create chapter error: %v", err)
		http.Error(w, "failed to create chapter", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "chapter created successfully",
		"id":      id,
	})
}

func (h *ChapterHandlers) ListChapters(w http.ResponseWriter, r *http.Request) {
	programID, err := pathID(r, 3)
	if err != nil {
		http.Error(w, "invalid program ID", http.StatusBadRequest)
		return
	}

	chapters, err := h.db.ListChapters(r.Context(), programID)
	if err != nil {
		logger.Error("List chapters error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, chapters)
}

func (h *ChapterHandlers) UpdateChapter(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, 2)
	if err != nil {
		http.Error(w, "invalid chapter ID", http.StatusBadRequest)
		return
	}

	var req models.UpdateChapterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.db.UpdateChapter(r.Context(), id, &req); err != nil {
		logger.Error("Update chapter %d error: %v", id, err)
		http.Error(w, "failed to update chapter", storeErrorStatus(err))
		return
	}

	writeMessage(w, http.StatusOK, "chapter updated successfully")
}

func (h *ChapterHandlers) DeleteChapter(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, 2)
	if err != nil {
		http.Error(w, "invalid chapter ID", http.StatusBadRequest)
		return
	}

	if err := h.db.DeleteChapter(r.Context(), id); err != nil {
		logger.Error("Delete chapter %d error: %v", id, err)
		http.Error(w, "failed to delete chapter", storeErrorStatus(err))
		return
	}

	writeMessage(w, http.StatusOK, "chapter deleted successfully")
}

func (h *ChapterHandlers) UpsertProgress(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertChapterProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.ProgramID == 0 || req.UserID == 0 || req.ChapterID == 0 {
		http.Error(w, "program_id, user_id and chapter_id are required", http.StatusBadRequest)
		return
	}
	switch req.Status {
	case models.ChapterNotStarted, models.ChapterInProgress, models.ChapterCompleted:
	default:
		http.Error(w, "invalid progress status", http.StatusBadRequest)
		return
	}

	if err := h.db.UpsertChapterProgress(r.Context(), &req); err != nil {
		logger.Error("Upsert chapter progress error: %v", err)
		http.Error(w, "failed to save progress", http.StatusInternalServerError)
		return
	}

	writeMessage(w, http.StatusOK, "progress saved successfully")
}

func (h *ChapterHandlers) ListChaptersWithProgress(w http.ResponseWriter, r *http.Request) {
	programID, err := pathID(r, 3)
	if err != nil {
		http.Error(w, "invalid program ID", http.StatusBadRequest)
		return
	}
	userID, err := pathID(r, 4)
	if err != nil {
		http.Error(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	chapters, err := h.db.ListChaptersWithProgress(r.Context(), programID, userID)
	if err != nil {
		logger.Error("List chapters with progress error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, chapters)
}

func (h *ChapterHandlers) GetLastProgress(w http.ResponseWriter, r *http.Request) {
	programID, err := pathID(r, 3)
	if err != nil {
		http.Error(w, "invalid program ID", http.StatusBadRequest)
		return
	}
	userID, err := pathID(r, 4)
	if err != nil {
		http.Error(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	progress, err := h.db.GetLastChapterProgress(r.Context(), programID, userID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			writeJSON(w, http.StatusOK, nil)
			return
		}
		logger.Error("Get last chapter progress error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, progress)
}

func (h *ChapterHandlers) ListProgressForProgram(w http.ResponseWriter, r *http.Request) {
	programID, err := pathID(r, 3)
	if err != nil {
		http.Error(w, "invalid program ID", http.StatusBadRequest)
		return
	}

	progress, err := h.db.ListProgressForProgram(r.Context(), programID)
	if err != nil {
		logger.Error("List program progress error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, progress)
}

func (h *ChapterHandlers) ListProgressEntries(w http.ResponseWriter, r *http.Request) {
	programID, err := pathID(r, 3)
	if err != nil {
		http.Error(w, "invalid program ID", http.StatusBadRequest)
		return
	}

	entries, err := h.db.ListChapterProgressForProgram(r.Context(), programID)
	if err != nil {
		logger.Error("List progress entries error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func (h *ChapterHandlers) ListProgressForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, 3)
	if err != nil {
		http.Error(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	progress, err := h.db.ListProgressForUser(r.Context(), userID)
	if err != nil {
		logger.Error("List user progress error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, progress)
}
