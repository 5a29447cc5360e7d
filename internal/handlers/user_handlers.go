package handlers

import (
	"encoding/json"
	"net/http"

	"rehab-app/internal/database"
	"rehab-app/internal/models"
	"rehab-app/pkg/logger"
)

type UserHandlers struct {
	db database.Database
}

func NewUserHandlers(db database.Database) *UserHandlers {
	return &UserHandlers{db: db}
}

func (h *UserHandlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.db.ListUsers(r.Context())
	if err != nil {
		logger.Error("List users error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandlers) ListGuardians(w http.ResponseWriter, r *http.Request) {
	h.listByRole(w, r, models.RoleGuardian)
}

func (h *UserHandlers) ListProfessionals(w http.ResponseWriter, r *http.Request) {
	h.listByRole(w, r, models.RoleProfessional)
}

func (h *UserHandlers) listByRole(w http.ResponseWriter, r *http.Request, role string) {
	users, err := h.db.ListUsersByRole(r.Context(), role)
	if err != nil {
		logger.Error("List %s users error: %v", role, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandlers) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, 2)
	if err != nil {
		http.Error(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	user, err := h.db.GetUserByID(r.Context(), id)
	if err != nil {
		http.Error(w, "user not found", storeErrorStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, 2)
	if err != nil {
		http.Error(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.db.UpdateUser(r.Context(), id, &req); err != nil {
		logger.Error("Update user %d error: %v", id, err)
		http.Error(w, "failed to update user", storeErrorStatus(err))
		return
	}

	writeMessage(w, http.StatusOK, "user updated successfully")
}

func (h *UserHandlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, 2)
	if err != nil {
		http.Error(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	if err := h.db.DeleteUser(r.Context(), id); err != nil {
		logger.Error("Delete user %d error: %v", id, err)
		http.Error(w, "failed to delete user", storeErrorStatus(err))
		return
	}

	writeMessage(w, http.StatusOK, "user deleted successfully")
}
