package handlers

import (
	"encoding/json"
	"net/http"

	"rehab-app/internal/database"
	"rehab-app/internal/mailer"
	"rehab-app/pkg/logger"
)

type EmailHandlers struct {
	mailer *mailer.Mailer
	db     database.Database
}

func NewEmailHandlers(m *mailer.Mailer, db database.Database) *EmailHandlers {
	return &EmailHandlers{mailer: m, db: db}
}

type sendEmailRequest struct {
	GuardianID int    `json:"guardian_id"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
}

// SendEmail mails a guardian on behalf of a professional. The recipient
// address is looked up from the guardian's user record, never taken from
// the request.
func (h *EmailHandlers) SendEmail(w http.ResponseWriter, r *http.Request) {
	var req sendEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.GuardianID == 0 || req.Subject == "" || req.Message == "" {
		http.Error(w, "guardian_id, subject and message are required", http.StatusBadRequest)
		return
	}

	guardian, err := h.db.GetUserByID(r.Context(), req.GuardianID)
	if err != nil {
		http.Error(w, "guardian not found", storeErrorStatus(err))
		return
	}

	if err := h.mailer.Send(guardian.Email, req.Subject, req.Message); err != nil {
		logger.Error("Send email error: %v", err)
		http.Error(w, "failed to send email", http.StatusInternalServerError)
		return
	}

	writeMessage(w, http.StatusOK, "email sent successfully")
}
