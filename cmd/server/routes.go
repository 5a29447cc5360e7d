package main

import (
	"net/http"
	"strings"

	"rehab-app/internal/handlers"
)

type routeHandlers struct {
	auth        *handlers.AuthHandlers
	user        *handlers.UserHandlers
	participant *handlers.ParticipantHandlers
	program     *handlers.ProgramHandlers
	chapter     *handlers.ChapterHandlers
	help        *handlers.HelpHandlers
	chat        *handlers.ChatHandlers
	report      *handlers.ReportHandlers
	email       *handlers.EmailHandlers
	ws          *handlers.WebSocketHandlers
}

func setupRoutes(mux *http.ServeMux, h *routeHandlers) {
	mux.HandleFunc("/api/users/register", methodOnly(http.MethodPost, h.auth.Register))
	mux.HandleFunc("/api/users/login", methodOnly(http.MethodPost, h.auth.Login))
	mux.HandleFunc("/api/users", methodOnly(http.MethodGet, h.user.ListUsers))
	mux.HandleFunc("/api/users/", func(w http.ResponseWriter, r *http.Request) {
		parts := pathParts(r)
		switch {
		case len(parts) == 3 && parts[2] == "guardians" && r.Method == http.MethodGet:
			h.user.ListGuardians(w, r)
		case len(parts) == 3 && parts[2] == "professionals" && r.Method == http.MethodGet:
			h.user.ListProfessionals(w, r)
		case len(parts) == 3 && r.Method == http.MethodGet:
			h.user.GetUser(w, r)
		case len(parts) == 3 && r.Method == http.MethodPut:
			h.user.UpdateUser(w, r)
		case len(parts) == 3 && r.Method == http.MethodDelete:
			h.user.DeleteUser(w, r)
		default:
			http.Error(w, "endpoint not found", http.StatusNotFound)
		}
	})

	mux.HandleFunc("/api/rehab/", func(w http.ResponseWriter, r *http.Request) {
		parts := pathParts(r)
		switch {
		case len(parts) == 3 && parts[2] == "participants" && r.Method == http.MethodPost:
			h.participant.CreateParticipant(w, r)
		case len(parts) == 3 && parts[2] == "participants" && r.Method == http.MethodGet:
			h.participant.ListParticipants(w, r)
		case len(parts) == 4 && parts[2] == "participants" && r.Method == http.MethodGet:
			h.participant.GetParticipant(w, r)
		case len(parts) == 4 && parts[2] == "participants" && r.Method == http.MethodPut:
			h.participant.UpdateParticipant(w, r)
		case len(parts) == 4 && parts[2] == "participants" && r.Method == http.MethodDelete:
			h.participant.DeleteParticipant(w, r)
		case len(parts) == 3 && parts[2] == "assign" && r.Method == http.MethodPost:
			h.participant.AssignGuardianAndProfessional(w, r)
		case len(parts) == 3 && parts[2] == "status" && r.Method == http.MethodPut:
			h.participant.UpdateStatus(w, r)
		case len(parts) == 4 && parts[2] == "assigned" && r.Method == http.MethodGet:
			h.participant.ListAssignedParticipants(w, r)
		case len(parts) == 4 && parts[2] == "guardian" && r.Method == http.MethodGet:
			h.participant.ListParticipantsByGuardian(w, r)
		default:
			http.Error(w, "endpoint not found", http.StatusNotFound)
		}
	})

	mux.HandleFunc("/api/programs", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			h.program.CreateProgram(w, r)
		case http.MethodGet:
			h.program.ListPrograms(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/programs/", func(w http.ResponseWriter, r *http.Request) {
		parts := pathParts(r)
		switch {
		case len(parts) == 3 && parts[2] == "add-participant" && r.Method == http.MethodPost:
			h.program.AddParticipant(w, r)
		case len(parts) == 3 && parts[2] == "remove-participant" && r.Method == http.MethodPost:
			h.program.RemoveParticipant(w, r)
		case len(parts) == 4 && parts[2] == "professional" && r.Method == http.MethodGet:
			h.program.ListProgramsByProfessional(w, r)
		case len(parts) == 4 && parts[2] == "participant" && r.Method == http.MethodGet:
			h.program.ListProgramsByParticipant(w, r)
		case len(parts) == 4 && parts[3] == "progress" && r.Method == http.MethodPut:
			h.program.UpdateProgress(w, r)
		case len(parts) == 4 && parts[3] == "members" && r.Method == http.MethodGet:
			h.program.ListProgramMembers(w, r)
		case len(parts) == 3 && r.Method == http.MethodGet:
			h.program.GetProgram(w, r)
		case len(parts) == 3 && r.Method == http.MethodPut:
			h.program.UpdateProgram(w, r)
		case len(parts) == 3 && r.Method == http.MethodDelete:
			h.program.DeleteProgram(w, r)
		default:
			http.Error(w, "endpoint not found", http.StatusNotFound)
		}
	})

	mux.HandleFunc("/api/chapters", methodOnly(http.MethodPost, h.chapter.CreateChapter))
	mux.HandleFunc("/api/chapters/", func(w http.ResponseWriter, r *http.Request) {
		parts := pathParts(r)
		switch {
		case len(parts) == 4 && parts[2] == "program" && r.Method == http.MethodGet:
			h.chapter.ListChapters(w, r)
		case len(parts) == 3 && parts[2] == "progress" && r.Method == http.MethodPost:
			h.chapter.UpsertProgress(w, r)
		case len(parts) == 5 && parts[2] == "progress" && r.Method == http.MethodGet:
			h.chapter.ListChaptersWithProgress(w, r)
		case len(parts) == 5 && parts[2] == "last-progress" && r.Method == http.MethodGet:
			h.chapter.GetLastProgress(w, r)
		case len(parts) == 4 && parts[2] == "program-progress" && r.Method == http.MethodGet:
			h.chapter.ListProgressForProgram(w, r)
		case len(parts) == 4 && parts[2] == "progress-entries" && r.Method == http.MethodGet:
			h.chapter.ListProgressEntries(w, r)
		case len(parts) == 4 && parts[2] == "user-progress" && r.Method == http.MethodGet:
			h.chapter.ListProgressForUser(w, r)
		case len(parts) == 3 && r.Method == http.MethodPut:
			h.chapter.UpdateChapter(w, r)
		case len(parts) == 3 && r.Method == http.MethodDelete:
			h.chapter.DeleteChapter(w, r)
		default:
			http.Error(w, "endpoint not found", http.StatusNotFound)
		}
	})

	mux.HandleFunc("/api/help/", func(w http.ResponseWriter, r *http.Request) {
		parts := pathParts(r)
		switch {
		case len(parts) == 3 && parts[2] == "request-help" && r.Method == http.MethodPost:
			h.help.CreateHelpRequest(w, r)
		case len(parts) == 4 && parts[2] == "guardian" && r.Method == http.MethodGet:
			h.help.ListGuardianHelpRequests(w, r)
		case len(parts) == 3 && parts[2] == "all" && r.Method == http.MethodGet:
			h.help.ListAllHelpRequests(w, r)
		case len(parts) == 3 && parts[2] == "summary" && r.Method == http.MethodGet:
			h.help.GetHelpSummary(w, r)
		case len(parts) == 3 && r.Method == http.MethodPut:
			h.help.UpdateHelpRequest(w, r)
		default:
			http.Error(w, "endpoint not found", http.StatusNotFound)
		}
	})

	mux.HandleFunc("/api/chat", methodOnly(http.MethodPost, h.chat.GetOrCreateChat))
	mux.HandleFunc("/api/chat/", func(w http.ResponseWriter, r *http.Request) {
		parts := pathParts(r)
		switch {
		case len(parts) == 4 && parts[2] == "user" && r.Method == http.MethodGet:
			h.chat.ListUserChats(w, r)
		case len(parts) == 4 && parts[2] == "users" && r.Method == http.MethodGet:
			h.chat.ListChatUsers(w, r)
		case len(parts) == 4 && parts[3] == "messages" && r.Method == http.MethodGet:
			h.chat.GetChatHistory(w, r)
		default:
			http.Error(w, "endpoint not found", http.StatusNotFound)
		}
	})

	mux.HandleFunc("/api/messages", methodOnly(http.MethodPost, h.chat.SendMessage))
	mux.HandleFunc("/api/messages/status", methodOnly(http.MethodPut, h.chat.UpdateMessageStatus))

	mux.HandleFunc("/api/dashboard/summary", methodOnly(http.MethodGet, h.report.DashboardSummary))

	mux.HandleFunc("/api/reports/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		parts := pathParts(r)
		if len(parts) != 3 {
			http.Error(w, "endpoint not found", http.StatusNotFound)
			return
		}
		switch parts[2] {
		case "system-summary":
			h.report.SystemSummary(w, r)
		case "professionals":
			h.report.ProfessionalReport(w, r)
		case "guardians":
			h.report.GuardianReport(w, r)
		case "guardian-participants":
			h.report.GuardianParticipants(w, r)
		case "help-requests":
			h.report.HelpRequestsByDate(w, r)
		case "admissions":
			h.report.AdmissionsByDate(w, r)
		case "chapter-progress":
			h.report.ChapterProgressByDate(w, r)
		default:
			http.Error(w, "endpoint not found", http.StatusNotFound)
		}
	})

	mux.HandleFunc("/api/analytics/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		parts := pathParts(r)
		if len(parts) != 3 {
			http.Error(w, "endpoint not found", http.StatusNotFound)
			return
		}
		switch parts[2] {
		case "status-distribution":
			h.report.StatusDistribution(w, r)
		case "gender-distribution":
			h.report.GenderDistribution(w, r)
		case "condition-analysis":
			h.report.ConditionAnalysis(w, r)
		case "age-demographics":
			h.report.AgeDemographics(w, r)
		case "monthly-admissions":
			h.report.MonthlyAdmissions(w, r)
		case "professional-workload":
			h.report.ProfessionalWorkload(w, r)
		case "guardian-engagement":
			h.report.GuardianEngagement(w, r)
		case "date-range":
			h.report.DateRangeStats(w, r)
		default:
			http.Error(w, "endpoint not found", http.StatusNotFound)
		}
	})

	mux.HandleFunc("/api/email/send-email", methodOnly(http.MethodPost, h.email.SendEmail))

	mux.HandleFunc("/ws", h.ws.HandleWebSocket)
}

func methodOnly(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}

func pathParts(r *http.Request) []string {
	return strings.Split(strings.Trim(r.URL.Path, "/"), "/")
}
