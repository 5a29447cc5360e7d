package handlers

import (
	"context"
	"net/http"

	"rehab-app/internal/database"
	"rehab-app/internal/models"
	"rehab-app/pkg/logger"
)

type ReportHandlers struct {
	db database.Database
}

func NewReportHandlers(db database.Database) *ReportHandlers {
	return &ReportHandlers{db: db}
}

func (h *ReportHandlers) DashboardSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.db.GetDashboardSummary(r.Context())
	if err != nil {
		logger.Error("Dashboard summary error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *ReportHandlers) SystemSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.db.GetSystemSummary(r.Context())
	if err != nil {
		logger.Error("System summary error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *ReportHandlers) ProfessionalReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.db.GetProfessionalReport(r.Context())
	if err != nil {
		logger.Error("Professional report error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *ReportHandlers) GuardianReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.db.GetGuardianReport(r.Context())
	if err != nil {
		logger.Error("Guardian report error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *ReportHandlers) GuardianParticipants(w http.ResponseWriter, r *http.Request) {
	participants, err := h.db.ListGuardianParticipants(r.Context())
	if err != nil {
		logger.Error("Guardian participants report error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, participants)
}

func (h *ReportHandlers) HelpRequestsByDate(w http.ResponseWriter, r *http.Request) {
	start, end := dateRange(r)
	counts, err := h.db.HelpRequestsByDate(r.Context(), start, end)
	if err != nil {
		logger.Error("Help requests by date error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, counts)
}

func (h *ReportHandlers) AdmissionsByDate(w http.ResponseWriter, r *http.Request) {
	start, end := dateRange(r)
	counts, err := h.db.AdmissionsByDate(r.Context(), start, end)
	if err != nil {
		logger.Error("Admissions by date error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, counts)
}

func (h *ReportHandlers) ChapterProgressByDate(w http.ResponseWriter, r *http.Request) {
	start, end := dateRange(r)
	rows, err := h.db.ChapterProgressByDate(r.Context(), start, end)
	if err != nil {
		logger.Error("Chapter progress report error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, rows)
}

func (h *ReportHandlers) StatusDistribution(w http.ResponseWriter, r *http.Request) {
	h.labelCounts(w, r, h.db.StatusDistribution, "Status distribution")
}

func (h *ReportHandlers) GenderDistribution(w http.ResponseWriter, r *http.Request) {
	h.labelCounts(w, r, h.db.GenderDistribution, "Gender distribution")
}

func (h *ReportHandlers) ConditionAnalysis(w http.ResponseWriter, r *http.Request) {
	h.labelCounts(w, r, h.db.ConditionAnalysis, "Condition analysis")
}

func (h *ReportHandlers) AgeDemographics(w http.ResponseWriter, r *http.Request) {
	h.labelCounts(w, r, h.db.AgeDemographics, "Age demographics")
}

func (h *ReportHandlers) MonthlyAdmissions(w http.ResponseWriter, r *http.Request) {
	counts, err := h.db.MonthlyAdmissions(r.Context())
	if err != nil {
		logger.Error("Monthly admissions error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, counts)
}

func (h *ReportHandlers) ProfessionalWorkload(w http.ResponseWriter, r *http.Request) {
	workload, err := h.db.ProfessionalWorkload(r.Context())
	if err != nil {
		logger.Error("Professional workload error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, workload)
}

func (h *ReportHandlers) GuardianEngagement(w http.ResponseWriter, r *http.Request) {
	engagement, err := h.db.GuardianEngagement(r.Context())
	if err != nil {
		logger.Error("Guardian engagement error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, engagement)
}

func (h *ReportHandlers) DateRangeStats(w http.ResponseWriter, r *http.Request) {
	start, end := dateRange(r)
	if start == "" || end == "" {
		http.Error(w, "start and end dates are required", http.StatusBadRequest)
		return
	}

	stats, err := h.db.DateRangeStats(r.Context(), start, end)
	if err != nil {
		logger.Error("Date range stats error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *ReportHandlers) labelCounts(w http.ResponseWriter, r *http.Request, fetch func(context.Context) ([]*models.LabelCount, error), what string) {
	counts, err := fetch(r.Context())
	if err != nil {
		logger.Error("%s error: %v", what, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, counts)
}

func dateRange(r *http.Request) (string, string) {
	return r.URL.Query().Get("startDate"), r.URL.Query().Get("endDate")
}
