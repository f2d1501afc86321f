package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kerjahub/attendance-backend-go/internal/domain/attendance"
	"github.com/kerjahub/attendance-backend-go/internal/domain/report"
	"github.com/kerjahub/attendance-backend-go/internal/domain/site"
	"github.com/kerjahub/attendance-backend-go/internal/handler/http/response"
	sitesvc "github.com/kerjahub/attendance-backend-go/internal/service/site"
)

type AdminHandler interface {
	ListAttendance(w http.ResponseWriter, r *http.Request)
	GetAttendance(w http.ResponseWriter, r *http.Request)
	UpdateAttendance(w http.ResponseWriter, r *http.Request)
	GetSite(w http.ResponseWriter, r *http.Request)
	UpdateSite(w http.ResponseWriter, r *http.Request)
	MonthlyPDF(w http.ResponseWriter, r *http.Request)
	ExportXLSX(w http.ResponseWriter, r *http.Request)
}

type adminHandlerImpl struct {
	attendanceService attendance.Service
	siteService       sitesvc.Service
	reportService     report.Service
}

func NewAdminHandler(attendanceService attendance.Service, siteService sitesvc.Service, reportService report.Service) AdminHandler {
	return &adminHandlerImpl{
		attendanceService: attendanceService,
		siteService:       siteService,
		reportService:     reportService,
	}
}

// ListAttendance implements AdminHandler.
func (h *adminHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	filter := attendance.ListFilter{}

	if from := r.URL.Query().Get("from"); from != "" {
		filter.From = &from
	}
	if to := r.URL.Query().Get("to"); to != "" {
		filter.To = &to
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.attendanceService.ListAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// GetAttendance implements AdminHandler.
func (h *adminHandlerImpl) GetAttendance(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")

	record, err := h.attendanceService.GetAttendance(r.Context(), docID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if record == nil {
		response.HandleError(w, attendance.ErrRecordNotFound)
		return
	}

	response.Success(w, record)
}

// UpdateAttendance implements AdminHandler.
func (h *adminHandlerImpl) UpdateAttendance(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")

	var req attendance.UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.attendanceService.UpdateAttendance(r.Context(), docID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated successfully", record)
}

// GetSite implements AdminHandler.
func (h *adminHandlerImpl) GetSite(w http.ResponseWriter, r *http.Request) {
	loc, err := h.siteService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if loc == nil {
		response.HandleError(w, site.ErrSiteNotConfigured)
		return
	}

	response.Success(w, loc)
}

// UpdateSite implements AdminHandler.
func (h *adminHandlerImpl) UpdateSite(w http.ResponseWriter, r *http.Request) {
	var req site.UpdateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	loc, err := h.siteService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Site location updated successfully", loc)
}

// MonthlyPDF implements AdminHandler.
func (h *adminHandlerImpl) MonthlyPDF(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	month := r.URL.Query().Get("month")

	if userID == "" {
		response.BadRequest(w, "user_id is required", nil)
		return
	}

	pdfBytes, err := h.reportService.MonthlyPDF(r.Context(), userID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="attendance-%s-%s.pdf"`, userID, month))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}

// ExportXLSX implements AdminHandler.
func (h *adminHandlerImpl) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	filter := attendance.ListFilter{}

	if from := r.URL.Query().Get("from"); from != "" {
		filter.From = &from
	}
	if to := r.URL.Query().Get("to"); to != "" {
		filter.To = &to
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	xlsxBytes, err := h.reportService.ExportXLSX(r.Context(), filter.From, filter.To)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="attendance-export.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(xlsxBytes)
}
