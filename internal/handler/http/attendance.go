package http

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wakt-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/wakt-hr/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Process(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ToggleFridayCompLeave(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Process implements AttendanceHandler.
func (h *attendanceHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	var req attendance.ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.ProcessRange(r.Context(), req)
	if err != nil {
		slog.Error("Attendance processing failed", "error", err,
			"startDate", req.StartDate, "endDate", req.EndDate)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance processed", result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.Filter{
		StartDate: r.URL.Query().Get("startDate"),
		EndDate:   r.URL.Query().Get("endDate"),
	}
	if code := r.URL.Query().Get("employeeCode"); code != "" {
		filter.EmployeeCode = &code
	}
	if page := r.URL.Query().Get("page"); page != "" {
		if v, err := strconv.Atoi(page); err == nil {
			filter.Page = v
		}
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		if v, err := strconv.Atoi(limit); err == nil {
			filter.Limit = v
		}
	}

	result, err := h.attendanceService.ListAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Records, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: int(math.Ceil(float64(result.TotalCount) / float64(result.Limit))),
	})
}

// ToggleFridayCompLeave implements AttendanceHandler.
func (h *attendanceHandlerImpl) ToggleFridayCompLeave(w http.ResponseWriter, r *http.Request) {
	var req attendance.ToggleFridayCompLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.RecordID = chi.URLParam(r, "id")

	updated, err := h.attendanceService.ToggleFridayCompLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}
