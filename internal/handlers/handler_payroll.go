package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/apperrors"
	portssvc "github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/ports/services"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/services"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/dto"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// payrollHandler handles HTTP requests related to attendance, advances and
// salary disbursement.
type payrollHandler struct {
	payrollService portssvc.PayrollSvcFacade
}

// newPayrollHandler creates a new payrollHandler.
func newPayrollHandler(ps portssvc.PayrollSvcFacade) *payrollHandler {
	return &payrollHandler{
		payrollService: ps,
	}
}

// registerPayrollRoutes registers payroll routes, all nested under the staff
// member they concern.
func registerPayrollRoutes(rg *gin.RouterGroup, payrollService portssvc.PayrollSvcFacade) {
	h := newPayrollHandler(payrollService)

	staff := rg.Group("/staff/:staffID")
	{
		staff.PUT("/attendance", h.setAttendance)
		staff.GET("/attendance/:monthYear", h.listMonthAttendance)
		staff.POST("/advances", h.recordAdvance)
		staff.GET("/advances/:monthYear", h.listMonthAdvances)
		staff.GET("/payroll", h.getPayrollBreakdown)
		staff.GET("/salary/status", h.getSalaryStatus)
		staff.POST("/salary/pay", h.paySalary)
		staff.GET("/salary/payments", h.listSalaryPayments)
	}

	advances := rg.Group("/advances")
	{
		advances.DELETE("/:advanceID", h.deleteAdvance)
	}
}

// setAttendance godoc
// @Summary Mark attendance for a day
// @Description Upserts the attendance status for (staff, date); marking twice overwrites
// @Tags payroll
// @Accept  json
// @Produce  json
// @Param   staffID path string true "Staff ID (UUID)"
// @Param   attendance body dto.SetAttendanceRequest true "Date and status"
// @Success 200 {object} dto.AttendanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Staff not found"
// @Failure 500 {object} map[string]string "Failed to set attendance"
// @Security BearerAuth
// @Router /staff/{staffID}/attendance [put]
func (h *payrollHandler) setAttendance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	staffID := c.Param("staffID")

	var req dto.SetAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetAttendance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.payrollService.SetAttendance(c.Request.Context(), ownerID, staffID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to set attendance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set attendance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendanceResponse(record))
}

// listMonthAttendance godoc
// @Summary List a month's attendance
// @Description Retrieves the staff member's attendance rows for a yyyy-MM period
// @Tags payroll
// @Produce  json
// @Param   staffID path string true "Staff ID (UUID)"
// @Param   monthYear path string true "Payroll period (yyyy-MM)"
// @Success 200 {array} dto.AttendanceResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 404 {object} map[string]string "Staff not found"
// @Failure 500 {object} map[string]string "Failed to list attendance"
// @Security BearerAuth
// @Router /staff/{staffID}/attendance/{monthYear} [get]
func (h *payrollHandler) listMonthAttendance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	staffID := c.Param("staffID")
	monthYear := c.Param("monthYear")

	ownerID, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	records, err := h.payrollService.ListMonthAttendance(c.Request.Context(), ownerID, staffID, monthYear)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list attendance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list attendance"})
		}
		return
	}

	resp := make([]dto.AttendanceResponse, 0, len(records))
	for i := range records {
		resp = append(resp, dto.ToAttendanceResponse(&records[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// recordAdvance godoc
// @Summary Record a salary advance
// @Tags payroll
// @Accept  json
// @Produce  json
// @Param   staffID path string true "Staff ID (UUID)"
// @Param   advance body dto.RecordAdvanceRequest true "Advance details"
// @Success 201 {object} dto.AdvanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Staff not found"
// @Failure 500 {object} map[string]string "Failed to record advance"
// @Security BearerAuth
// @Router /staff/{staffID}/advances [post]
func (h *payrollHandler) recordAdvance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	staffID := c.Param("staffID")

	var req dto.RecordAdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	advance, err := h.payrollService.RecordAdvance(c.Request.Context(), ownerID, staffID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record advance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record advance"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToAdvanceResponse(advance))
}

// listMonthAdvances godoc
// @Summary List a month's advances
// @Tags payroll
// @Produce  json
// @Param   staffID path string true "Staff ID (UUID)"
// @Param   monthYear path string true "Payroll period (yyyy-MM)"
// @Success 200 {array} dto.AdvanceResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 404 {object} map[string]string "Staff not found"
// @Failure 500 {object} map[string]string "Failed to list advances"
// @Security BearerAuth
// @Router /staff/{staffID}/advances/{monthYear} [get]
func (h *payrollHandler) listMonthAdvances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	staffID := c.Param("staffID")
	monthYear := c.Param("monthYear")

	ownerID, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	advances, err := h.payrollService.ListMonthAdvances(c.Request.Context(), ownerID, staffID, monthYear)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list advances", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list advances"})
		}
		return
	}

	resp := make([]dto.AdvanceResponse, 0, len(advances))
	for i := range advances {
		resp = append(resp, dto.ToAdvanceResponse(&advances[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// deleteAdvance godoc
// @Summary Delete a salary advance
// @Tags payroll
// @Produce  json
// @Param   advanceID path string true "Advance ID (UUID)"
// @Success 204 "Advance deleted"
// @Failure 404 {object} map[string]string "Advance not found"
// @Failure 500 {object} map[string]string "Failed to delete advance"
// @Security BearerAuth
// @Router /advances/{advanceID} [delete]
func (h *payrollHandler) deleteAdvance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	advanceID := c.Param("advanceID")

	ownerID, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.payrollService.DeleteAdvance(c.Request.Context(), ownerID, advanceID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Advance not found"})
		} else {
			logger.Error("Failed to delete advance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete advance"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// getPayrollBreakdown godoc
// @Summary Get the current month's payroll breakdown
// @Description Computes the payroll statement from attendance and advances; nothing is persisted
// @Tags payroll
// @Produce  json
// @Param   staffID path string true "Staff ID (UUID)"
// @Success 200 {object} dto.PayrollBreakdownResponse
// @Failure 404 {object} map[string]string "Staff not found"
// @Failure 500 {object} map[string]string "Failed to compute breakdown"
// @Security BearerAuth
// @Router /staff/{staffID}/payroll [get]
func (h *payrollHandler) getPayrollBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	staffID := c.Param("staffID")

	ownerID, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	breakdown, err := h.payrollService.GetPayrollBreakdown(c.Request.Context(), ownerID, staffID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
		} else {
			logger.Error("Failed to compute payroll breakdown", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute breakdown"})
		}
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// getSalaryStatus godoc
// @Summary Check the current month's salary status
// @Tags payroll
// @Produce  json
// @Param   staffID path string true "Staff ID (UUID)"
// @Success 200 {object} dto.SalaryStatusResponse
// @Failure 404 {object} map[string]string "Staff not found"
// @Failure 500 {object} map[string]string "Failed to check salary status"
// @Security BearerAuth
// @Router /staff/{staffID}/salary/status [get]
func (h *payrollHandler) getSalaryStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	staffID := c.Param("staffID")

	ownerID, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	status, err := h.payrollService.IsSalaryPaid(c.Request.Context(), ownerID, staffID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
		} else {
			logger.Error("Failed to check salary status", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check salary status"})
		}
		return
	}

	c.JSON(http.StatusOK, status)
}

// paySalary godoc
// @Summary Disburse the current month's salary
// @Description Writes the expense, the payment row and the advance clearing atomically; a repeat call returns 409
// @Tags payroll
// @Accept  json
// @Produce  json
// @Param   staffID path string true "Staff ID (UUID)"
// @Param   payment body dto.PaySalaryRequest true "Amount to disburse"
// @Success 201 {object} dto.SalaryPaymentResponse
// @Failure 400 {object} map[string]string "Invalid input or inactive staff"
// @Failure 404 {object} map[string]string "Staff not found"
// @Failure 409 {object} map[string]string "Salary already paid for this month"
// @Failure 500 {object} map[string]string "Failed to pay salary"
// @Security BearerAuth
// @Router /staff/{staffID}/salary/pay [post]
func (h *payrollHandler) paySalary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	staffID := c.Param("staffID")

	var req dto.PaySalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PaySalary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	payment, err := h.payrollService.PaySalary(c.Request.Context(), ownerID, staffID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSalaryAlreadyPaid):
			c.JSON(http.StatusConflict, gin.H{"error": "Salary already paid for this month"})
		case errors.Is(err, services.ErrStaffInactive):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Staff member is inactive"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to pay salary", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to pay salary"})
		}
		return
	}

	logger.Info("Salary paid", slog.String("staff_id", staffID), slog.String("month_year", payment.MonthYear))
	c.JSON(http.StatusCreated, dto.ToSalaryPaymentResponse(payment))
}

// listSalaryPayments godoc
// @Summary List salary payment history
// @Tags payroll
// @Produce  json
// @Param   staffID path string true "Staff ID (UUID)"
// @Success 200 {array} dto.SalaryPaymentResponse
// @Failure 404 {object} map[string]string "Staff not found"
// @Failure 500 {object} map[string]string "Failed to list salary payments"
// @Security BearerAuth
// @Router /staff/{staffID}/salary/payments [get]
func (h *payrollHandler) listSalaryPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	staffID := c.Param("staffID")

	ownerID, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	payments, err := h.payrollService.ListSalaryPayments(c.Request.Context(), ownerID, staffID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
		} else {
			logger.Error("Failed to list salary payments", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list salary payments"})
		}
		return
	}

	resp := make([]dto.SalaryPaymentResponse, 0, len(payments))
	for i := range payments {
		resp = append(resp, dto.ToSalaryPaymentResponse(&payments[i]))
	}
	c.JSON(http.StatusOK, resp)
}
