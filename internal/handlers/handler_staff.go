package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/apperrors"
	portssvc "github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/ports/services"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/dto"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// staffHandler handles HTTP requests related to staff.
type staffHandler struct {
	staffService portssvc.StaffSvcFacade
}

// newStaffHandler creates a new staffHandler.
func newStaffHandler(ss portssvc.StaffSvcFacade) *staffHandler {
	return &staffHandler{
		staffService: ss,
	}
}

// registerStaffRoutes registers routes related to staff.
func registerStaffRoutes(rg *gin.RouterGroup, staffService portssvc.StaffSvcFacade) {
	h := newStaffHandler(staffService)

	staff := rg.Group("/staff")
	{
		staff.POST("", h.createStaff)
		staff.GET("", h.listStaff)
		staff.GET("/:staffID", h.getStaffByID)
		staff.PUT("/:staffID", h.updateStaff)
		staff.POST("/:staffID/deactivate", h.deactivateStaff)
		staff.POST("/:staffID/reactivate", h.reactivateStaff)
		staff.DELETE("/:staffID", h.deleteStaff)
	}
}

// createStaff godoc
// @Summary Register a staff member
// @Description Registers a new staff member, active by default
// @Tags staff
// @Accept  json
// @Produce  json
// @Param   staff body dto.CreateStaffRequest true "Staff details"
// @Success 201 {object} dto.StaffResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create staff"
// @Security BearerAuth
// @Router /staff [post]
func (h *staffHandler) createStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateStaff", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	staff, err := h.staffService.CreateStaff(c.Request.Context(), ownerID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create staff in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create staff"})
		}
		return
	}

	logger.Info("Staff created successfully", slog.String("staff_id", staff.StaffID))
	c.JSON(http.StatusCreated, dto.ToStaffResponse(staff))
}

// getStaffByID godoc
// @Summary Get a staff member by ID
// @Tags staff
// @Produce  json
// @Param   staffID path string true "Staff ID (UUID)"
// @Success 200 {object} dto.StaffResponse
// @Failure 404 {object} map[string]string "Staff not found"
// @Failure 500 {object} map[string]string "Failed to retrieve staff"
// @Security BearerAuth
// @Router /staff/{staffID} [get]
func (h *staffHandler) getStaffByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	staffID := c.Param("staffID")

	ownerID, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	staff, err := h.staffService.GetStaffByID(c.Request.Context(), ownerID, staffID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
		} else {
			logger.Error("Failed to get staff from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve staff"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStaffResponse(staff))
}

// listStaff godoc
// @Summary List staff
// @Description Retrieves the tenant's staff; inactive members only when includeInactive is set
// @Tags staff
// @Produce  json
// @Param   includeInactive query bool false "Include deactivated staff"
// @Param   limit query int false "Page size (default 50)"
// @Param   offset query int false "Page offset"
// @Success 200 {array} dto.StaffResponse
// @Failure 500 {object} map[string]string "Failed to list staff"
// @Security BearerAuth
// @Router /staff [get]
func (h *staffHandler) listStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListStaffParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	staff, err := h.staffService.ListStaff(c.Request.Context(), ownerID, params)
	if err != nil {
		logger.Error("Failed to list staff", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list staff"})
		return
	}

	resp := make([]dto.StaffResponse, 0, len(staff))
	for i := range staff {
		resp = append(resp, dto.ToStaffResponse(&staff[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// updateStaff godoc
// @Summary Update a staff member
// @Description Updates staff details; the active flag has dedicated endpoints
// @Tags staff
// @Accept  json
// @Produce  json
// @Param   staffID path string true "Staff ID (UUID)"
// @Param   staff body dto.UpdateStaffRequest true "Fields to update"
// @Success 200 {object} dto.StaffResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Staff not found"
// @Failure 500 {object} map[string]string "Failed to update staff"
// @Security BearerAuth
// @Router /staff/{staffID} [put]
func (h *staffHandler) updateStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	staffID := c.Param("staffID")

	var req dto.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	staff, err := h.staffService.UpdateStaff(c.Request.Context(), ownerID, staffID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update staff", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update staff"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStaffResponse(staff))
}

// deactivateStaff godoc
// @Summary Deactivate a staff member
// @Description Marks the staff member as having left; history is preserved
// @Tags staff
// @Produce  json
// @Param   staffID path string true "Staff ID (UUID)"
// @Success 204 "Staff deactivated"
// @Failure 404 {object} map[string]string "Staff not found"
// @Failure 500 {object} map[string]string "Failed to deactivate staff"
// @Security BearerAuth
// @Router /staff/{staffID}/deactivate [post]
func (h *staffHandler) deactivateStaff(c *gin.Context) {
	h.setActive(c, false, "Failed to deactivate staff")
}

// reactivateStaff godoc
// @Summary Reactivate a staff member
// @Description Reverses a deactivation (rehire)
// @Tags staff
// @Produce  json
// @Param   staffID path string true "Staff ID (UUID)"
// @Success 204 "Staff reactivated"
// @Failure 404 {object} map[string]string "Staff not found"
// @Failure 500 {object} map[string]string "Failed to reactivate staff"
// @Security BearerAuth
// @Router /staff/{staffID}/reactivate [post]
func (h *staffHandler) reactivateStaff(c *gin.Context) {
	h.setActive(c, true, "Failed to reactivate staff")
}

func (h *staffHandler) setActive(c *gin.Context, active bool, failureMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	staffID := c.Param("staffID")

	ownerID, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var err error
	if active {
		err = h.staffService.ReactivateStaff(c.Request.Context(), ownerID, staffID)
	} else {
		err = h.staffService.DeactivateStaff(c.Request.Context(), ownerID, staffID)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
		} else {
			logger.Error(failureMsg, slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": failureMsg})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteStaff godoc
// @Summary Delete a staff member
// @Description Hard-deletes a staff member; payroll history cascades
// @Tags staff
// @Produce  json
// @Param   staffID path string true "Staff ID (UUID)"
// @Success 204 "Staff deleted"
// @Failure 404 {object} map[string]string "Staff not found"
// @Failure 500 {object} map[string]string "Failed to delete staff"
// @Security BearerAuth
// @Router /staff/{staffID} [delete]
func (h *staffHandler) deleteStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	staffID := c.Param("staffID")

	ownerID, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.staffService.DeleteStaff(c.Request.Context(), ownerID, staffID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
		} else {
			logger.Error("Failed to delete staff", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete staff"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
