package handler

import (
	"strconv"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/application/service"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/enum"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/presentation/http/dto/request"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// AppointmentHandler handles appointment-related HTTP requests
type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// Create handles appointment creation
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req request.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	appointment, err := h.appointmentService.CreateAppointment(c.Request.Context(), &service.CreateAppointmentInput{
		ClientID:    req.ClientID,
		VehicleID:   req.VehicleID,
		MechanicID:  req.MechanicID,
		ScheduledAt: req.ScheduledAt,
		Notes:       req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Appointment created successfully", appointment)
}

// Get handles fetching a single appointment
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid appointment id")
		return
	}

	appointment, err := h.appointmentService.GetAppointment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment retrieved successfully", appointment)
}

// List handles listing appointments
func (h *AppointmentHandler) List(c *gin.Context) {
	params := ParsePagination(c)

	var status *enum.AppointmentStatus
	if raw := c.Query("status"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil {
			s := enum.AppointmentStatus(value)
			status = &s
		}
	}

	result, err := h.appointmentService.ListAppointments(c.Request.Context(), params, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Appointments retrieved successfully", result)
}

// Upcoming handles listing the next scheduled visits
func (h *AppointmentHandler) Upcoming(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	appointments, err := h.appointmentService.ListUpcoming(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Upcoming appointments retrieved successfully", appointments)
}

// Update handles appointment updates
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid appointment id")
		return
	}

	var req request.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateAppointmentInput{
		ID:          id,
		MechanicID:  req.MechanicID,
		ScheduledAt: req.ScheduledAt,
		Notes:       req.Notes,
	}
	if req.Status != nil {
		status := enum.AppointmentStatus(*req.Status)
		input.Status = &status
	}

	appointment, err := h.appointmentService.UpdateAppointment(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment updated successfully", appointment)
}

// Delete handles appointment deletion
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid appointment id")
		return
	}

	if err := h.appointmentService.DeleteAppointment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment deleted successfully", nil)
}
