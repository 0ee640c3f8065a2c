package handler

import (
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/application/service"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/enum"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/presentation/http/dto/request"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ChecklistHandler handles vehicle checklist HTTP requests
type ChecklistHandler struct {
	checklistService *service.ChecklistService
}

// NewChecklistHandler creates a new checklist handler
func NewChecklistHandler(checklistService *service.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{checklistService: checklistService}
}

func toItemInputs(items []request.ChecklistItemRequest) []service.ChecklistItemInput {
	inputs := make([]service.ChecklistItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, service.ChecklistItemInput{
			Label:     item.Label,
			Category:  item.Category,
			Checked:   item.Checked,
			Condition: enum.Condition(item.Condition),
			Notes:     item.Notes,
		})
	}
	return inputs
}

// Create handles checklist creation
func (h *ChecklistHandler) Create(c *gin.Context) {
	var req request.CreateChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	checklist, err := h.checklistService.CreateChecklist(c.Request.Context(), &service.CreateChecklistInput{
		AppointmentID:  req.AppointmentID,
		CheckType:      req.CheckType,
		FuelLevel:      req.FuelLevel,
		Mileage:        req.Mileage,
		GeneralNotes:   req.GeneralNotes,
		TechnicianName: req.TechnicianName,
		Items:          toItemInputs(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Checklist created successfully", checklist)
}

// Get handles fetching a checklist with its condition summary
func (h *ChecklistHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid checklist id")
		return
	}

	checklist, err := h.checklistService.GetChecklist(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Checklist retrieved successfully", checklist)
}

// ListByAppointment handles listing an appointment's checklists
func (h *ChecklistHandler) ListByAppointment(c *gin.Context) {
	appointmentID, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid appointment id")
		return
	}

	checklists, err := h.checklistService.ListChecklistsByAppointment(c.Request.Context(), appointmentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Checklists retrieved successfully", checklists)
}

// UpdateItems replaces a checklist's inspected points
func (h *ChecklistHandler) UpdateItems(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid checklist id")
		return
	}

	var req request.UpdateChecklistItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	checklist, err := h.checklistService.UpdateChecklistItems(c.Request.Context(), id, toItemInputs(req.Items))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Checklist items updated successfully", checklist)
}

// AttachImage attaches an uploaded photo reference to a checklist
func (h *ChecklistHandler) AttachImage(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid checklist id")
		return
	}

	var req request.AttachChecklistImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	image, err := h.checklistService.AttachImage(c.Request.Context(), id, req.ImageURL, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Image attached successfully", image)
}

// Delete handles checklist deletion
func (h *ChecklistHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid checklist id")
		return
	}

	if err := h.checklistService.DeleteChecklist(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Checklist deleted successfully", nil)
}
