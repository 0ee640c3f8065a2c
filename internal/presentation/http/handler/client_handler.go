package handler

import (
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/application/service"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/enum"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/presentation/http/dto/request"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ClientHandler handles client-related HTTP requests
type ClientHandler struct {
	clientService *service.ClientService
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientService *service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// Create handles client creation
func (h *ClientHandler) Create(c *gin.Context) {
	var req request.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateClientInput{
		FullName:    req.FullName,
		FullSurname: req.FullSurname,
		Identified:  req.Identified,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address:     req.Address,
	}
	for _, v := range req.Vehicles {
		input.Vehicles = append(input.Vehicles, service.VehicleInput{
			Brand:              v.Brand,
			Model:              v.Model,
			Year:               v.Year,
			Plates:             v.Plates,
			EngineDisplacement: v.EngineDisplacement,
			Description:        v.Description,
		})
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Client created successfully", client)
}

// Get handles fetching a single client
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid client id")
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Client retrieved successfully", client)
}

// List handles listing clients
func (h *ClientHandler) List(c *gin.Context) {
	params := ParsePagination(c)
	search := c.Query("search")

	result, err := h.clientService.ListClients(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Clients retrieved successfully", result)
}

// Update handles client updates
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid client id")
		return
	}

	var req request.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateClientInput{
		ID:          id,
		FullName:    req.FullName,
		FullSurname: req.FullSurname,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address:     req.Address,
	}
	if req.State != nil {
		state := enum.ClientState(*req.State)
		input.State = &state
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Client updated successfully", client)
}

// Delete handles client deletion
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid client id")
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Client deleted successfully", nil)
}

// AddVehicle registers a new vehicle to a client
func (h *ClientHandler) AddVehicle(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid client id")
		return
	}

	var req request.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	vehicle, err := h.clientService.AddVehicle(c.Request.Context(), id, &service.VehicleInput{
		Brand:              req.Brand,
		Model:              req.Model,
		Year:               req.Year,
		Plates:             req.Plates,
		EngineDisplacement: req.EngineDisplacement,
		Description:        req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Vehicle added successfully", vehicle)
}

// DeleteVehicle removes a vehicle from a client
func (h *ClientHandler) DeleteVehicle(c *gin.Context) {
	vehicleID, ok := ParseIDParam(c, "vehicleId")
	if !ok {
		response.BadRequest(c, "Invalid vehicle id")
		return
	}

	if err := h.clientService.DeleteVehicle(c.Request.Context(), vehicleID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vehicle deleted successfully", nil)
}
