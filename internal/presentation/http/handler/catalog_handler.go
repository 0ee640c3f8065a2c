package handler

import (
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/application/service"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/presentation/http/dto/request"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CatalogHandler handles service catalog and piece inventory requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// CreateService handles catalog service creation
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req request.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	svc, err := h.catalogService.CreateService(c.Request.Context(), &service.CreateServiceInput{
		Name:       req.Name,
		Price:      decimal.NewFromFloat(req.Price),
		CategoryID: req.CategoryID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Service created successfully", svc)
}

// ListServices handles listing catalog services
func (h *CatalogHandler) ListServices(c *gin.Context) {
	params := ParsePagination(c)
	search := c.Query("search")

	result, err := h.catalogService.ListServices(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Services retrieved successfully", result)
}

// UpdateService handles catalog service updates
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid service id")
		return
	}

	var req request.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateServiceInput{
		ID:         id,
		Name:       req.Name,
		CategoryID: req.CategoryID,
	}
	if req.Price != nil {
		price := decimal.NewFromFloat(*req.Price)
		input.Price = &price
	}

	svc, err := h.catalogService.UpdateService(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service updated successfully", svc)
}

// DeleteService handles catalog service deletion
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid service id")
		return
	}

	if err := h.catalogService.DeleteService(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service deleted successfully", nil)
}

// CreateCategory handles service category creation
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req request.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.catalogService.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Category created successfully", category)
}

// ListCategories handles listing service categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Categories retrieved successfully", categories)
}

// CreatePiece handles inventory piece creation
func (h *CatalogHandler) CreatePiece(c *gin.Context) {
	var req request.CreatePieceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	piece, err := h.catalogService.CreatePiece(c.Request.Context(), &service.CreatePieceInput{
		Name:  req.Name,
		Price: decimal.NewFromFloat(req.Price),
		Stock: req.Stock,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Piece created successfully", piece)
}

// ListPieces handles listing inventory pieces
func (h *CatalogHandler) ListPieces(c *gin.Context) {
	params := ParsePagination(c)
	search := c.Query("search")

	result, err := h.catalogService.ListPieces(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Pieces retrieved successfully", result)
}

// UpdatePiece handles inventory piece updates
func (h *CatalogHandler) UpdatePiece(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid piece id")
		return
	}

	var req request.UpdatePieceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdatePieceInput{
		ID:    id,
		Name:  req.Name,
		Stock: req.Stock,
	}
	if req.Price != nil {
		price := decimal.NewFromFloat(*req.Price)
		input.Price = &price
	}

	piece, err := h.catalogService.UpdatePiece(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Piece updated successfully", piece)
}

// DeletePiece handles inventory piece deletion
func (h *CatalogHandler) DeletePiece(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid piece id")
		return
	}

	if err := h.catalogService.DeletePiece(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Piece deleted successfully", nil)
}
