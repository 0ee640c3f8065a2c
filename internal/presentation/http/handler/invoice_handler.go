package handler

import (
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/application/service"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/presentation/http/dto/request"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
	printerService *service.PrinterService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService, printerService *service.PrinterService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService, printerService: printerService}
}

// Create handles invoice creation
// @Summary Create invoice
// @Description Create an invoice from selected services and pieces
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body request.CreateInvoiceRequest true "Invoice data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if len(req.Services) == 0 && len(req.Pieces) == 0 {
		response.BadRequest(c, "An invoice needs at least one service or piece")
		return
	}

	input := &service.CreateInvoiceInput{
		ClientID:    req.ClientID,
		Description: req.Description,
	}
	for _, s := range req.Services {
		input.Services = append(input.Services, service.InvoiceServiceInput{
			ID:           s.ID,
			ServiceExtra: decimal.NewFromFloat(s.ServiceExtra),
		})
	}
	for _, p := range req.Pieces {
		input.Pieces = append(input.Pieces, service.InvoicePieceInput{
			ID:         p.ID,
			Amount:     p.Amount,
			PieceExtra: decimal.NewFromFloat(p.PieceExtra),
		})
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", invoice)
}

// Get handles fetching a single consolidated invoice
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice id")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}

// List handles listing consolidated invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	params := ParsePagination(c)

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// ListByClient handles listing a client's invoices with their total spend
func (h *InvoiceHandler) ListByClient(c *gin.Context) {
	clientID, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid client id")
		return
	}

	invoices, totalSpent, err := h.invoiceService.ListClientInvoices(c.Request.Context(), clientID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Client invoices retrieved successfully", gin.H{
		"invoices":    invoices,
		"total_spent": totalSpent,
	})
}

// GetEditableLines returns an invoice decomposed into editable lines
// resolved against the current catalog
func (h *InvoiceHandler) GetEditableLines(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice id")
		return
	}

	result, err := h.invoiceService.GetEditableLines(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Editable lines retrieved successfully", result)
}

// Update replaces an invoice with an edited set of lines
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice id")
		return
	}

	var req request.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateInvoiceInput{
		ClientID:    req.ClientID,
		Description: req.Description,
	}
	for _, l := range req.Lines {
		description := ""
		if l.Description != nil {
			description = *l.Description
		}
		input.Lines = append(input.Lines, service.EditableDetailLine{
			ServiceID:    l.ServiceID,
			PieceID:      l.PieceID,
			Amount:       l.Amount,
			Description:  description,
			ServiceExtra: decimal.NewFromFloat(l.ServiceExtra),
			PieceExtra:   decimal.NewFromFloat(l.PieceExtra),
		})
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice updated successfully", invoice)
}

// Delete removes an invoice and restocks its pieces
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice id")
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice deleted successfully", nil)
}

// ImportLegacy ingests one invoice exported from the old system
func (h *InvoiceHandler) ImportLegacy(c *gin.Context) {
	var req request.ImportLegacyInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	invoice, err := h.invoiceService.ImportLegacyInvoice(c.Request.Context(), req.ClientID, req.Detail)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice imported successfully", invoice)
}

// Print sends an invoice receipt to the configured thermal printer
func (h *InvoiceHandler) Print(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice id")
		return
	}

	receipt, err := h.printerService.PrintInvoiceReceipt(c.Request.Context(), id)
	if err != nil {
		// The receipt is still useful when the printer is offline
		if receipt != nil {
			response.OK(c, "Printer unavailable; receipt returned as data", receipt)
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed successfully", receipt)
}

// PrinterStatus reports the thermal printer connection state
func (h *InvoiceHandler) PrinterStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.printerService.GetStatus())
}
