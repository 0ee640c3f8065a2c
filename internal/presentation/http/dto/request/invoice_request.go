package request

import "encoding/json"

// InvoiceServiceItemRequest selects one catalog service for an invoice
type InvoiceServiceItemRequest struct {
	ID           uint    `json:"id" binding:"required"`
	ServiceExtra float64 `json:"service_extra" binding:"min=0"`
}

// InvoicePieceItemRequest selects a quantity of one inventory piece
type InvoicePieceItemRequest struct {
	ID         uint    `json:"id" binding:"required"`
	Amount     int     `json:"amount" binding:"required,gt=0"`
	PieceExtra float64 `json:"piece_extra" binding:"min=0"`
}

// CreateInvoiceRequest represents an invoice creation request
type CreateInvoiceRequest struct {
	ClientID    uint                        `json:"client_id" binding:"required"`
	Services    []InvoiceServiceItemRequest `json:"services" binding:"omitempty,dive"`
	Pieces      []InvoicePieceItemRequest   `json:"pieces" binding:"omitempty,dive"`
	Description *string                     `json:"description"`
}

// UpdateInvoiceLineRequest is one editable line of an invoice update.
// Zero ids mean the line side is detached from the current catalog.
type UpdateInvoiceLineRequest struct {
	ServiceID    uint    `json:"service_id"`
	PieceID      uint    `json:"piece_id"`
	Amount       int     `json:"amount" binding:"required,gt=0"`
	Description  *string `json:"description"`
	ServiceExtra float64 `json:"service_extra" binding:"min=0"`
	PieceExtra   float64 `json:"piece_extra" binding:"min=0"`
}

// UpdateInvoiceRequest represents an invoice replacement request
type UpdateInvoiceRequest struct {
	ClientID    uint                       `json:"client_id" binding:"required"`
	Lines       []UpdateInvoiceLineRequest `json:"lines" binding:"required,min=1,dive"`
	Description *string                    `json:"description"`
}

// ImportLegacyInvoiceRequest carries one invoice exported from the old
// system. Detail is kept raw because legacy payloads are irregular.
type ImportLegacyInvoiceRequest struct {
	ClientID uint            `json:"client_id" binding:"required"`
	Detail   json.RawMessage `json:"detail" binding:"required"`
}

// InvoiceFilterRequest represents invoice list filter parameters
type InvoiceFilterRequest struct {
	Page    int `form:"page"`
	PerPage int `form:"per_page"`
}
