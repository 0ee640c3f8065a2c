package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/entity"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/repository"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/pkg/apperror"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/pkg/pagination"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// InvoiceService handles invoice-related operations
type InvoiceService struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	serviceRepo repository.WorkshopServiceRepository
	pieceRepo   repository.PieceRepository
	log         *logrus.Logger
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	serviceRepo repository.WorkshopServiceRepository,
	pieceRepo repository.PieceRepository,
	log *logrus.Logger,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		serviceRepo: serviceRepo,
		pieceRepo:   pieceRepo,
		log:         log,
	}
}

// InvoiceServiceInput is one purchased service on a new invoice
type InvoiceServiceInput struct {
	ID           uint
	ServiceExtra decimal.Decimal
}

// InvoicePieceInput is one sold piece on a new invoice
type InvoicePieceInput struct {
	ID         uint
	Amount     int
	PieceExtra decimal.Decimal
}

// CreateInvoiceInput represents the create invoice input
type CreateInvoiceInput struct {
	ClientID    uint
	Services    []InvoiceServiceInput
	Pieces      []InvoicePieceInput
	Description *string
}

// CreateInvoice prices the requested services and pieces against the
// current catalog, freezes the snapshots onto detail lines and persists
// the invoice. Piece stock is decremented atomically first and restored
// if the insert fails.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*ConsolidatedInvoice, error) {
	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	if len(input.Services) == 0 && len(input.Pieces) == 0 {
		return nil, apperror.NewBadRequestError("An invoice needs at least one service or piece")
	}

	// Batch fetch catalog rows in one query each (prevents N+1)
	serviceIDs := make([]uint, len(input.Services))
	for i, svc := range input.Services {
		serviceIDs[i] = svc.ID
	}
	pieceIDs := make([]uint, len(input.Pieces))
	for i, piece := range input.Pieces {
		pieceIDs[i] = piece.ID
	}

	services, err := s.serviceRepo.GetByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}
	serviceMap := make(map[uint]*entity.WorkshopService, len(services))
	for i := range services {
		serviceMap[services[i].ID] = &services[i]
	}

	pieces, err := s.pieceRepo.GetByIDs(ctx, pieceIDs)
	if err != nil {
		return nil, err
	}
	pieceMap := make(map[uint]*entity.Piece, len(pieces))
	for i := range pieces {
		pieceMap[pieces[i].ID] = &pieces[i]
	}

	total := decimal.Zero
	lines := make([]entity.InvoiceDetailLine, 0, len(input.Services)+len(input.Pieces))
	stockDecrements := make(map[uint]int)

	for _, in := range input.Services {
		svc, exists := serviceMap[in.ID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Service %d", in.ID))
		}
		refID := svc.ID
		name := svc.Name
		price := svc.Price
		lines = append(lines, entity.InvoiceDetailLine{
			Amount:       1,
			Subtotal:     price,
			ServiceExtra: in.ServiceExtra,
			PieceExtra:   decimal.Zero,
			ServiceRefID: &refID,
			ServiceName:  &name,
			ServicePrice: &price,
		})
		total = total.Add(price).Add(in.ServiceExtra)
	}

	for _, in := range input.Pieces {
		piece, exists := pieceMap[in.ID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Piece %d", in.ID))
		}
		amount := in.Amount
		if amount < 1 {
			amount = 1
		}
		refID := piece.ID
		name := piece.Name
		price := piece.Price
		subtotal := price.Mul(decimal.NewFromInt(int64(amount)))
		lines = append(lines, entity.InvoiceDetailLine{
			Amount:       amount,
			Subtotal:     subtotal,
			ServiceExtra: decimal.Zero,
			PieceExtra:   in.PieceExtra,
			PieceRefID:   &refID,
			PieceName:    &name,
			PiecePrice:   &price,
		})
		total = total.Add(subtotal).Add(in.PieceExtra)
		stockDecrements[piece.ID] += amount
	}

	// The general description lives on the first line; consolidation
	// joins non-empty line descriptions back together for display.
	if input.Description != nil && *input.Description != "" {
		lines[0].Description = input.Description
	}

	// Atomically decrement stock; pieces without enough stock fail the
	// whole operation before anything is written.
	failedIDs, err := s.pieceRepo.AtomicDecrementBatch(ctx, stockDecrements)
	if err != nil {
		return nil, err
	}
	if len(failedIDs) > 0 {
		var failedNames []string
		for _, id := range failedIDs {
			if piece, exists := pieceMap[id]; exists {
				failedNames = append(failedNames, piece.Name)
			}
		}
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Insufficient stock for: %v", failedNames))
	}

	invoice := &entity.Invoice{
		ClientID:    input.ClientID,
		Total:       total,
		DetailLines: lines,
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		// Stock was already decremented, restore it
		if restoreErr := s.pieceRepo.AtomicIncrementBatch(ctx, stockDecrements); restoreErr != nil {
			s.log.WithError(restoreErr).Error("failed to restore piece stock after invoice create failure")
		}
		return nil, err
	}

	return ConsolidateInvoice(invoice, client), nil
}

// GetInvoice returns one invoice as its consolidated view
func (s *InvoiceService) GetInvoice(ctx context.Context, id uint) (*ConsolidatedInvoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	client, err := s.clientRepo.GetByID(ctx, invoice.ClientID)
	if err != nil {
		return nil, err
	}

	return ConsolidateInvoice(invoice, client), nil
}

// ListInvoices returns every invoice consolidated, with the client
// resolved. Invoices whose client no longer exists are skipped with a
// warning, matching how the previous system presented them.
func (s *InvoiceService) ListInvoices(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[*ConsolidatedInvoice], error) {
	invoices, totalCount, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	clientIDs := make([]uint, 0, len(invoices))
	seen := make(map[uint]bool)
	for i := range invoices {
		if !seen[invoices[i].ClientID] {
			seen[invoices[i].ClientID] = true
			clientIDs = append(clientIDs, invoices[i].ClientID)
		}
	}

	clients, err := s.clientRepo.GetByIDs(ctx, clientIDs)
	if err != nil {
		return nil, err
	}
	clientMap := make(map[uint]*entity.Client, len(clients))
	for i := range clients {
		clientMap[clients[i].ID] = &clients[i]
	}

	consolidated := make([]*ConsolidatedInvoice, 0, len(invoices))
	for i := range invoices {
		client, exists := clientMap[invoices[i].ClientID]
		if !exists {
			s.log.WithFields(logrus.Fields{
				"invoice_id": invoices[i].ID,
				"client_id":  invoices[i].ClientID,
			}).Warn("skipping invoice with missing client")
			continue
		}
		consolidated = append(consolidated, ConsolidateInvoice(&invoices[i], client))
	}

	return pagination.NewPaginatedResult(consolidated,
		pagination.NewPagination(params.Page, params.PerPage, totalCount)), nil
}

// ListClientInvoices returns a client's invoices consolidated, plus the
// total spent across them.
func (s *InvoiceService) ListClientInvoices(ctx context.Context, clientID uint) ([]*ConsolidatedInvoice, decimal.Decimal, error) {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if client == nil {
		return nil, decimal.Zero, apperror.NewNotFoundError("Client")
	}

	invoices, err := s.invoiceRepo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	consolidated := make([]*ConsolidatedInvoice, 0, len(invoices))
	totalSpent := decimal.Zero
	for i := range invoices {
		view := ConsolidateInvoice(&invoices[i], client)
		totalSpent = totalSpent.Add(view.Total)
		consolidated = append(consolidated, view)
	}

	return consolidated, totalSpent, nil
}

// GetEditableLines rebuilds the edit-form lines for an invoice against
// the current catalog.
func (s *InvoiceService) GetEditableLines(ctx context.Context, id uint) (*ReconstructionResult, error) {
	view, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	services, err := s.serviceRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	pieces, err := s.pieceRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return ReconstructEditableLines(view, services, pieces), nil
}

// DeleteInvoice removes an invoice and restores the stock of every
// piece line that still resolves to a catalog row.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uint) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}

	restocks := make(map[uint]int)
	for i := range invoice.DetailLines {
		line := &invoice.DetailLines[i]
		if line.PieceRefID != nil && *line.PieceRefID != 0 {
			restocks[*line.PieceRefID] += line.Amount
		}
	}

	if err := s.invoiceRepo.Delete(ctx, id); err != nil {
		return err
	}

	if len(restocks) > 0 {
		if err := s.pieceRepo.AtomicIncrementBatch(ctx, restocks); err != nil {
			s.log.WithError(err).WithField("invoice_id", id).Error("failed to restore piece stock after invoice delete")
		}
	}

	return nil
}

// UpdateInvoiceInput represents the update invoice input
type UpdateInvoiceInput struct {
	ClientID    uint
	Lines       []EditableDetailLine
	Description *string
}

// UpdateInvoice replaces an invoice by deleting it and recreating it
// from the edited lines. The two steps run strictly in sequence and are
// not atomic together: if the delete is rejected nothing changed and
// ErrInvoiceDeleteFailed is returned, but if the recreate fails after a
// successful delete the original invoice is gone and the distinct
// ErrInvoiceReplaceLost is returned so callers can warn that data was
// lost. Concurrent edits of the same invoice are not detected; the
// design assumes one editor per invoice at a time.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, id uint, input *UpdateInvoiceInput) (*ConsolidatedInvoice, error) {
	if err := s.DeleteInvoice(ctx, id); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrInvoiceDeleteFailed, err)
	}

	createInput := &CreateInvoiceInput{
		ClientID:    input.ClientID,
		Description: input.Description,
	}
	for _, line := range input.Lines {
		if line.ServiceID != 0 {
			createInput.Services = append(createInput.Services, InvoiceServiceInput{
				ID:           line.ServiceID,
				ServiceExtra: line.ServiceExtra,
			})
		}
		if line.PieceID != 0 {
			createInput.Pieces = append(createInput.Pieces, InvoicePieceInput{
				ID:         line.PieceID,
				Amount:     line.Amount,
				PieceExtra: line.PieceExtra,
			})
		}
	}

	replacement, err := s.CreateInvoice(ctx, createInput)
	if err != nil {
		s.log.WithError(err).WithField("invoice_id", id).Error("invoice recreate failed after delete; original invoice is lost")
		return nil, fmt.Errorf("%w: %v", apperror.ErrInvoiceReplaceLost, err)
	}

	return replacement, nil
}

// ImportLegacyInvoice ingests an invoice detail document produced by the
// old workshop system. The payload may be a single object or an array,
// with numerics stored as strings; snapshots are kept verbatim and no
// stock is touched.
func (s *InvoiceService) ImportLegacyInvoice(ctx context.Context, clientID uint, rawDetail json.RawMessage) (*ConsolidatedInvoice, error) {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	lines := ParseDetailPayload(rawDetail)
	if len(lines) == 0 {
		return nil, apperror.NewBadRequestError("Invoice detail payload is empty or malformed")
	}
	for i := range lines {
		lines[i].ID = 0
	}

	total := decimal.Zero
	for i := range lines {
		total = total.Add(lines[i].Subtotal).Add(lines[i].ServiceExtra).Add(lines[i].PieceExtra)
	}

	invoice := &entity.Invoice{
		ClientID:    clientID,
		Total:       total,
		DetailLines: lines,
	}
	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	return ConsolidateInvoice(invoice, client), nil
}
