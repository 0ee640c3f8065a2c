package service

import (
	"context"
	"fmt"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/entity"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/pkg/printer"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// PrinterService handles receipt formatting and thermal printing.
type PrinterService struct {
	printer        printer.Printer
	invoiceService *InvoiceService
	printerType    string
	log            *logrus.Logger
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, invoiceService *InvoiceService, printerType string, log *logrus.Logger) *PrinterService {
	return &PrinterService{
		printer:        p,
		invoiceService: invoiceService,
		printerType:    printerType,
		log:            log,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer.
// Returns the receipt data so the handler can return it as JSON when printer is disabled.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			WorkshopName: "PRINTER TEST",
			Address:      "Test Address",
			Phone:        "+58 000 000 0000",
		},
		InvoiceNo: "TEST-001",
		Date:      "Test Date",
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Quantity: 1, UnitPrice: 10.00, Total: 10.00},
			{Name: "Test Item 2", Quantity: 2, UnitPrice: 5.00, Total: 10.00},
		},
		SubTotal: 20.00,
		Total:    20.00,
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}

// PrintInvoiceReceipt fetches a consolidated invoice and prints its receipt.
// The printed ticket shows the consolidated view, one line per distinct
// service and piece, exactly as the client sees it on screen.
func (s *PrinterService) PrintInvoiceReceipt(ctx context.Context, invoiceID uint) (*entity.Receipt, error) {
	invoice, err := s.invoiceService.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			WorkshopName: "Taller Mecanico",
		},
		InvoiceNo: fmt.Sprintf("INV-%06d", invoice.ID),
		Date:      invoice.CreatedAt.Format("2006-01-02 15:04"),
		SubTotal:  invoice.Detail.Subtotal.InexactFloat64(),
		Extra:     invoice.Detail.Extra.InexactFloat64(),
		Total:     invoice.Total.InexactFloat64(),
	}
	if invoice.Client != nil {
		receipt.Client = invoice.Client.DisplayName()
	}

	for _, line := range invoice.DetailLines {
		if line.HasService() {
			name, price := line.ServiceSnapshot()
			receipt.Items = append(receipt.Items, entity.ReceiptItem{
				Name:      name,
				Quantity:  1,
				UnitPrice: price.InexactFloat64(),
				Total:     price.InexactFloat64(),
			})
		}
		if line.HasPiece() {
			name, price := line.PieceSnapshot()
			amount := line.Amount
			if amount <= 0 {
				amount = 1
			}
			receipt.Items = append(receipt.Items, entity.ReceiptItem{
				Name:      name,
				Quantity:  amount,
				UnitPrice: price.InexactFloat64(),
				Total:     price.Mul(decimal.NewFromInt(int64(amount))).InexactFloat64(),
			})
		}
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		s.log.WithError(err).WithField("invoice_id", invoiceID).Error("printer error")
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(32) // 58mm paper = 32 chars

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.WorkshopName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.TaxID != "" {
		doc.TextF("Tax ID: %s", r.Header.TaxID)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Invoice info
	doc.KeyValue("Invoice:", r.InvoiceNo).
		KeyValue("Date:", r.Date)

	if r.Client != "" {
		doc.KeyValue("Client:", r.Client)
	}

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %.2f each", item.UnitPrice)
		}
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", fmt.Sprintf("%.2f", r.SubTotal))
	if r.Extra > 0 {
		doc.KeyValue("Extra:", fmt.Sprintf("%.2f", r.Extra))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", r.Total)).
		SetBold(false)

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you for your visit!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
