package service

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/entity"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/pkg/money"
	"github.com/shopspring/decimal"
)

// CatalogSnapshot is a frozen {name, price} pair inside a consolidated
// view. RefID is the weak back-reference to the catalog row the snapshot
// was taken from; zero for legacy lines imported without one.
type CatalogSnapshot struct {
	RefID uint            `json:"ref_id,omitempty"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ConsolidatedDetail is the aggregated single-object view of an
// invoice's detail lines, shaped the way the UI consumes it.
//
// Amount is the summed quantity of the single piece when exactly one
// distinct piece name exists; with several distinct pieces it is the sum
// across all of them, which collapses differently-quantified pieces into
// one scalar. That is a known limitation carried over from the source
// system; per-piece quantities survive in PieceAmounts.
type ConsolidatedDetail struct {
	Amount            int               `json:"amount"`
	Subtotal          decimal.Decimal   `json:"subtotal"`
	Extra             decimal.Decimal   `json:"extra"`
	Description       string            `json:"description"`
	Pieces            []CatalogSnapshot `json:"pieces"`
	PurchasedServices []CatalogSnapshot `json:"purchased_service"`
	PieceAmounts      map[string]int    `json:"piece_amounts,omitempty"`
}

// ConsolidatedInvoice is the derived read model shown in lists and
// detail views. It is never persisted; the detail lines it retains are
// the system of record and make lossless reconstruction possible.
type ConsolidatedInvoice struct {
	ID          uint                       `json:"id"`
	CreatedAt   time.Time                  `json:"create_at"`
	Client      *entity.Client             `json:"client,omitempty"`
	Total       decimal.Decimal            `json:"total"`
	Detail      ConsolidatedDetail         `json:"invoice_detail"`
	DetailLines []entity.InvoiceDetailLine `json:"detail_lines,omitempty"`
}

type serviceAccumulator struct {
	snapshot CatalogSnapshot
	count    int
}

type pieceAccumulator struct {
	snapshot CatalogSnapshot
	count    int
	amount   int
}

// ConsolidateInvoice folds an invoice's detail lines into one
// ConsolidatedInvoice. Deterministic for a given line order, no side
// effects; an invoice with zero lines yields all-zero aggregates and
// empty lists. The stored header total is ignored and recomputed from
// the lines so the invariant total = subtotal + extra always holds.
func ConsolidateInvoice(invoice *entity.Invoice, client *entity.Client) *ConsolidatedInvoice {
	detail := consolidateLines(invoice.DetailLines)

	return &ConsolidatedInvoice{
		ID:          invoice.ID,
		CreatedAt:   invoice.CreatedAt,
		Client:      client,
		Total:       detail.Subtotal.Add(detail.Extra),
		Detail:      detail,
		DetailLines: invoice.DetailLines,
	}
}

func consolidateLines(lines []entity.InvoiceDetailLine) ConsolidatedDetail {
	totalSubtotal := decimal.Zero
	totalExtra := decimal.Zero
	var descriptionParts []string

	serviceMap := make(map[string]*serviceAccumulator)
	var serviceOrder []string
	pieceMap := make(map[string]*pieceAccumulator)
	var pieceOrder []string

	for i := range lines {
		line := &lines[i]

		totalSubtotal = totalSubtotal.Add(line.Subtotal)
		totalExtra = totalExtra.Add(line.ServiceExtra).Add(line.PieceExtra)

		if line.Description != nil && *line.Description != "" {
			descriptionParts = append(descriptionParts, *line.Description)
		}

		if line.HasService() {
			name, price := line.ServiceSnapshot()
			if existing, ok := serviceMap[name]; ok {
				// First-seen price wins; only the occurrence count grows.
				existing.count++
			} else {
				acc := &serviceAccumulator{count: 1}
				acc.snapshot = CatalogSnapshot{Name: name, Price: price}
				if line.ServiceRefID != nil {
					acc.snapshot.RefID = *line.ServiceRefID
				}
				serviceMap[name] = acc
				serviceOrder = append(serviceOrder, name)
			}
		}

		if line.HasPiece() {
			name, price := line.PieceSnapshot()
			amount := line.Amount
			if amount == 0 {
				amount = 1
			}
			if existing, ok := pieceMap[name]; ok {
				existing.count++
				existing.amount += amount
			} else {
				acc := &pieceAccumulator{count: 1, amount: amount}
				acc.snapshot = CatalogSnapshot{Name: name, Price: price}
				if line.PieceRefID != nil {
					acc.snapshot.RefID = *line.PieceRefID
				}
				pieceMap[name] = acc
				pieceOrder = append(pieceOrder, name)
			}
		}
	}

	services := make([]CatalogSnapshot, 0, len(serviceOrder))
	for _, name := range serviceOrder {
		services = append(services, serviceMap[name].snapshot)
	}

	pieces := make([]CatalogSnapshot, 0, len(pieceOrder))
	totalAmount := 0
	var pieceAmounts map[string]int
	if len(pieceOrder) > 0 {
		pieceAmounts = make(map[string]int, len(pieceOrder))
	}
	for _, name := range pieceOrder {
		acc := pieceMap[name]
		pieces = append(pieces, acc.snapshot)
		pieceAmounts[name] = acc.amount
		totalAmount += acc.amount
	}

	return ConsolidatedDetail{
		Amount:            totalAmount,
		Subtotal:          totalSubtotal,
		Extra:             totalExtra,
		Description:       strings.Join(descriptionParts, " | "),
		Pieces:            pieces,
		PurchasedServices: services,
		PieceAmounts:      pieceAmounts,
	}
}

// rawDetailLine mirrors the loose JSON shape the legacy workshop API
// stored for a detail line. Numeric fields arrive as numbers or strings.
type rawDetailLine struct {
	ID           *uint           `json:"id"`
	Amount       json.RawMessage `json:"amount"`
	Subtotal     money.Amount    `json:"subtotal"`
	Description  string          `json:"description"`
	ServiceExtra money.Amount    `json:"serviceExtra"`
	PieceExtra   money.Amount    `json:"pieceExtra"`

	PurchasedService *rawSnapshot `json:"purchasedService"`
	Pieces           *rawSnapshot `json:"pieces"`
}

type rawSnapshot struct {
	Name  string       `json:"name"`
	Price money.Amount `json:"price"`
}

// ParseDetailPayload normalizes a legacy invoice detail payload into
// detail lines. A bare object is treated as a one-element list, and
// malformed or missing numeric fields coerce to zero rather than
// failing the whole invoice.
func ParseDetailPayload(raw json.RawMessage) []entity.InvoiceDetailLine {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	var rawLines []rawDetailLine
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(raw, &rawLines); err != nil {
			return nil
		}
	} else {
		var single rawDetailLine
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil
		}
		rawLines = []rawDetailLine{single}
	}

	lines := make([]entity.InvoiceDetailLine, 0, len(rawLines))
	for _, rl := range rawLines {
		line := entity.InvoiceDetailLine{
			Amount:       parseAmount(rl.Amount),
			Subtotal:     rl.Subtotal.Decimal,
			ServiceExtra: rl.ServiceExtra.Decimal,
			PieceExtra:   rl.PieceExtra.Decimal,
		}
		if rl.ID != nil {
			line.ID = *rl.ID
		}
		if rl.Description != "" {
			desc := rl.Description
			line.Description = &desc
		}
		if rl.PurchasedService != nil {
			name := rl.PurchasedService.Name
			price := rl.PurchasedService.Price.Decimal
			line.ServiceName = &name
			line.ServicePrice = &price
		}
		if rl.Pieces != nil {
			name := rl.Pieces.Name
			price := rl.Pieces.Price.Decimal
			line.PieceName = &name
			line.PiecePrice = &price
		}
		lines = append(lines, line)
	}

	return lines
}

// parseAmount coerces a quantity that may arrive as a number, a numeric
// string, or garbage. Missing or unparseable values default to 1, the
// way the source system read them.
func parseAmount(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 1
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return 1
	}
	amount := int(money.Parse(v).IntPart())
	if amount <= 0 {
		return 1
	}
	return amount
}
