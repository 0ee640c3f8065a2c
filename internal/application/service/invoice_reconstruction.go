package service

import (
	"fmt"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// EditableDetailLine is one row of the invoice edit form. Zero ids mean
// "not set". The line is transient: built here, mutated by the user,
// consumed once by UpdateInvoice, then discarded.
type EditableDetailLine struct {
	ServiceID    uint            `json:"service_id"`
	PieceID      uint            `json:"piece_id"`
	Amount       int             `json:"amount"`
	Description  string          `json:"description"`
	ServiceExtra decimal.Decimal `json:"service_extra"`
	PieceExtra   decimal.Decimal `json:"piece_extra"`
}

// ReconstructionResult carries the rebuilt lines plus any lookup-miss
// warnings. Warnings are never fatal; they tell the user which frozen
// snapshots no longer match a catalog entry.
type ReconstructionResult struct {
	Lines    []EditableDetailLine `json:"lines"`
	Warnings []string             `json:"warnings,omitempty"`
}

// catalogIndex resolves frozen snapshots back to current catalog ids.
// Resolution tries the snapshot's stored catalog id first and falls back
// to exact, case-sensitive name equality for legacy lines without one.
type catalogIndex struct {
	serviceByID   map[uint]*entity.WorkshopService
	serviceByName map[string]*entity.WorkshopService
	pieceByID     map[uint]*entity.Piece
	pieceByName   map[string]*entity.Piece
}

func newCatalogIndex(services []entity.WorkshopService, pieces []entity.Piece) *catalogIndex {
	idx := &catalogIndex{
		serviceByID:   make(map[uint]*entity.WorkshopService, len(services)),
		serviceByName: make(map[string]*entity.WorkshopService, len(services)),
		pieceByID:     make(map[uint]*entity.Piece, len(pieces)),
		pieceByName:   make(map[string]*entity.Piece, len(pieces)),
	}
	for i := range services {
		idx.serviceByID[services[i].ID] = &services[i]
		idx.serviceByName[services[i].Name] = &services[i]
	}
	for i := range pieces {
		idx.pieceByID[pieces[i].ID] = &pieces[i]
		idx.pieceByName[pieces[i].Name] = &pieces[i]
	}
	return idx
}

func (idx *catalogIndex) resolveService(refID uint, name string) (uint, bool) {
	if refID != 0 {
		if svc, ok := idx.serviceByID[refID]; ok {
			return svc.ID, true
		}
	}
	if svc, ok := idx.serviceByName[name]; ok {
		return svc.ID, true
	}
	return 0, false
}

func (idx *catalogIndex) resolvePiece(refID uint, name string) (uint, bool) {
	if refID != 0 {
		if piece, ok := idx.pieceByID[refID]; ok {
			return piece.ID, true
		}
	}
	if piece, ok := idx.pieceByName[name]; ok {
		return piece.ID, true
	}
	return 0, false
}

// ReconstructEditableLines rebuilds the editable detail lines for a
// consolidated invoice against the current catalog. It is the inverse of
// ConsolidateInvoice.
//
// When the original per-line records were retained, each is re-resolved
// individually and extras survive unchanged. Otherwise the lines are
// synthesized from the lossy consolidated view: one line per
// deduplicated name, with the single consolidated extra assigned to the
// first synthesized line only so nothing is charged twice. The result is
// never empty; as a last resort one blank line carries the leftover
// extra so the edit form always has a row.
func ReconstructEditableLines(inv *ConsolidatedInvoice, services []entity.WorkshopService, pieces []entity.Piece) *ReconstructionResult {
	idx := newCatalogIndex(services, pieces)
	result := &ReconstructionResult{}

	if len(inv.DetailLines) > 0 {
		result.Lines = reconstructFromLines(inv.DetailLines, idx, &result.Warnings)
	} else {
		result.Lines = reconstructFromConsolidated(&inv.Detail, idx)
	}

	if len(result.Lines) == 0 {
		result.Lines = []EditableDetailLine{{
			Amount:       1,
			ServiceExtra: decimal.Zero,
			PieceExtra:   inv.Detail.Extra,
		}}
	}

	return result
}

func reconstructFromLines(lines []entity.InvoiceDetailLine, idx *catalogIndex, warnings *[]string) []EditableDetailLine {
	editable := make([]EditableDetailLine, 0, len(lines))

	for i := range lines {
		line := &lines[i]

		var serviceID, pieceID uint
		resolved := false

		if line.HasService() {
			name, _ := line.ServiceSnapshot()
			refID := uint(0)
			if line.ServiceRefID != nil {
				refID = *line.ServiceRefID
			}
			if id, ok := idx.resolveService(refID, name); ok {
				serviceID = id
				resolved = true
			} else {
				*warnings = append(*warnings, fmt.Sprintf("service %q no longer exists in the catalog", name))
			}
		}

		if line.HasPiece() {
			name, _ := line.PieceSnapshot()
			refID := uint(0)
			if line.PieceRefID != nil {
				refID = *line.PieceRefID
			}
			if id, ok := idx.resolvePiece(refID, name); ok {
				pieceID = id
				resolved = true
			} else {
				*warnings = append(*warnings, fmt.Sprintf("piece %q no longer exists in the catalog", name))
			}
		}

		// A line survives only if at least one side resolved.
		if !resolved {
			continue
		}

		description := ""
		if line.Description != nil {
			description = *line.Description
		}

		editable = append(editable, EditableDetailLine{
			ServiceID:    serviceID,
			PieceID:      pieceID,
			Amount:       line.Amount,
			Description:  description,
			ServiceExtra: line.ServiceExtra,
			PieceExtra:   line.PieceExtra,
		})
	}

	return editable
}

// reconstructFromConsolidated is the lossy fallback: per-line extras
// collapsed into one value cannot be recovered, so the whole extra goes
// to the first synthesized line and zero to the rest.
func reconstructFromConsolidated(detail *ConsolidatedDetail, idx *catalogIndex) []EditableDetailLine {
	var editable []EditableDetailLine
	extraAssigned := false

	nextExtra := func() decimal.Decimal {
		if !extraAssigned && detail.Extra.IsPositive() {
			extraAssigned = true
			return detail.Extra
		}
		return decimal.Zero
	}

	for _, snapshot := range detail.PurchasedServices {
		id, ok := idx.resolveService(snapshot.RefID, snapshot.Name)
		if !ok {
			continue
		}
		editable = append(editable, EditableDetailLine{
			ServiceID:    id,
			Amount:       1,
			ServiceExtra: nextExtra(),
			PieceExtra:   decimal.Zero,
		})
	}

	for _, snapshot := range detail.Pieces {
		id, ok := idx.resolvePiece(snapshot.RefID, snapshot.Name)
		if !ok {
			continue
		}
		amount := detail.Amount
		if amount < 1 {
			amount = 1
		}
		if perPiece, ok := detail.PieceAmounts[snapshot.Name]; ok {
			amount = perPiece
		}
		editable = append(editable, EditableDetailLine{
			PieceID:      id,
			Amount:       amount,
			ServiceExtra: decimal.Zero,
			PieceExtra:   nextExtra(),
		})
	}

	return editable
}
