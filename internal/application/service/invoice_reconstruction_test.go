package service

import (
	"strings"
	"testing"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/entity"
	"github.com/shopspring/decimal"
)

func testCatalog() ([]entity.WorkshopService, []entity.Piece) {
	services := []entity.WorkshopService{
		{ID: 1, Name: "Oil change", Price: decimal.RequireFromString("25.00")},
		{ID: 2, Name: "Brake inspection", Price: decimal.RequireFromString("15.00")},
	}
	pieces := []entity.Piece{
		{ID: 10, Name: "Brake pad", Price: decimal.RequireFromString("10.00"), Stock: 20},
		{ID: 11, Name: "Air filter", Price: decimal.RequireFromString("8.00"), Stock: 5},
	}
	return services, pieces
}

func TestReconstructFromRetainedLines(t *testing.T) {
	services, pieces := testCatalog()

	line := serviceLine("Oil change", "25.00", "25.00", "5.00")
	line.ServiceRefID = uintPtr(1)
	line.Description = strPtr("synthetic oil")
	pc := pieceLine("Brake pad", "10.00", 4, "40.00", "2.00")
	pc.PieceRefID = uintPtr(10)

	inv := &ConsolidatedInvoice{DetailLines: []entity.InvoiceDetailLine{line, pc}}

	got := ReconstructEditableLines(inv, services, pieces)

	if len(got.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", got.Warnings)
	}
	if len(got.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(got.Lines))
	}
	if got.Lines[0].ServiceID != 1 || got.Lines[0].Description != "synthetic oil" {
		t.Fatalf("expected service line resolved with description, got %+v", got.Lines[0])
	}
	if !got.Lines[0].ServiceExtra.Equal(decimal.RequireFromString("5.00")) {
		t.Fatalf("expected per-line extra preserved, got %s", got.Lines[0].ServiceExtra)
	}
	if got.Lines[1].PieceID != 10 || got.Lines[1].Amount != 4 {
		t.Fatalf("expected piece line with amount 4, got %+v", got.Lines[1])
	}
}

func TestReconstructResolvesByNameWithoutRefID(t *testing.T) {
	services, pieces := testCatalog()

	// Legacy line: no catalog back-reference, only the frozen name.
	line := serviceLine("Brake inspection", "15.00", "15.00", "0")

	inv := &ConsolidatedInvoice{DetailLines: []entity.InvoiceDetailLine{line}}

	got := ReconstructEditableLines(inv, services, pieces)

	if len(got.Lines) != 1 || got.Lines[0].ServiceID != 2 {
		t.Fatalf("expected name fallback to resolve service 2, got %+v", got.Lines)
	}
}

func TestReconstructStaleRefIDFallsBackToName(t *testing.T) {
	services, pieces := testCatalog()

	line := pieceLine("Air filter", "8.00", 1, "8.00", "0")
	line.PieceRefID = uintPtr(999)

	inv := &ConsolidatedInvoice{DetailLines: []entity.InvoiceDetailLine{line}}

	got := ReconstructEditableLines(inv, services, pieces)

	if len(got.Lines) != 1 || got.Lines[0].PieceID != 11 {
		t.Fatalf("expected stale ref id resolved by name, got %+v", got.Lines)
	}
}

func TestReconstructLookupMissWarnsAndDropsLine(t *testing.T) {
	services, pieces := testCatalog()

	line := serviceLine("Transmission rebuild", "300.00", "300.00", "0")

	inv := &ConsolidatedInvoice{
		DetailLines: []entity.InvoiceDetailLine{line},
		Detail:      ConsolidatedDetail{Extra: decimal.RequireFromString("4.00")},
	}

	got := ReconstructEditableLines(inv, services, pieces)

	if len(got.Warnings) != 1 || !strings.Contains(got.Warnings[0], "Transmission rebuild") {
		t.Fatalf("expected a lookup-miss warning, got %v", got.Warnings)
	}
	// The result is never empty: a blank line carries the leftover extra.
	if len(got.Lines) != 1 {
		t.Fatalf("expected a fallback blank line, got %d lines", len(got.Lines))
	}
	if got.Lines[0].ServiceID != 0 || got.Lines[0].PieceID != 0 {
		t.Fatalf("expected blank line, got %+v", got.Lines[0])
	}
	if !got.Lines[0].PieceExtra.Equal(decimal.RequireFromString("4.00")) {
		t.Fatalf("expected leftover extra on blank line, got %s", got.Lines[0].PieceExtra)
	}
}

func TestReconstructFromConsolidatedView(t *testing.T) {
	services, pieces := testCatalog()

	inv := &ConsolidatedInvoice{
		Detail: ConsolidatedDetail{
			Amount: 3,
			Extra:  decimal.RequireFromString("6.00"),
			PurchasedServices: []CatalogSnapshot{
				{RefID: 1, Name: "Oil change", Price: decimal.RequireFromString("25.00")},
				{Name: "Brake inspection", Price: decimal.RequireFromString("15.00")},
			},
			Pieces: []CatalogSnapshot{
				{RefID: 10, Name: "Brake pad", Price: decimal.RequireFromString("10.00")},
			},
			PieceAmounts: map[string]int{"Brake pad": 3},
		},
	}

	got := ReconstructEditableLines(inv, services, pieces)

	if len(got.Lines) != 3 {
		t.Fatalf("expected 3 synthesized lines, got %d", len(got.Lines))
	}
	// The collapsed extra lands on the first line only.
	if !got.Lines[0].ServiceExtra.Equal(decimal.RequireFromString("6.00")) {
		t.Fatalf("expected extra on first line, got %s", got.Lines[0].ServiceExtra)
	}
	if !got.Lines[1].ServiceExtra.IsZero() || !got.Lines[2].PieceExtra.IsZero() {
		t.Fatalf("expected zero extra on remaining lines")
	}
	if got.Lines[2].PieceID != 10 || got.Lines[2].Amount != 3 {
		t.Fatalf("expected piece line with per-piece amount, got %+v", got.Lines[2])
	}
}

func TestReconstructConsolidatedSkipsUnresolvable(t *testing.T) {
	services, pieces := testCatalog()

	inv := &ConsolidatedInvoice{
		Detail: ConsolidatedDetail{
			PurchasedServices: []CatalogSnapshot{
				{Name: "Ghost service", Price: decimal.RequireFromString("99.00")},
				{RefID: 2, Name: "Brake inspection", Price: decimal.RequireFromString("15.00")},
			},
		},
	}

	got := ReconstructEditableLines(inv, services, pieces)

	if len(got.Lines) != 1 || got.Lines[0].ServiceID != 2 {
		t.Fatalf("expected only the resolvable service, got %+v", got.Lines)
	}
}
