package service

import (
	"encoding/json"
	"testing"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/entity"
	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func uintPtr(u uint) *uint { return &u }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func serviceLine(name, price, subtotal, extra string) entity.InvoiceDetailLine {
	return entity.InvoiceDetailLine{
		Amount:       1,
		Subtotal:     decimal.RequireFromString(subtotal),
		ServiceExtra: decimal.RequireFromString(extra),
		ServiceName:  strPtr(name),
		ServicePrice: decPtr(price),
	}
}

func pieceLine(name, price string, amount int, subtotal, extra string) entity.InvoiceDetailLine {
	return entity.InvoiceDetailLine{
		Amount:     amount,
		Subtotal:   decimal.RequireFromString(subtotal),
		PieceExtra: decimal.RequireFromString(extra),
		PieceName:  strPtr(name),
		PiecePrice: decPtr(price),
	}
}

func TestConsolidateInvoiceEmpty(t *testing.T) {
	invoice := &entity.Invoice{ID: 7}

	got := ConsolidateInvoice(invoice, nil)

	if got.ID != 7 {
		t.Fatalf("expected id 7, got %d", got.ID)
	}
	if !got.Total.IsZero() {
		t.Fatalf("expected zero total, got %s", got.Total)
	}
	if got.Detail.Amount != 0 {
		t.Fatalf("expected zero amount, got %d", got.Detail.Amount)
	}
	if len(got.Detail.Pieces) != 0 || len(got.Detail.PurchasedServices) != 0 {
		t.Fatalf("expected empty snapshot lists, got %d pieces, %d services",
			len(got.Detail.Pieces), len(got.Detail.PurchasedServices))
	}
	if got.Detail.Description != "" {
		t.Fatalf("expected empty description, got %q", got.Detail.Description)
	}
}

func TestConsolidateInvoiceDeduplicatesServices(t *testing.T) {
	invoice := &entity.Invoice{
		ID: 1,
		DetailLines: []entity.InvoiceDetailLine{
			serviceLine("Oil change", "25.00", "25.00", "0"),
			serviceLine("Oil change", "30.00", "30.00", "0"),
			serviceLine("Brake inspection", "15.00", "15.00", "0"),
		},
	}

	got := ConsolidateInvoice(invoice, nil)

	if len(got.Detail.PurchasedServices) != 2 {
		t.Fatalf("expected 2 distinct services, got %d", len(got.Detail.PurchasedServices))
	}
	// First-seen price wins when the same service name repeats.
	if !got.Detail.PurchasedServices[0].Price.Equal(decimal.RequireFromString("25.00")) {
		t.Fatalf("expected first-seen price 25.00, got %s", got.Detail.PurchasedServices[0].Price)
	}
	if got.Detail.PurchasedServices[1].Name != "Brake inspection" {
		t.Fatalf("expected first-seen ordering, got %q second", got.Detail.PurchasedServices[1].Name)
	}
	if !got.Detail.Subtotal.Equal(decimal.RequireFromString("70.00")) {
		t.Fatalf("expected subtotal 70.00, got %s", got.Detail.Subtotal)
	}
}

func TestConsolidateInvoiceSumsPieceAmounts(t *testing.T) {
	invoice := &entity.Invoice{
		ID: 2,
		DetailLines: []entity.InvoiceDetailLine{
			pieceLine("Brake pad", "10.00", 2, "20.00", "0"),
			pieceLine("Brake pad", "10.00", 3, "30.00", "0"),
			pieceLine("Air filter", "8.00", 1, "8.00", "0"),
		},
	}

	got := ConsolidateInvoice(invoice, nil)

	if len(got.Detail.Pieces) != 2 {
		t.Fatalf("expected 2 distinct pieces, got %d", len(got.Detail.Pieces))
	}
	if got.Detail.PieceAmounts["Brake pad"] != 5 {
		t.Fatalf("expected summed amount 5 for brake pads, got %d", got.Detail.PieceAmounts["Brake pad"])
	}
	if got.Detail.Amount != 6 {
		t.Fatalf("expected total amount 6, got %d", got.Detail.Amount)
	}
}

func TestConsolidateInvoiceZeroAmountCountsAsOne(t *testing.T) {
	invoice := &entity.Invoice{
		DetailLines: []entity.InvoiceDetailLine{
			pieceLine("Spark plug", "4.00", 0, "4.00", "0"),
		},
	}

	got := ConsolidateInvoice(invoice, nil)

	if got.Detail.Amount != 1 {
		t.Fatalf("expected zero quantity coerced to 1, got %d", got.Detail.Amount)
	}
}

func TestConsolidateInvoiceJoinsDescriptions(t *testing.T) {
	first := serviceLine("Oil change", "25.00", "25.00", "0")
	first.Description = strPtr("front")
	second := serviceLine("Alignment", "20.00", "20.00", "0")
	third := pieceLine("Bolt", "1.00", 1, "1.00", "0")
	third.Description = strPtr("rear")

	invoice := &entity.Invoice{DetailLines: []entity.InvoiceDetailLine{first, second, third}}

	got := ConsolidateInvoice(invoice, nil)

	if got.Detail.Description != "front | rear" {
		t.Fatalf("expected empty descriptions skipped, got %q", got.Detail.Description)
	}
}

func TestConsolidateInvoiceRecomputesTotal(t *testing.T) {
	invoice := &entity.Invoice{
		// Stored header total is stale on purpose; the lines win.
		Total: decimal.RequireFromString("999.00"),
		DetailLines: []entity.InvoiceDetailLine{
			serviceLine("Diagnostics", "40.00", "40.00", "5.00"),
			pieceLine("Sensor", "12.50", 2, "25.00", "2.50"),
		},
	}

	got := ConsolidateInvoice(invoice, nil)

	want := decimal.RequireFromString("72.50")
	if !got.Total.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, got.Total)
	}
	if !got.Detail.Extra.Equal(decimal.RequireFromString("7.50")) {
		t.Fatalf("expected extra 7.50, got %s", got.Detail.Extra)
	}
}

func TestParseDetailPayloadList(t *testing.T) {
	payload := json.RawMessage(`[
		{"amount": 2, "subtotal": "20.00", "pieces": {"name": "Brake pad", "price": "10.00"}},
		{"subtotal": 25, "description": "full service", "purchasedService": {"name": "Oil change", "price": 25}}
	]`)

	lines := ParseDetailPayload(payload)

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Amount != 2 {
		t.Fatalf("expected amount 2, got %d", lines[0].Amount)
	}
	if !lines[0].HasPiece() || *lines[0].PieceName != "Brake pad" {
		t.Fatalf("expected piece snapshot on first line")
	}
	if !lines[1].HasService() || !lines[1].ServicePrice.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("expected service snapshot with price 25 on second line")
	}
	if lines[1].Description == nil || *lines[1].Description != "full service" {
		t.Fatalf("expected description carried over")
	}
}

func TestParseDetailPayloadBareObject(t *testing.T) {
	payload := json.RawMessage(`{"amount": "3", "subtotal": "15.00", "pieces": {"name": "Fuse", "price": "5.00"}}`)

	lines := ParseDetailPayload(payload)

	if len(lines) != 1 {
		t.Fatalf("expected bare object treated as one-element list, got %d lines", len(lines))
	}
	if lines[0].Amount != 3 {
		t.Fatalf("expected string quantity coerced to 3, got %d", lines[0].Amount)
	}
}

func TestParseDetailPayloadMalformedValues(t *testing.T) {
	payload := json.RawMessage(`{"amount": "garbage", "subtotal": "not-a-number"}`)

	lines := ParseDetailPayload(payload)

	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Amount != 1 {
		t.Fatalf("expected unparseable quantity defaulting to 1, got %d", lines[0].Amount)
	}
	if !lines[0].Subtotal.IsZero() {
		t.Fatalf("expected unparseable subtotal coerced to zero, got %s", lines[0].Subtotal)
	}
}

func TestParseDetailPayloadEmpty(t *testing.T) {
	for _, raw := range []string{"", "null", "   "} {
		if lines := ParseDetailPayload(json.RawMessage(raw)); lines != nil {
			t.Fatalf("expected nil for %q, got %d lines", raw, len(lines))
		}
	}
}
