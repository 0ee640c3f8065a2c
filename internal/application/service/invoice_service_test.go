package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/entity"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/infrastructure/repository"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupInvoiceTestDB(t *testing.T) *gorm.DB {
	// unique in-memory DB per test name to avoid leakage via shared cache
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	err = db.AutoMigrate(
		&entity.Client{},
		&entity.ClientContact{},
		&entity.ClientVehicle{},
		&entity.ServiceCategory{},
		&entity.WorkshopService{},
		&entity.Piece{},
		&entity.Invoice{},
		&entity.InvoiceDetailLine{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newInvoiceTestService(t *testing.T) (*InvoiceService, *gorm.DB) {
	db := setupInvoiceTestDB(t)

	log := logrus.New()
	log.SetOutput(io.Discard)

	svc := NewInvoiceService(
		repository.NewInvoiceRepository(db),
		repository.NewClientRepository(db),
		repository.NewWorkshopServiceRepository(db),
		repository.NewPieceRepository(db),
		log,
	)
	return svc, db
}

func seedInvoiceFixtures(t *testing.T, db *gorm.DB) (client entity.Client, oilChange entity.WorkshopService, brakePad entity.Piece) {
	client = entity.Client{FullName: "Maria", FullSurname: "Gonzalez", Identified: "V-12345678"}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	oilChange = entity.WorkshopService{Name: "Oil change", Price: decimal.RequireFromString("25.00")}
	if err := db.Create(&oilChange).Error; err != nil {
		t.Fatalf("seed service: %v", err)
	}
	brakePad = entity.Piece{Name: "Brake pad", Price: decimal.RequireFromString("10.00"), Stock: 10}
	if err := db.Create(&brakePad).Error; err != nil {
		t.Fatalf("seed piece: %v", err)
	}
	return client, oilChange, brakePad
}

func pieceStock(t *testing.T, db *gorm.DB, id uint) int {
	var piece entity.Piece
	if err := db.First(&piece, id).Error; err != nil {
		t.Fatalf("load piece %d: %v", id, err)
	}
	return piece.Stock
}

func TestCreateInvoiceFreezesSnapshotsAndDecrementsStock(t *testing.T) {
	svc, db := newInvoiceTestService(t)
	client, oilChange, brakePad := seedInvoiceFixtures(t, db)
	ctx := context.Background()

	desc := "front brakes"
	view, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{
		ClientID:    client.ID,
		Services:    []InvoiceServiceInput{{ID: oilChange.ID, ServiceExtra: decimal.RequireFromString("5.00")}},
		Pieces:      []InvoicePieceInput{{ID: brakePad.ID, Amount: 4}},
		Description: &desc,
	})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	// 25 + 5 extra + 4*10
	want := decimal.RequireFromString("70.00")
	if !view.Total.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, view.Total)
	}
	if view.Detail.Description != "front brakes" {
		t.Fatalf("expected description on consolidated view, got %q", view.Detail.Description)
	}
	if got := pieceStock(t, db, brakePad.ID); got != 6 {
		t.Fatalf("expected stock 6 after sale, got %d", got)
	}

	// Raise the catalog price; the frozen snapshot must not move.
	if err := db.Model(&entity.WorkshopService{}).Where("id = ?", oilChange.ID).
		Update("price", decimal.RequireFromString("99.00")).Error; err != nil {
		t.Fatalf("update catalog price: %v", err)
	}
	reread, err := svc.GetInvoice(ctx, view.ID)
	if err != nil {
		t.Fatalf("get invoice: %v", err)
	}
	if !reread.Total.Equal(want) {
		t.Fatalf("expected historical total %s after catalog change, got %s", want, reread.Total)
	}
	if !reread.Detail.PurchasedServices[0].Price.Equal(decimal.RequireFromString("25.00")) {
		t.Fatalf("expected frozen service price 25.00, got %s", reread.Detail.PurchasedServices[0].Price)
	}
}

func TestCreateInvoiceInsufficientStock(t *testing.T) {
	svc, db := newInvoiceTestService(t)
	client, _, brakePad := seedInvoiceFixtures(t, db)
	ctx := context.Background()

	filter := entity.Piece{Name: "Air filter", Price: decimal.RequireFromString("8.00"), Stock: 50}
	if err := db.Create(&filter).Error; err != nil {
		t.Fatalf("seed piece: %v", err)
	}

	_, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{
		ClientID: client.ID,
		Pieces: []InvoicePieceInput{
			{ID: filter.ID, Amount: 2},
			{ID: brakePad.ID, Amount: 11},
		},
	})
	if err == nil {
		t.Fatal("expected insufficient stock error")
	}
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != 400 {
		t.Fatalf("expected bad request, got %v", err)
	}

	// The failed batch must not leave a partial decrement behind.
	if got := pieceStock(t, db, filter.ID); got != 50 {
		t.Fatalf("expected filter stock untouched at 50, got %d", got)
	}
	if got := pieceStock(t, db, brakePad.ID); got != 10 {
		t.Fatalf("expected brake pad stock untouched at 10, got %d", got)
	}

	var count int64
	db.Model(&entity.Invoice{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no invoice persisted, got %d", count)
	}
}

func TestCreateInvoiceRejectsEmptyAndUnknown(t *testing.T) {
	svc, db := newInvoiceTestService(t)
	client, _, _ := seedInvoiceFixtures(t, db)
	ctx := context.Background()

	if _, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{ClientID: client.ID}); err == nil {
		t.Fatal("expected error for invoice without items")
	}
	if _, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{
		ClientID: 9999,
		Services: []InvoiceServiceInput{{ID: 1}},
	}); err == nil {
		t.Fatal("expected error for unknown client")
	}
	if _, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{
		ClientID: client.ID,
		Services: []InvoiceServiceInput{{ID: 9999}},
	}); err == nil {
		t.Fatal("expected error for unknown service")
	}
}

func TestDeleteInvoiceRestoresStock(t *testing.T) {
	svc, db := newInvoiceTestService(t)
	client, _, brakePad := seedInvoiceFixtures(t, db)
	ctx := context.Background()

	view, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{
		ClientID: client.ID,
		Pieces:   []InvoicePieceInput{{ID: brakePad.ID, Amount: 3}},
	})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	if got := pieceStock(t, db, brakePad.ID); got != 7 {
		t.Fatalf("expected stock 7 after sale, got %d", got)
	}

	if err := svc.DeleteInvoice(ctx, view.ID); err != nil {
		t.Fatalf("delete invoice: %v", err)
	}
	if got := pieceStock(t, db, brakePad.ID); got != 10 {
		t.Fatalf("expected stock restored to 10, got %d", got)
	}
	if reread, err := svc.GetInvoice(ctx, view.ID); err == nil && reread != nil {
		t.Fatal("expected invoice gone after delete")
	}
}

func TestUpdateInvoiceReplacesLines(t *testing.T) {
	svc, db := newInvoiceTestService(t)
	client, oilChange, brakePad := seedInvoiceFixtures(t, db)
	ctx := context.Background()

	original, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{
		ClientID: client.ID,
		Pieces:   []InvoicePieceInput{{ID: brakePad.ID, Amount: 2}},
	})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	updated, err := svc.UpdateInvoice(ctx, original.ID, &UpdateInvoiceInput{
		ClientID: client.ID,
		Lines: []EditableDetailLine{
			{ServiceID: oilChange.ID},
			{PieceID: brakePad.ID, Amount: 5},
		},
	})
	if err != nil {
		t.Fatalf("update invoice: %v", err)
	}

	// 25 + 5*10
	want := decimal.RequireFromString("75.00")
	if !updated.Total.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, updated.Total)
	}
	// The original 2 units came back before the new 5 left.
	if got := pieceStock(t, db, brakePad.ID); got != 5 {
		t.Fatalf("expected stock 5 after replacement, got %d", got)
	}

	var count int64
	db.Model(&entity.Invoice{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one invoice after replacement, got %d", count)
	}
}

func TestUpdateInvoiceDeleteFailure(t *testing.T) {
	svc, db := newInvoiceTestService(t)
	client, oilChange, _ := seedInvoiceFixtures(t, db)
	ctx := context.Background()

	_, err := svc.UpdateInvoice(ctx, 9999, &UpdateInvoiceInput{
		ClientID: client.ID,
		Lines:    []EditableDetailLine{{ServiceID: oilChange.ID}},
	})
	if !errors.Is(err, apperror.ErrInvoiceDeleteFailed) {
		t.Fatalf("expected delete-failed sentinel, got %v", err)
	}
	if errors.Is(err, apperror.ErrInvoiceReplaceLost) {
		t.Fatal("delete failure must not report the replace-lost sentinel")
	}
}

func TestUpdateInvoiceReplaceLost(t *testing.T) {
	svc, db := newInvoiceTestService(t)
	client, _, brakePad := seedInvoiceFixtures(t, db)
	ctx := context.Background()

	original, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{
		ClientID: client.ID,
		Pieces:   []InvoicePieceInput{{ID: brakePad.ID, Amount: 1}},
	})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	// The edited lines reference a service that no longer exists, so the
	// recreate step fails after the delete already committed.
	_, err = svc.UpdateInvoice(ctx, original.ID, &UpdateInvoiceInput{
		ClientID: client.ID,
		Lines:    []EditableDetailLine{{ServiceID: 9999}},
	})
	if !errors.Is(err, apperror.ErrInvoiceReplaceLost) {
		t.Fatalf("expected replace-lost sentinel, got %v", err)
	}
	if errors.Is(err, apperror.ErrInvoiceDeleteFailed) {
		t.Fatal("replace failure must not report the delete-failed sentinel")
	}

	// The original invoice is genuinely gone.
	var count int64
	db.Model(&entity.Invoice{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected original invoice lost, got %d invoices", count)
	}
}

func TestImportLegacyInvoiceDoesNotTouchStock(t *testing.T) {
	svc, db := newInvoiceTestService(t)
	client, _, brakePad := seedInvoiceFixtures(t, db)
	ctx := context.Background()

	payload := json.RawMessage(`{
		"amount": "2",
		"subtotal": "20.00",
		"pieces": {"name": "Brake pad", "price": "10.00"},
		"serviceExtra": "0",
		"pieceExtra": "1.50"
	}`)

	view, err := svc.ImportLegacyInvoice(ctx, client.ID, payload)
	if err != nil {
		t.Fatalf("import legacy invoice: %v", err)
	}

	want := decimal.RequireFromString("21.50")
	if !view.Total.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, view.Total)
	}
	if got := pieceStock(t, db, brakePad.ID); got != 10 {
		t.Fatalf("expected import to leave stock untouched, got %d", got)
	}

	if _, err := svc.ImportLegacyInvoice(ctx, client.ID, json.RawMessage(`null`)); err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestListClientInvoicesTotalsSpend(t *testing.T) {
	svc, db := newInvoiceTestService(t)
	client, oilChange, brakePad := seedInvoiceFixtures(t, db)
	ctx := context.Background()

	if _, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{
		ClientID: client.ID,
		Services: []InvoiceServiceInput{{ID: oilChange.ID}},
	}); err != nil {
		t.Fatalf("create first invoice: %v", err)
	}
	if _, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{
		ClientID: client.ID,
		Pieces:   []InvoicePieceInput{{ID: brakePad.ID, Amount: 2}},
	}); err != nil {
		t.Fatalf("create second invoice: %v", err)
	}

	invoices, totalSpent, err := svc.ListClientInvoices(ctx, client.ID)
	if err != nil {
		t.Fatalf("list client invoices: %v", err)
	}
	if len(invoices) != 2 {
		t.Fatalf("expected 2 invoices, got %d", len(invoices))
	}
	want := decimal.RequireFromString("45.00")
	if !totalSpent.Equal(want) {
		t.Fatalf("expected total spent %s, got %s", want, totalSpent)
	}
}
