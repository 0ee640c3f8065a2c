package repository

import (
	"context"
	"time"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/entity"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/pkg/pagination"
	"github.com/shopspring/decimal"
)

// InvoiceRepository defines the interface for invoice persistence.
// Create persists the header and its detail lines in one transaction;
// reads always preload the detail lines, which remain the system of
// record for every consolidated view.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uint) (*entity.Invoice, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Invoice, int64, error)
	ListAll(ctx context.Context) ([]entity.Invoice, error)
	ListByClient(ctx context.Context, clientID uint) ([]entity.Invoice, error)
	Count(ctx context.Context) (int64, error)
	SumTotalsSince(ctx context.Context, since time.Time) (decimal.Decimal, error)
}
