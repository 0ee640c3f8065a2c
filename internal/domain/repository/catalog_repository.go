package repository

import (
	"context"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/entity"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/pkg/pagination"
)

// WorkshopServiceRepository defines the interface for the service catalog
type WorkshopServiceRepository interface {
	Create(ctx context.Context, service *entity.WorkshopService) error
	GetByID(ctx context.Context, id uint) (*entity.WorkshopService, error)
	GetByIDs(ctx context.Context, ids []uint) ([]entity.WorkshopService, error)
	GetByName(ctx context.Context, name string) (*entity.WorkshopService, error)
	Update(ctx context.Context, service *entity.WorkshopService) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.WorkshopService, int64, error)
	ListAll(ctx context.Context) ([]entity.WorkshopService, error)

	CreateCategory(ctx context.Context, category *entity.ServiceCategory) error
	ListCategories(ctx context.Context) ([]entity.ServiceCategory, error)
	DeleteCategory(ctx context.Context, id uint) error
}

// PieceRepository defines the interface for the piece inventory
type PieceRepository interface {
	Create(ctx context.Context, piece *entity.Piece) error
	GetByID(ctx context.Context, id uint) (*entity.Piece, error)
	GetByIDs(ctx context.Context, ids []uint) ([]entity.Piece, error)
	GetByName(ctx context.Context, name string) (*entity.Piece, error)
	Update(ctx context.Context, piece *entity.Piece) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Piece, int64, error)
	ListAll(ctx context.Context) ([]entity.Piece, error)
	ListBelowStock(ctx context.Context, threshold int) ([]entity.Piece, error)
	// AtomicDecrementBatch decrements stock for each piece id. Pieces whose
	// stock would go negative are left untouched and returned as failed ids.
	AtomicDecrementBatch(ctx context.Context, decrements map[uint]int) ([]uint, error)
	// AtomicIncrementBatch restores stock, used to roll back a failed create.
	AtomicIncrementBatch(ctx context.Context, increments map[uint]int) error
}
