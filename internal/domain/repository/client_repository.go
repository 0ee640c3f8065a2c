package repository

import (
	"context"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/entity"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/pkg/pagination"
)

// ClientRepository defines the interface for client data operations.
// Reads preload the client's contact and vehicles.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id uint) (*entity.Client, error)
	GetByIdentified(ctx context.Context, identified string) (*entity.Client, error)
	GetByIDs(ctx context.Context, ids []uint) ([]entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Client, int64, error)
	Count(ctx context.Context) (int64, error)

	AddVehicle(ctx context.Context, vehicle *entity.ClientVehicle) error
	GetVehicleByID(ctx context.Context, id uint) (*entity.ClientVehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *entity.ClientVehicle) error
	DeleteVehicle(ctx context.Context, id uint) error
}
