package repository

import (
	"context"
	"time"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/entity"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/enum"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/pkg/pagination"
)

// AppointmentRepository defines the interface for appointment data
// operations. Reads preload the client and vehicle.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	GetByID(ctx context.Context, id uint) (*entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *pagination.PaginationParams, status *enum.AppointmentStatus) ([]entity.Appointment, int64, error)
	ListUpcoming(ctx context.Context, from time.Time, limit int) ([]entity.Appointment, error)
	CountByStatus(ctx context.Context, status enum.AppointmentStatus) (int64, error)
}
