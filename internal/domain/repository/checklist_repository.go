package repository

import (
	"context"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/entity"
)

// ChecklistRepository defines the interface for vehicle checklist
// persistence. Reads preload items and images.
type ChecklistRepository interface {
	Create(ctx context.Context, checklist *entity.VehicleChecklist) error
	GetByID(ctx context.Context, id uint) (*entity.VehicleChecklist, error)
	Delete(ctx context.Context, id uint) error
	ListByAppointment(ctx context.Context, appointmentID uint) ([]entity.VehicleChecklist, error)
	ReplaceItems(ctx context.Context, checklistID uint, items []entity.ChecklistItem) error
	AddImage(ctx context.Context, image *entity.ChecklistImage) error
	DeleteImage(ctx context.Context, id uint) error
}
