package repository

import (
	"context"
	"errors"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/entity"
	domainRepo "github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/repository"
	"gorm.io/gorm"
)

type checklistRepository struct {
	db *gorm.DB
}

// NewChecklistRepository creates a new checklist repository
func NewChecklistRepository(db *gorm.DB) domainRepo.ChecklistRepository {
	return &checklistRepository{db: db}
}

func (r *checklistRepository) Create(ctx context.Context, checklist *entity.VehicleChecklist) error {
	return r.db.WithContext(ctx).Create(checklist).Error
}

func (r *checklistRepository) GetByID(ctx context.Context, id uint) (*entity.VehicleChecklist, error) {
	var checklist entity.VehicleChecklist
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("checklist_items.id ASC")
		}).
		Preload("Images").
		First(&checklist, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &checklist, err
}

func (r *checklistRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.ChecklistItem{}, "checklist_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entity.ChecklistImage{}, "checklist_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.VehicleChecklist{}, "id = ?", id).Error
	})
}

func (r *checklistRepository) ListByAppointment(ctx context.Context, appointmentID uint) ([]entity.VehicleChecklist, error) {
	var checklists []entity.VehicleChecklist
	err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("checklist_items.id ASC")
		}).
		Preload("Images").
		Order("created_at DESC").
		Find(&checklists).Error
	return checklists, err
}

func (r *checklistRepository) ReplaceItems(ctx context.Context, checklistID uint, items []entity.ChecklistItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.ChecklistItem{}, "checklist_id = ?", checklistID).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

func (r *checklistRepository) AddImage(ctx context.Context, image *entity.ChecklistImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *checklistRepository) DeleteImage(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.ChecklistImage{}, "id = ?", id).Error
}
