package repository

import (
	"context"
	"errors"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/entity"
	domainRepo "github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/repository"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/pkg/pagination"
	"gorm.io/gorm"
)

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) domainRepo.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *clientRepository) GetByID(ctx context.Context, id uint) (*entity.Client, error) {
	var client entity.Client
	err := r.db.WithContext(ctx).
		Preload("Contact").
		Preload("Vehicles").
		First(&client, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &client, err
}

func (r *clientRepository) GetByIdentified(ctx context.Context, identified string) (*entity.Client, error) {
	var client entity.Client
	err := r.db.WithContext(ctx).
		Preload("Contact").
		First(&client, "identified = ?", identified).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &client, err
}

func (r *clientRepository) GetByIDs(ctx context.Context, ids []uint) ([]entity.Client, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var clients []entity.Client
	err := r.db.WithContext(ctx).
		Preload("Contact").
		Where("id IN ?", ids).
		Find(&clients).Error
	return clients, err
}

func (r *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(client).Error
}

func (r *clientRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Client{}, "id = ?", id).Error
}

func (r *clientRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Client, int64, error) {
	var clients []entity.Client
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Client{})
	if search != "" {
		query = query.Where("full_name ILIKE ? OR full_surname ILIKE ? OR identified ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Contact").
		Preload("Vehicles").
		Order("full_name ASC").
		Find(&clients).Error

	return clients, total, err
}

func (r *clientRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Client{}).Count(&total).Error
	return total, err
}

func (r *clientRepository) AddVehicle(ctx context.Context, vehicle *entity.ClientVehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

func (r *clientRepository) GetVehicleByID(ctx context.Context, id uint) (*entity.ClientVehicle, error) {
	var vehicle entity.ClientVehicle
	err := r.db.WithContext(ctx).First(&vehicle, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &vehicle, err
}

func (r *clientRepository) UpdateVehicle(ctx context.Context, vehicle *entity.ClientVehicle) error {
	return r.db.WithContext(ctx).Save(vehicle).Error
}

func (r *clientRepository) DeleteVehicle(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.ClientVehicle{}, "id = ?", id).Error
}
