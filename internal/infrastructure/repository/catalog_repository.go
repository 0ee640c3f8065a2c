package repository

import (
	"context"
	"errors"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/entity"
	domainRepo "github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/repository"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/pkg/pagination"
	"gorm.io/gorm"
)

type workshopServiceRepository struct {
	db *gorm.DB
}

// NewWorkshopServiceRepository creates a new service catalog repository
func NewWorkshopServiceRepository(db *gorm.DB) domainRepo.WorkshopServiceRepository {
	return &workshopServiceRepository{db: db}
}

func (r *workshopServiceRepository) Create(ctx context.Context, service *entity.WorkshopService) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *workshopServiceRepository) GetByID(ctx context.Context, id uint) (*entity.WorkshopService, error) {
	var service entity.WorkshopService
	err := r.db.WithContext(ctx).Preload("Category").First(&service, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &service, err
}

func (r *workshopServiceRepository) GetByIDs(ctx context.Context, ids []uint) ([]entity.WorkshopService, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var services []entity.WorkshopService
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&services).Error
	return services, err
}

func (r *workshopServiceRepository) GetByName(ctx context.Context, name string) (*entity.WorkshopService, error) {
	var service entity.WorkshopService
	err := r.db.WithContext(ctx).First(&service, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &service, err
}

func (r *workshopServiceRepository) Update(ctx context.Context, service *entity.WorkshopService) error {
	return r.db.WithContext(ctx).Save(service).Error
}

func (r *workshopServiceRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.WorkshopService{}, "id = ?", id).Error
}

func (r *workshopServiceRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.WorkshopService, int64, error) {
	var services []entity.WorkshopService
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.WorkshopService{})
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Category").
		Order("name ASC").
		Find(&services).Error

	return services, total, err
}

func (r *workshopServiceRepository) ListAll(ctx context.Context) ([]entity.WorkshopService, error) {
	var services []entity.WorkshopService
	err := r.db.WithContext(ctx).Order("name ASC").Find(&services).Error
	return services, err
}

func (r *workshopServiceRepository) CreateCategory(ctx context.Context, category *entity.ServiceCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *workshopServiceRepository) ListCategories(ctx context.Context) ([]entity.ServiceCategory, error) {
	var categories []entity.ServiceCategory
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *workshopServiceRepository) DeleteCategory(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.ServiceCategory{}, "id = ?", id).Error
}
