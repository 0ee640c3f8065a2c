package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/entity"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/enum"
	domainRepo "github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/repository"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/pkg/pagination"
	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) GetByID(ctx context.Context, id uint) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Vehicle").
		Preload("Mechanic").
		First(&appointment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &appointment, err
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Save(appointment).Error
}

func (r *appointmentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Appointment{}, "id = ?", id).Error
}

func (r *appointmentRepository) List(ctx context.Context, params *pagination.PaginationParams, status *enum.AppointmentStatus) ([]entity.Appointment, int64, error) {
	var appointments []entity.Appointment
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Appointment{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Client").
		Preload("Vehicle").
		Order("scheduled_at DESC").
		Find(&appointments).Error

	return appointments, total, err
}

func (r *appointmentRepository) ListUpcoming(ctx context.Context, from time.Time, limit int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Where("scheduled_at >= ? AND status IN ?", from,
			[]enum.AppointmentStatus{enum.AppointmentStatusPending, enum.AppointmentStatusConfirmed}).
		Preload("Client").
		Preload("Vehicle").
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&appointments).Error
	return appointments, err
}

func (r *appointmentRepository) CountByStatus(ctx context.Context, status enum.AppointmentStatus) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("status = ?", status).
		Count(&total).Error
	return total, err
}
