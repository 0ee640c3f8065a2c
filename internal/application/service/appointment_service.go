package service

import (
	"context"
	"time"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/entity"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/enum"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/repository"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/pkg/apperror"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/pkg/pagination"
)

// AppointmentService handles workshop appointment scheduling
type AppointmentService struct {
	appointmentRepo repository.AppointmentRepository
	clientRepo      repository.ClientRepository
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(appointmentRepo repository.AppointmentRepository, clientRepo repository.ClientRepository) *AppointmentService {
	return &AppointmentService{appointmentRepo: appointmentRepo, clientRepo: clientRepo}
}

// CreateAppointmentInput represents the create appointment input
type CreateAppointmentInput struct {
	ClientID    uint
	VehicleID   uint
	MechanicID  *uint
	ScheduledAt time.Time
	Notes       *string
}

// CreateAppointment schedules a visit for a registered client vehicle
func (s *AppointmentService) CreateAppointment(ctx context.Context, input *CreateAppointmentInput) (*entity.Appointment, error) {
	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	vehicle, err := s.clientRepo.GetVehicleByID(ctx, input.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil || vehicle.ClientID != input.ClientID {
		return nil, apperror.NewBadRequestError("The vehicle does not belong to this client")
	}

	if input.ScheduledAt.Before(time.Now()) {
		return nil, apperror.NewBadRequestError("Appointments cannot be scheduled in the past")
	}

	appointment := &entity.Appointment{
		ClientID:    input.ClientID,
		VehicleID:   input.VehicleID,
		MechanicID:  input.MechanicID,
		ScheduledAt: input.ScheduledAt,
		Notes:       input.Notes,
		Status:      enum.AppointmentStatusPending,
	}
	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// GetAppointment returns a single appointment with client and vehicle
func (s *AppointmentService) GetAppointment(ctx context.Context, id uint) (*entity.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NewNotFoundError("Appointment")
	}
	return appointment, nil
}

// ListAppointments returns appointments optionally filtered by status
func (s *AppointmentService) ListAppointments(ctx context.Context, params *pagination.PaginationParams, status *enum.AppointmentStatus) (*pagination.PaginatedResult[entity.Appointment], error) {
	appointments, total, err := s.appointmentRepo.List(ctx, params, status)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(appointments,
		pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// ListUpcoming returns the next scheduled visits from now on
func (s *AppointmentService) ListUpcoming(ctx context.Context, limit int) ([]entity.Appointment, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.appointmentRepo.ListUpcoming(ctx, time.Now(), limit)
}

// UpdateAppointmentInput represents the update appointment input
type UpdateAppointmentInput struct {
	ID          uint
	MechanicID  *uint
	ScheduledAt *time.Time
	Notes       *string
	Status      *enum.AppointmentStatus
}

// UpdateAppointment applies the provided fields to an appointment
func (s *AppointmentService) UpdateAppointment(ctx context.Context, input *UpdateAppointmentInput) (*entity.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NewNotFoundError("Appointment")
	}

	if input.MechanicID != nil {
		appointment.MechanicID = input.MechanicID
	}
	if input.ScheduledAt != nil {
		appointment.ScheduledAt = *input.ScheduledAt
	}
	if input.Notes != nil {
		appointment.Notes = input.Notes
	}
	if input.Status != nil {
		appointment.Status = *input.Status
	}

	if err := s.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// DeleteAppointment removes an appointment
func (s *AppointmentService) DeleteAppointment(ctx context.Context, id uint) error {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if appointment == nil {
		return apperror.NewNotFoundError("Appointment")
	}
	return s.appointmentRepo.Delete(ctx, id)
}
