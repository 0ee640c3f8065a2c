package service

import (
	"context"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/entity"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/enum"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/repository"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/pkg/apperror"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/pkg/pagination"
)

// ClientService handles client-related operations
type ClientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// VehicleInput represents one vehicle registered with a client
type VehicleInput struct {
	Brand              string
	Model              string
	Year               int
	Plates             string
	EngineDisplacement *string
	Description        *string
}

// CreateClientInput represents the create client input
type CreateClientInput struct {
	FullName    string
	FullSurname string
	Identified  string
	PhoneNumber string
	Email       *string
	Address     *string
	Vehicles    []VehicleInput
}

// CreateClient creates a new client with contact info and vehicles
func (s *ClientService) CreateClient(ctx context.Context, input *CreateClientInput) (*entity.Client, error) {
	existing, err := s.clientRepo.GetByIdentified(ctx, input.Identified)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A client with this identity document already exists")
	}

	client := &entity.Client{
		FullName:    input.FullName,
		FullSurname: input.FullSurname,
		Identified:  input.Identified,
		State:       enum.ClientStateActive,
		Contact: &entity.ClientContact{
			PhoneNumber: input.PhoneNumber,
			Email:       input.Email,
			Address:     input.Address,
		},
	}
	for _, v := range input.Vehicles {
		client.Vehicles = append(client.Vehicles, entity.ClientVehicle{
			Brand:              v.Brand,
			Model:              v.Model,
			Year:               v.Year,
			Plates:             v.Plates,
			EngineDisplacement: v.EngineDisplacement,
			Description:        v.Description,
		})
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetClient returns a client with contact and vehicles preloaded
func (s *ClientService) GetClient(ctx context.Context, id uint) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	return client, nil
}

// ListClients returns clients filtered by a free-text search
func (s *ClientService) ListClients(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Client], error) {
	clients, total, err := s.clientRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(clients,
		pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// UpdateClientInput represents the update client input
type UpdateClientInput struct {
	ID          uint
	FullName    *string
	FullSurname *string
	State       *enum.ClientState
	PhoneNumber *string
	Email       *string
	Address     *string
}

// UpdateClient applies the provided fields to an existing client
func (s *ClientService) UpdateClient(ctx context.Context, input *UpdateClientInput) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	if input.FullName != nil {
		client.FullName = *input.FullName
	}
	if input.FullSurname != nil {
		client.FullSurname = *input.FullSurname
	}
	if input.State != nil {
		client.State = *input.State
	}
	if client.Contact != nil {
		if input.PhoneNumber != nil {
			client.Contact.PhoneNumber = *input.PhoneNumber
		}
		if input.Email != nil {
			client.Contact.Email = input.Email
		}
		if input.Address != nil {
			client.Contact.Address = input.Address
		}
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// DeleteClient removes a client
func (s *ClientService) DeleteClient(ctx context.Context, id uint) error {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return apperror.NewNotFoundError("Client")
	}
	return s.clientRepo.Delete(ctx, id)
}

// AddVehicle registers a new vehicle to an existing client
func (s *ClientService) AddVehicle(ctx context.Context, clientID uint, input *VehicleInput) (*entity.ClientVehicle, error) {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	vehicle := &entity.ClientVehicle{
		ClientID:           clientID,
		Brand:              input.Brand,
		Model:              input.Model,
		Year:               input.Year,
		Plates:             input.Plates,
		EngineDisplacement: input.EngineDisplacement,
		Description:        input.Description,
	}
	if err := s.clientRepo.AddVehicle(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// DeleteVehicle removes a vehicle from a client
func (s *ClientService) DeleteVehicle(ctx context.Context, id uint) error {
	vehicle, err := s.clientRepo.GetVehicleByID(ctx, id)
	if err != nil {
		return err
	}
	if vehicle == nil {
		return apperror.NewNotFoundError("Vehicle")
	}
	return s.clientRepo.DeleteVehicle(ctx, id)
}
