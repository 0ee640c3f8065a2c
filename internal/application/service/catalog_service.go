package service

import (
	"context"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/entity"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/repository"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/pkg/apperror"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/pkg/pagination"
	"github.com/shopspring/decimal"
)

// CatalogService handles the workshop service catalog and the piece
// inventory. Invoices snapshot these prices at creation time, so edits
// here never alter existing invoices.
type CatalogService struct {
	serviceRepo repository.WorkshopServiceRepository
	pieceRepo   repository.PieceRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(serviceRepo repository.WorkshopServiceRepository, pieceRepo repository.PieceRepository) *CatalogService {
	return &CatalogService{serviceRepo: serviceRepo, pieceRepo: pieceRepo}
}

// CreateServiceInput represents the create service input
type CreateServiceInput struct {
	Name       string
	Price      decimal.Decimal
	CategoryID *uint
}

// CreateService adds a service to the catalog
func (s *CatalogService) CreateService(ctx context.Context, input *CreateServiceInput) (*entity.WorkshopService, error) {
	existing, err := s.serviceRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A service with this name already exists")
	}

	service := &entity.WorkshopService{
		Name:       input.Name,
		Price:      input.Price,
		CategoryID: input.CategoryID,
	}
	if err := s.serviceRepo.Create(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

// ListServices returns catalog services filtered by name
func (s *CatalogService) ListServices(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.WorkshopService], error) {
	services, total, err := s.serviceRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(services,
		pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// ListAllServices returns the whole current service catalog
func (s *CatalogService) ListAllServices(ctx context.Context) ([]entity.WorkshopService, error) {
	return s.serviceRepo.ListAll(ctx)
}

// UpdateServiceInput represents the update service input
type UpdateServiceInput struct {
	ID         uint
	Name       *string
	Price      *decimal.Decimal
	CategoryID *uint
}

// UpdateService applies the provided fields to a catalog service
func (s *CatalogService) UpdateService(ctx context.Context, input *UpdateServiceInput) (*entity.WorkshopService, error) {
	service, err := s.serviceRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, apperror.NewNotFoundError("Service")
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Price != nil {
		service.Price = *input.Price
	}
	if input.CategoryID != nil {
		service.CategoryID = input.CategoryID
	}

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

// DeleteService removes a service from the catalog. Historical invoices
// keep their frozen snapshots.
func (s *CatalogService) DeleteService(ctx context.Context, id uint) error {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if service == nil {
		return apperror.NewNotFoundError("Service")
	}
	return s.serviceRepo.Delete(ctx, id)
}

// CreateCategory adds a service category
func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*entity.ServiceCategory, error) {
	category := &entity.ServiceCategory{Name: name}
	if err := s.serviceRepo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories returns every service category
func (s *CatalogService) ListCategories(ctx context.Context) ([]entity.ServiceCategory, error) {
	return s.serviceRepo.ListCategories(ctx)
}

// CreatePieceInput represents the create piece input
type CreatePieceInput struct {
	Name  string
	Price decimal.Decimal
	Stock int
}

// CreatePiece adds a piece to the inventory
func (s *CatalogService) CreatePiece(ctx context.Context, input *CreatePieceInput) (*entity.Piece, error) {
	existing, err := s.pieceRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A piece with this name already exists")
	}

	piece := &entity.Piece{
		Name:  input.Name,
		Price: input.Price,
		Stock: input.Stock,
	}
	if err := s.pieceRepo.Create(ctx, piece); err != nil {
		return nil, err
	}
	return piece, nil
}

// ListPieces returns inventory pieces filtered by name
func (s *CatalogService) ListPieces(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Piece], error) {
	pieces, total, err := s.pieceRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(pieces,
		pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// ListAllPieces returns the whole current piece inventory
func (s *CatalogService) ListAllPieces(ctx context.Context) ([]entity.Piece, error) {
	return s.pieceRepo.ListAll(ctx)
}

// UpdatePieceInput represents the update piece input
type UpdatePieceInput struct {
	ID    uint
	Name  *string
	Price *decimal.Decimal
	Stock *int
}

// UpdatePiece applies the provided fields to an inventory piece
func (s *CatalogService) UpdatePiece(ctx context.Context, input *UpdatePieceInput) (*entity.Piece, error) {
	piece, err := s.pieceRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if piece == nil {
		return nil, apperror.NewNotFoundError("Piece")
	}

	if input.Name != nil {
		piece.Name = *input.Name
	}
	if input.Price != nil {
		piece.Price = *input.Price
	}
	if input.Stock != nil {
		piece.Stock = *input.Stock
	}

	if err := s.pieceRepo.Update(ctx, piece); err != nil {
		return nil, err
	}
	return piece, nil
}

// DeletePiece removes a piece from the inventory
func (s *CatalogService) DeletePiece(ctx context.Context, id uint) error {
	piece, err := s.pieceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if piece == nil {
		return apperror.NewNotFoundError("Piece")
	}
	return s.pieceRepo.Delete(ctx, id)
}
