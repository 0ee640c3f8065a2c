package service

import (
	"context"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/entity"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/enum"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/repository"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/pkg/apperror"
)

// ChecklistService handles vehicle reception checklists. Every read
// returns the stored checklist together with its computed condition
// summary so clients never re-implement the scoring rules.
type ChecklistService struct {
	checklistRepo   repository.ChecklistRepository
	appointmentRepo repository.AppointmentRepository
}

// NewChecklistService creates a new checklist service
func NewChecklistService(checklistRepo repository.ChecklistRepository, appointmentRepo repository.AppointmentRepository) *ChecklistService {
	return &ChecklistService{checklistRepo: checklistRepo, appointmentRepo: appointmentRepo}
}

// ChecklistWithSummary pairs a stored checklist with its condition summary
type ChecklistWithSummary struct {
	Checklist *entity.VehicleChecklist `json:"checklist"`
	Summary   ConditionSummary         `json:"summary"`
}

// ChecklistItemInput represents one inspected point
type ChecklistItemInput struct {
	Label     string
	Category  string
	Checked   bool
	Condition enum.Condition
	Notes     *string
}

// CreateChecklistInput represents the create checklist input
type CreateChecklistInput struct {
	AppointmentID  uint
	CheckType      string
	FuelLevel      int
	Mileage        string
	GeneralNotes   *string
	TechnicianName string
	Items          []ChecklistItemInput
}

// CreateChecklist records a vehicle inspection for an appointment
func (s *ChecklistService) CreateChecklist(ctx context.Context, input *CreateChecklistInput) (*ChecklistWithSummary, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, input.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NewNotFoundError("Appointment")
	}

	checklist := &entity.VehicleChecklist{
		AppointmentID:  input.AppointmentID,
		CheckType:      input.CheckType,
		FuelLevel:      input.FuelLevel,
		Mileage:        input.Mileage,
		GeneralNotes:   input.GeneralNotes,
		TechnicianName: input.TechnicianName,
	}
	for _, item := range input.Items {
		checklist.Items = append(checklist.Items, entity.ChecklistItem{
			Label:     item.Label,
			Category:  item.Category,
			Checked:   item.Checked,
			Condition: item.Condition,
			Notes:     item.Notes,
		})
	}

	if err := s.checklistRepo.Create(ctx, checklist); err != nil {
		return nil, err
	}
	return s.withSummary(checklist), nil
}

// GetChecklist returns a checklist with its condition summary
func (s *ChecklistService) GetChecklist(ctx context.Context, id uint) (*ChecklistWithSummary, error) {
	checklist, err := s.checklistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if checklist == nil {
		return nil, apperror.NewNotFoundError("Checklist")
	}
	return s.withSummary(checklist), nil
}

// ListChecklistsByAppointment returns the inspections recorded for an
// appointment, newest first
func (s *ChecklistService) ListChecklistsByAppointment(ctx context.Context, appointmentID uint) ([]ChecklistWithSummary, error) {
	checklists, err := s.checklistRepo.ListByAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	result := make([]ChecklistWithSummary, 0, len(checklists))
	for i := range checklists {
		result = append(result, *s.withSummary(&checklists[i]))
	}
	return result, nil
}

// UpdateChecklistItems replaces the inspected points of a checklist
func (s *ChecklistService) UpdateChecklistItems(ctx context.Context, id uint, items []ChecklistItemInput) (*ChecklistWithSummary, error) {
	checklist, err := s.checklistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if checklist == nil {
		return nil, apperror.NewNotFoundError("Checklist")
	}

	replacement := make([]entity.ChecklistItem, 0, len(items))
	for _, item := range items {
		replacement = append(replacement, entity.ChecklistItem{
			ChecklistID: id,
			Label:       item.Label,
			Category:    item.Category,
			Checked:     item.Checked,
			Condition:   item.Condition,
			Notes:       item.Notes,
		})
	}
	if err := s.checklistRepo.ReplaceItems(ctx, id, replacement); err != nil {
		return nil, err
	}

	checklist, err = s.checklistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withSummary(checklist), nil
}

// AttachImage stores a reference to an uploaded checklist photo
func (s *ChecklistService) AttachImage(ctx context.Context, checklistID uint, imageURL string, description *string) (*entity.ChecklistImage, error) {
	checklist, err := s.checklistRepo.GetByID(ctx, checklistID)
	if err != nil {
		return nil, err
	}
	if checklist == nil {
		return nil, apperror.NewNotFoundError("Checklist")
	}

	image := &entity.ChecklistImage{
		ChecklistID: checklistID,
		ImageURL:    imageURL,
		Description: description,
	}
	if err := s.checklistRepo.AddImage(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

// DeleteChecklist removes a checklist and its items
func (s *ChecklistService) DeleteChecklist(ctx context.Context, id uint) error {
	checklist, err := s.checklistRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if checklist == nil {
		return apperror.NewNotFoundError("Checklist")
	}
	return s.checklistRepo.Delete(ctx, id)
}

func (s *ChecklistService) withSummary(checklist *entity.VehicleChecklist) *ChecklistWithSummary {
	return &ChecklistWithSummary{
		Checklist: checklist,
		Summary:   EvaluateVehicleCondition(checklist.Items),
	}
}
