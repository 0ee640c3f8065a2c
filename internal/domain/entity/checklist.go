package entity

import (
	"time"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/enum"
	"gorm.io/gorm"
)

// VehicleChecklist represents one inspection of a vehicle, tied to an
// appointment
type VehicleChecklist struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	AppointmentID  uint           `gorm:"not null;index" json:"appointment_id"`
	CheckType      string         `gorm:"size:100;not null" json:"check_type"`
	FuelLevel      int            `gorm:"default:50" json:"fuel_level"`
	Mileage        string         `gorm:"size:50" json:"mileage"`
	GeneralNotes   *string        `gorm:"type:text" json:"general_notes,omitempty"`
	TechnicianName string         `gorm:"size:255" json:"technician_name"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Appointment Appointment      `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Items       []ChecklistItem  `gorm:"foreignKey:ChecklistID" json:"items,omitempty"`
	Images      []ChecklistImage `gorm:"foreignKey:ChecklistID" json:"images,omitempty"`
}

// TableName returns the table name for the VehicleChecklist model
func (VehicleChecklist) TableName() string {
	return "vehicle_checklists"
}

// ChecklistItem is one inspected point of a checklist
type ChecklistItem struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	ChecklistID uint           `gorm:"not null;index" json:"checklist_id"`
	Label       string         `gorm:"size:255;not null" json:"label"`
	Category    string         `gorm:"size:100" json:"category"`
	Checked     bool           `gorm:"default:false" json:"checked"`
	Condition   enum.Condition `gorm:"size:50" json:"condition"`
	Notes       *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// TableName returns the table name for the ChecklistItem model
func (ChecklistItem) TableName() string {
	return "checklist_items"
}

// ChecklistImage stores metadata of an uploaded vehicle photo
type ChecklistImage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ChecklistID uint      `gorm:"not null;index" json:"checklist_id"`
	ImageURL    string    `gorm:"size:500;not null" json:"image_url"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"create_at"`
}

// TableName returns the table name for the ChecklistImage model
func (ChecklistImage) TableName() string {
	return "checklist_images"
}
