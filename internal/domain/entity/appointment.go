package entity

import (
	"time"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/enum"
	"gorm.io/gorm"
)

// Appointment represents a scheduled workshop visit for a client vehicle
type Appointment struct {
	ID          uint                   `gorm:"primaryKey" json:"id"`
	ClientID    uint                   `gorm:"not null;index" json:"client_id"`
	VehicleID   uint                   `gorm:"not null;index" json:"vehicle_id"`
	MechanicID  *uint                  `gorm:"index" json:"mechanic_id,omitempty"`
	ScheduledAt time.Time              `gorm:"not null;index" json:"scheduled_at"`
	Status      enum.AppointmentStatus `gorm:"default:0" json:"status"`
	Notes       *string                `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	DeletedAt   gorm.DeletedAt         `gorm:"index" json:"-"`

	// Relationships
	Client   Client        `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Vehicle  ClientVehicle `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	Mechanic *User         `gorm:"foreignKey:MechanicID" json:"mechanic,omitempty"`
}

// TableName returns the table name for the Appointment model
func (Appointment) TableName() string {
	return "appointments"
}
