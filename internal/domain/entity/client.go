package entity

import (
	"time"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/enum"
	"gorm.io/gorm"
)

// Client represents a workshop client
type Client struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	FullName    string           `gorm:"size:255;not null" json:"full_name"`
	FullSurname string           `gorm:"size:255;not null" json:"full_surname"`
	Identified  string           `gorm:"size:50;unique;not null" json:"identified"`
	State       enum.ClientState `gorm:"size:20;default:'ACTIVE'" json:"client_state"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Contact  *ClientContact  `gorm:"foreignKey:ClientID" json:"contact,omitempty"`
	Vehicles []ClientVehicle `gorm:"foreignKey:ClientID" json:"vehicles,omitempty"`
	Invoices []Invoice       `gorm:"foreignKey:ClientID" json:"-"`
}

// TableName returns the table name for the Client model
func (Client) TableName() string {
	return "clients"
}

// DisplayName returns the client's full display name
func (c *Client) DisplayName() string {
	return c.FullName + " " + c.FullSurname
}

// ClientContact holds a client's contact information
type ClientContact struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ClientID    uint      `gorm:"not null;uniqueIndex" json:"client_id"`
	PhoneNumber string    `gorm:"size:50" json:"phone_number"`
	Email       *string   `gorm:"size:255" json:"email,omitempty"`
	Address     *string   `gorm:"type:text" json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the table name for the ClientContact model
func (ClientContact) TableName() string {
	return "client_contacts"
}

// ClientVehicle represents a vehicle registered to a client
type ClientVehicle struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	ClientID           uint           `gorm:"not null;index" json:"client_id"`
	Brand              string         `gorm:"size:100;not null" json:"brand"`
	Model              string         `gorm:"size:100;not null" json:"model"`
	Year               int            `gorm:"not null" json:"year"`
	Plates             string         `gorm:"size:20;unique;not null" json:"plates"`
	EngineDisplacement *string        `gorm:"size:50" json:"engine_displacement,omitempty"`
	Description        *string        `gorm:"type:text" json:"description,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name for the ClientVehicle model
func (ClientVehicle) TableName() string {
	return "client_vehicles"
}
