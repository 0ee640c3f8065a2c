package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ServiceCategory groups workshop services
type ServiceCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;unique;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the ServiceCategory model
func (ServiceCategory) TableName() string {
	return "service_categories"
}

// WorkshopService represents a service offered by the workshop, priced
// in the current catalog. Invoices never reference these rows directly;
// they freeze a snapshot at creation time.
type WorkshopService struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	CategoryID *uint           `gorm:"index" json:"category_id,omitempty"`
	Name       string          `gorm:"size:255;unique;not null" json:"name"`
	Price      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Category *ServiceCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName returns the table name for the WorkshopService model
func (WorkshopService) TableName() string {
	return "workshop_services"
}

// Piece represents a spare part kept in the workshop inventory
type Piece struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"size:255;unique;not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Stock     int             `gorm:"default:0" json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

// TableName returns the table name for the Piece model
func (Piece) TableName() string {
	return "pieces"
}
