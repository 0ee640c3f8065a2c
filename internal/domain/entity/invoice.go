package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Invoice represents a persisted invoice header. All amounts live on the
// detail lines; Total is precomputed at creation time for listing.
type Invoice struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	ClientID  uint            `gorm:"not null;index" json:"client_id"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	CreatedAt time.Time       `json:"create_at"`
	UpdatedAt time.Time       `json:"-"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Client      Client              `gorm:"foreignKey:ClientID" json:"-"`
	DetailLines []InvoiceDetailLine `gorm:"foreignKey:InvoiceID" json:"invoice_detail,omitempty"`
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceDetailLine is one persisted invoice row. It binds a quantity and
// up to two price snapshots: a purchased service and a piece. Snapshots are
// frozen copies of the catalog at creation time; a later catalog price
// change must not alter historical invoices. The catalog ids are weak
// back-references used to re-resolve lines for editing, with the name as a
// display fallback. Legacy rows imported from the old system carry id 0.
type InvoiceDetailLine struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	InvoiceID    uint            `gorm:"not null;index" json:"invoice_id"`
	Amount       int             `gorm:"default:1" json:"amount"`
	Subtotal     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	Description  *string         `gorm:"type:text" json:"description,omitempty"`
	ServiceExtra decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"service_extra"`
	PieceExtra   decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"piece_extra"`

	// Service snapshot (all nullable; present only when a service was sold)
	ServiceRefID *uint            `json:"service_ref_id,omitempty"`
	ServiceName  *string          `gorm:"size:255" json:"service_name,omitempty"`
	ServicePrice *decimal.Decimal `gorm:"type:decimal(12,2)" json:"service_price,omitempty"`

	// Piece snapshot
	PieceRefID *uint            `json:"piece_ref_id,omitempty"`
	PieceName  *string          `gorm:"size:255" json:"piece_name,omitempty"`
	PiecePrice *decimal.Decimal `gorm:"type:decimal(12,2)" json:"piece_price,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for the InvoiceDetailLine model
func (InvoiceDetailLine) TableName() string {
	return "invoice_detail_lines"
}

// HasService reports whether the line carries a service snapshot
func (l *InvoiceDetailLine) HasService() bool {
	return l.ServiceName != nil
}

// HasPiece reports whether the line carries a piece snapshot
func (l *InvoiceDetailLine) HasPiece() bool {
	return l.PieceName != nil
}

// ServiceSnapshot returns the frozen service name/price, zero price when
// the snapshot is incomplete
func (l *InvoiceDetailLine) ServiceSnapshot() (string, decimal.Decimal) {
	name := ""
	if l.ServiceName != nil {
		name = *l.ServiceName
	}
	price := decimal.Zero
	if l.ServicePrice != nil {
		price = *l.ServicePrice
	}
	return name, price
}

// PieceSnapshot returns the frozen piece name/price, zero price when the
// snapshot is incomplete
func (l *InvoiceDetailLine) PieceSnapshot() (string, decimal.Decimal) {
	name := ""
	if l.PieceName != nil {
		name = *l.PieceName
	}
	price := decimal.Zero
	if l.PiecePrice != nil {
		price = *l.PiecePrice
	}
	return name, price
}
