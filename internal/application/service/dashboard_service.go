package service

import (
	"context"
	"time"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/entity"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/enum"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DashboardService aggregates workshop figures for the back office home
type DashboardService struct {
	invoiceRepo     repository.InvoiceRepository
	clientRepo      repository.ClientRepository
	appointmentRepo repository.AppointmentRepository
	pieceRepo       repository.PieceRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	appointmentRepo repository.AppointmentRepository,
	pieceRepo repository.PieceRepository,
) *DashboardService {
	return &DashboardService{
		invoiceRepo:     invoiceRepo,
		clientRepo:      clientRepo,
		appointmentRepo: appointmentRepo,
		pieceRepo:       pieceRepo,
	}
}

// DashboardStats represents the dashboard summary figures
type DashboardStats struct {
	TotalClients        int64                `json:"total_clients"`
	TotalInvoices       int64                `json:"total_invoices"`
	RevenueThisMonth    decimal.Decimal      `json:"revenue_this_month"`
	PendingAppointments int64                `json:"pending_appointments"`
	LowStockPieces      []entity.Piece       `json:"low_stock_pieces"`
	UpcomingVisits      []entity.Appointment `json:"upcoming_visits"`
}

// lowStockThreshold marks pieces that need restocking soon
const lowStockThreshold = 5

// GetStats returns the dashboard summary
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	totalClients, err := s.clientRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalInvoices, err := s.invoiceRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	revenue, err := s.invoiceRepo.SumTotalsSince(ctx, monthStart)
	if err != nil {
		return nil, err
	}

	pendingAppointments, err := s.appointmentRepo.CountByStatus(ctx, enum.AppointmentStatusPending)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.pieceRepo.ListBelowStock(ctx, lowStockThreshold)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.appointmentRepo.ListUpcoming(ctx, now, 5)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalClients:        totalClients,
		TotalInvoices:       totalInvoices,
		RevenueThisMonth:    revenue,
		PendingAppointments: pendingAppointments,
		LowStockPieces:      lowStock,
		UpcomingVisits:      upcoming,
	}, nil
}
