package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/application/service"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/config"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/entity"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/enum"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/infrastructure/database"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/infrastructure/repository"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/presentation/http/handler"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/pkg/email"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/pkg/printer"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestRouter wires the full stack against an in-memory database,
// exactly as cmd/api does against postgres.
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, string) {
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	userRepo := repository.NewUserRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)
	clientRepo := repository.NewClientRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	checklistRepo := repository.NewChecklistRepository(db)
	serviceRepo := repository.NewWorkshopServiceRepository(db)
	pieceRepo := repository.NewPieceRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	emailService := email.NewEmailService(email.EmailConfig{})

	authService := service.NewAuthService(userRepo, passwordResetRepo, jwtManager, emailService)
	userService := service.NewUserService(userRepo)
	clientService := service.NewClientService(clientRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, clientRepo)
	checklistService := service.NewChecklistService(checklistRepo, appointmentRepo)
	catalogService := service.NewCatalogService(serviceRepo, pieceRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, clientRepo, serviceRepo, pieceRepo, log)
	dashboardService := service.NewDashboardService(invoiceRepo, clientRepo, appointmentRepo, pieceRepo)
	printerService := service.NewPrinterService(printer.NewNullPrinter(), invoiceService, "none", log)

	handlers := &Handlers{
		Auth:        handler.NewAuthHandler(authService),
		User:        handler.NewUserHandler(userService),
		Client:      handler.NewClientHandler(clientService),
		Appointment: handler.NewAppointmentHandler(appointmentService),
		Checklist:   handler.NewChecklistHandler(checklistService),
		Catalog:     handler.NewCatalogHandler(catalogService),
		Invoice:     handler.NewInvoiceHandler(invoiceService, printerService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
	}

	cfg := &config.Config{}
	cfg.App.Name = "taller-api"
	cfg.RateLimit.Requests = 100
	cfg.RateLimit.Duration = 1

	router := Setup(handlers, &Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		Log:             log,
		IdempotencyRepo: idempotencyRepo,
	})

	token, err := jwtManager.GenerateAccessToken(1, "admin@taller.test", enum.RoleAdmin)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	return router, db, token
}

func doRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func seedRouterFixtures(t *testing.T, db *gorm.DB) (entity.Client, entity.WorkshopService, entity.Piece) {
	client := entity.Client{FullName: "Pedro", FullSurname: "Ramirez", Identified: "V-87654321"}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	svc := entity.WorkshopService{Name: "Oil change", Price: decimal.RequireFromString("25.00")}
	if err := db.Create(&svc).Error; err != nil {
		t.Fatalf("seed service: %v", err)
	}
	piece := entity.Piece{Name: "Brake pad", Price: decimal.RequireFromString("10.00"), Stock: 10}
	if err := db.Create(&piece).Error; err != nil {
		t.Fatalf("seed piece: %v", err)
	}
	return client, svc, piece
}

func TestRouterHealthEndpoint(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRouterRejectsMissingToken(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/invoices", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", w.Code)
	}
}

func TestRouterInvoiceCreateAndGet(t *testing.T) {
	router, db, token := setupTestRouter(t)
	client, svc, piece := seedRouterFixtures(t, db)

	w := doRequest(router, http.MethodPost, "/api/v1/invoices", token, gin.H{
		"client_id": client.ID,
		"services":  []gin.H{{"id": svc.ID}},
		"pieces":    []gin.H{{"id": piece.ID, "amount": 2}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created struct {
		Data struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.Data.ID == 0 {
		t.Fatalf("expected created invoice id in response: %s", w.Body.String())
	}

	w = doRequest(router, http.MethodGet, fmt.Sprintf("/api/v1/invoices/%d", created.Data.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRouterClientInvoicesRoute(t *testing.T) {
	router, db, token := setupTestRouter(t)
	client, svc, _ := seedRouterFixtures(t, db)

	w := doRequest(router, http.MethodPost, "/api/v1/invoices", token, gin.H{
		"client_id": client.ID,
		"services":  []gin.H{{"id": svc.ID}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(router, http.MethodGet, fmt.Sprintf("/api/v1/clients/%d/invoices", client.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Invoices   []json.RawMessage `json:"invoices"`
			TotalSpent decimal.Decimal   `json:"total_spent"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data.Invoices) != 1 {
		t.Fatalf("expected 1 invoice, got %d", len(resp.Data.Invoices))
	}
	if !resp.Data.TotalSpent.Equal(decimal.RequireFromString("25.00")) {
		t.Fatalf("expected total spent 25.00, got %s", resp.Data.TotalSpent)
	}
}

func TestRouterAppointmentChecklistsRoute(t *testing.T) {
	router, db, token := setupTestRouter(t)
	client, _, _ := seedRouterFixtures(t, db)

	vehicle := entity.ClientVehicle{ClientID: client.ID, Brand: "Toyota", Model: "Corolla", Year: 2018, Plates: "ABC123"}
	if err := db.Create(&vehicle).Error; err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}
	appointment := entity.Appointment{
		ClientID:    client.ID,
		VehicleID:   vehicle.ID,
		ScheduledAt: time.Now().Add(48 * time.Hour),
		Status:      enum.AppointmentStatusPending,
	}
	if err := db.Create(&appointment).Error; err != nil {
		t.Fatalf("seed appointment: %v", err)
	}
	checklist := entity.VehicleChecklist{
		AppointmentID:  appointment.ID,
		CheckType:      "Entry inspection",
		FuelLevel:      75,
		Mileage:        "84000",
		TechnicianName: "Luis",
		Items: []entity.ChecklistItem{
			{Label: "Brakes", Category: "Safety", Checked: true, Condition: enum.ConditionGood},
			{Label: "Tires", Category: "Safety", Checked: true, Condition: enum.ConditionExcellent},
		},
	}
	if err := db.Create(&checklist).Error; err != nil {
		t.Fatalf("seed checklist: %v", err)
	}

	w := doRequest(router, http.MethodGet, fmt.Sprintf("/api/v1/appointments/%d/checklists", appointment.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data []struct {
			Summary struct {
				Status string `json:"status"`
			} `json:"summary"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("expected 1 checklist, got %d", len(resp.Data))
	}
	if resp.Data[0].Summary.Status == "" {
		t.Fatalf("expected a scored condition summary: %s", w.Body.String())
	}
}

func TestRouterRoleGuardOnImport(t *testing.T) {
	router, db, _ := setupTestRouter(t)
	client, _, _ := seedRouterFixtures(t, db)

	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	mechanicToken, err := jwtManager.GenerateAccessToken(2, "mechanic@taller.test", enum.RoleMechanic)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	w := doRequest(router, http.MethodPost, "/api/v1/invoices/import", mechanicToken, gin.H{
		"client_id": client.ID,
		"detail":    gin.H{"subtotal": "20.00", "pieces": gin.H{"name": "Brake pad", "price": "10.00"}},
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin import, got %d: %s", w.Code, w.Body.String())
	}
}
