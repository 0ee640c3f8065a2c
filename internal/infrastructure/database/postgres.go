package database

import (
	"fmt"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/config"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/entity"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/enum"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig, log *logrus.Logger) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Info("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		// Staff entities
		&entity.User{},
		&entity.PasswordResetToken{},

		// Client entities
		&entity.Client{},
		&entity.ClientContact{},
		&entity.ClientVehicle{},

		// Scheduling entities
		&entity.Appointment{},
		&entity.VehicleChecklist{},
		&entity.ChecklistItem{},
		&entity.ChecklistImage{},

		// Catalog entities
		&entity.ServiceCategory{},
		&entity.WorkshopService{},
		&entity.Piece{},

		// Billing entities
		&entity.Invoice{},
		&entity.InvoiceDetailLine{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// SeedDefaultData seeds the admin account and a starter catalog
func SeedDefaultData(db *gorm.DB, log *logrus.Logger) error {
	// Create admin user if configured via environment variables
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", adminEmail).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.WithError(err).Warn("failed to hash admin password")
			} else {
				if adminName == "" {
					adminName = "Admin"
				}
				name := adminName
				surname := ""
				for i, c := range adminName {
					if c == ' ' {
						name = adminName[:i]
						surname = adminName[i+1:]
						break
					}
				}
				adminUser := entity.User{
					Name:     name,
					Surname:  surname,
					Email:    adminEmail,
					Password: string(hashedPassword),
					Role:     enum.RoleAdmin,
					Active:   true,
				}
				if err := db.Create(&adminUser).Error; err != nil {
					log.WithError(err).Warn("failed to create admin user")
				} else {
					log.WithField("email", adminEmail).Info("Admin user created")
				}
			}
		} else {
			log.WithField("email", adminEmail).Info("Admin user already exists")
		}
	}

	// Seed a starter service catalog on an empty database
	var serviceCount int64
	if err := db.Model(&entity.WorkshopService{}).Count(&serviceCount).Error; err != nil {
		return err
	}
	if serviceCount == 0 {
		category := entity.ServiceCategory{Name: "General"}
		if err := db.Create(&category).Error; err != nil {
			log.WithError(err).Warn("failed to seed service category")
		}

		services := []entity.WorkshopService{
			{Name: "Oil change", Price: decimal.NewFromInt(25), CategoryID: &category.ID},
			{Name: "Brake inspection", Price: decimal.NewFromInt(15), CategoryID: &category.ID},
			{Name: "Engine diagnostics", Price: decimal.NewFromInt(40), CategoryID: &category.ID},
		}
		for i := range services {
			if err := db.Create(&services[i]).Error; err != nil {
				log.WithError(err).WithField("service", services[i].Name).Warn("failed to seed service")
			}
		}
	}

	return nil
}
