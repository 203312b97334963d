package main

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"helpugee/internal/config"
	"helpugee/internal/db"
	"helpugee/internal/model"
)

// Bootstraps the database with one section per role and an initial
// administrator account. Safe to re-run: existing rows are left alone.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewPostgres(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Section{}, &model.User{}, &model.Feature{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	sections := []model.Section{
		{Name: "Administration", Description: "System administrators", Role: model.RoleAdministrator, IsActive: true},
		{Name: "Orderers", Description: "Order placement", Role: model.RoleOrderer, IsActive: true},
		{Name: "Approvers", Description: "Order approval", Role: model.RoleApprover, IsActive: true},
		{Name: "Suppliers", Description: "Supply handling", Role: model.RoleSupplier, IsActive: true},
	}

	var adminSectionID uint
	for _, section := range sections {
		var existing model.Section
		err := gormDB.WithContext(ctx).Where("role = ? AND is_deleted = FALSE", section.Role).First(&existing).Error
		if err == nil {
			log.Printf("Section for role %q already present, skipping", section.Role)
			if section.Role == model.RoleAdministrator {
				adminSectionID = existing.ID
			}
			continue
		}
		section.CreatedBy = "system"
		if err := gormDB.WithContext(ctx).Create(&section).Error; err != nil {
			log.Fatalf("Failed to create section %q: %v", section.Name, err)
		}
		if section.Role == model.RoleAdministrator {
			adminSectionID = section.ID
		}
		log.Printf("Created section %q (role %s)", section.Name, section.Role)
	}

	var existingAdmin model.User
	err = gormDB.WithContext(ctx).Where("username = ? AND is_deleted = FALSE", "admin").First(&existingAdmin).Error
	if err == nil {
		log.Println("Administrator account already present, nothing to do")
		return
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("SEED_ADMIN_PASSWORD must be set to create the initial administrator")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Fatalf("Failed to hash administrator password: %v", err)
	}

	admin := model.User{
		Username:  "admin",
		Password:  string(hash),
		SectionID: adminSectionID,
		IsActive:  true,
	}
	admin.CreatedBy = "system"
	if err := gormDB.WithContext(ctx).Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create administrator: %v", err)
	}
	log.Println("Created administrator account \"admin\"")
}
