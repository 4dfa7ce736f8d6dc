package database

import (
	"fmt"
	"log"
	"os"

	"github.com/feetrack/api/model"
	"github.com/feetrack/api/utils/auth"
	"gorm.io/gorm"
)

// RunSeeds populates the committee catalog and, when configured, an admin
// user. Safe to run repeatedly: existing rows are left untouched.
func RunSeeds(db *gorm.DB) error {
	if err := seedCommittees(db); err != nil {
		return err
	}
	return seedAdminUser(db)
}

func seedCommittees(db *gorm.DB) error {
	details := map[string]string{
		model.CommitteeCF:  "College Fee",
		model.CommitteeLAC: "Library and Audio-visual Committee",
		model.CommitteePTA: "Parents and Teachers Association",
		model.CommitteeQAA: "Quality Assurance and Accreditation",
		model.CommitteeRHC: "Religious and Humanities Committee",
	}

	for _, name := range model.CommitteeNames {
		var existing model.Committee
		err := db.Where("name = ?", name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		committee := model.Committee{
			Name:    name,
			Details: details[name],
		}
		if err := db.Create(&committee).Error; err != nil {
			return fmt.Errorf("failed to seed committee %s: %w", name, err)
		}
		log.Printf("Seeded committee %s", name)
	}
	return nil
}

func seedAdminUser(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL / ADMIN_PASSWORD not set, skipping admin user")
		return nil
	}

	var existing model.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Println("Admin user already exists, skipping")
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := model.User{
		Username:     "admin",
		Email:        email,
		FirstName:    "System",
		LastName:     "Administrator",
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	log.Printf("Seeded admin user %s", email)
	return nil
}
