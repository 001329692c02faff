package db

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/rafaelGenish111/leah-genish-api/models"
)

// Seed creates the admin role, the practitioner's admin account and the
// single site settings row when they do not exist yet. Safe to call on every
// startup.
func Seed() {
	var adminRole models.Role
	if DB.Where("name = ?", "admin").First(&adminRole).RowsAffected == 0 {
		adminRole = models.Role{Name: "admin", Description: "Back office administrator"}
		if err := DB.Create(&adminRole).Error; err != nil {
			log.Fatal("Failed to create admin role: ", err)
		}
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email != "" && password != "" {
		var admin models.User
		if DB.Where("email = ?", email).First(&admin).RowsAffected == 0 {
			hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				log.Fatal("Failed to hash admin password: ", err)
			}
			admin = models.User{
				Name:     "Admin",
				Email:    email,
				Password: string(hashed),
				RoleID:   adminRole.ID,
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Fatal("Failed to create admin user: ", err)
			}
			log.Println("✅ Admin user created")
		}
	}

	var settings models.SiteSettings
	if DB.First(&settings).RowsAffected == 0 {
		settings = models.SiteSettings{ClinicName: "Leah Genish - Complementary Medicine"}
		if err := DB.Create(&settings).Error; err != nil {
			log.Fatal("Failed to create site settings: ", err)
		}
	}
}
