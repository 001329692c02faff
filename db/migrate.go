package db

import (
	"fmt"
	"log"

	"github.com/rafaelGenish111/leah-genish-api/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Service{},
		&models.Appointment{},
		&models.WeeklyAvailability{},
		&models.DateException{},
		&models.Article{},
		&models.GalleryImage{},
		&models.HealthDeclaration{},
		&models.ContactMessage{},
		&models.SiteSettings{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
