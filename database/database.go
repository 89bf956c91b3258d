package database

import (
	"fmt"
	"log"

	config "github.com/arshia84/bazaarche/configs"
	"github.com/arshia84/bazaarche/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		DisableNestedTransaction:                 true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Ad{},
		&models.Message{},
		&models.Favorite{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")

	var count int64
	err := DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
		return
	}

	adminUser := models.User{
		FullName: config.Config("ADMIN_FULL_NAME"),
		Email:    adminEmail,
		Password: string(hashedPassword),
		Role:     "admin",
	}

	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
		return
	}

	log.Println("✅ Admin user seeded successfully")
}

var defaultCategories = []models.Category{
	{Slug: "vehicles", Name: "Vehicles", Icon: "car", Color: "#ef4444"},
	{Slug: "real-estate", Name: "Real Estate", Icon: "home", Color: "#3b82f6"},
	{Slug: "electronics", Name: "Electronics", Icon: "smartphone", Color: "#8b5cf6"},
	{Slug: "home-kitchen", Name: "Home & Kitchen", Icon: "sofa", Color: "#f59e0b"},
	{Slug: "personal-items", Name: "Personal Items", Icon: "shirt", Color: "#ec4899"},
	{Slug: "leisure-hobbies", Name: "Leisure & Hobbies", Icon: "gamepad", Color: "#10b981"},
	{Slug: "services", Name: "Services", Icon: "wrench", Color: "#6366f1"},
	{Slug: "jobs", Name: "Jobs", Icon: "briefcase", Color: "#14b8a6"},
}

func SeedCategories() {
	var count int64
	if err := DB.Model(&models.Category{}).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check categories: %v", err)
		return
	}

	if count > 0 {
		log.Println("Categories already seeded.")
		return
	}

	if err := DB.Create(&defaultCategories).Error; err != nil {
		log.Fatalf("🔥 Failed to seed categories: %v", err)
		return
	}

	log.Printf("✅ Seeded %d categories", len(defaultCategories))
}
