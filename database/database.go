package database

import (
	"fmt"
	"log"

	"pronocoach/config"
	"pronocoach/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to PostgreSQL
func ConnectDb() {
	cfg := config.AppConfig

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	// Run database migrations
	runMigrations(db)

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// runMigrations performs database migrations and seeds the static catalog
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.PendingRegistration{},
		&models.PasswordResetToken{},
		&models.ReadingProgress{},
		&models.Quiz{},
		&models.Question{},
		&models.Option{},
		&models.QuizAttempt{},
		&models.AttemptAnswer{},
		&models.QuizHistory{},
		&models.CourseModule{},
		&models.Course{},
		&models.QuizResetMarker{},
		&models.UserPresence{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	seedCatalog(db)

	log.Println("Migrations completed successfully.")
}

// seedCatalog seeds the static module/course catalog on first boot. The
// catalog is immutable at runtime; reruns are no-ops.
func seedCatalog(db *gorm.DB) {
	var count int64
	db.Model(&models.CourseModule{}).Count(&count)
	if count > 0 {
		return
	}

	log.Println("Seeding module catalog...")

	type seedCourse struct {
		Title        string
		BookFile     string
		BookDisplay  string
		HandoutLabel string
		PageRange    string
		QuizTitle    string
	}
	type seedModule struct {
		Title   string
		Dialect string
		Summary string
		Courses []seedCourse
	}

	catalog := []seedModule{
		{
			Title:   "Cebuano Starter Track",
			Dialect: "Cebuano",
			Summary: "Greetings, everyday phrases and basic sentence patterns.",
			Courses: []seedCourse{
				{
					Title:        "Cebuano For Beginners",
					BookFile:     "cebuano.pdf",
					BookDisplay:  "Cebuano For Beginners",
					HandoutLabel: "Handout 1",
					PageRange:    "pp. 1-24",
					QuizTitle:    "Cebuano Basics Quiz",
				},
			},
		},
		{
			Title:   "Bikol Grammar Track",
			Dialect: "Bikol",
			Summary: "Core grammar notes with guided reading.",
			Courses: []seedCourse{
				{
					Title:        "Bikol Grammar Notes",
					BookFile:     "bikol.pdf",
					BookDisplay:  "Bikol Grammar Notes",
					HandoutLabel: "Handout 1",
					PageRange:    "pp. 1-18",
					QuizTitle:    "Bikol Grammar Quiz",
				},
			},
		},
		{
			Title:   "Reading the Regions",
			Dialect: "Tagalog",
			Summary: "Longer readings for comprehension practice.",
			Courses: []seedCourse{
				{
					Title:        "Sa Bayan ng Anihan",
					BookFile:     "sabayan.pdf",
					BookDisplay:  "Sa Bayan ng Anihan",
					HandoutLabel: "Handout 1",
					PageRange:    "pp. 1-32",
					QuizTitle:    "Sa Bayan ng Anihan Quiz",
				},
			},
		},
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, m := range catalog {
			module := models.CourseModule{
				Title:   m.Title,
				Dialect: m.Dialect,
				Summary: m.Summary,
			}
			if err := tx.Create(&module).Error; err != nil {
				return err
			}

			for i, c := range m.Courses {
				quiz := models.Quiz{
					Title:       c.QuizTitle,
					Language:    m.Dialect,
					Description: "Checks what you remember from " + c.BookDisplay + ".",
					IsActive:    true,
				}
				if err := tx.Create(&quiz).Error; err != nil {
					return err
				}

				course := models.Course{
					ModuleID:        module.ID,
					Title:           c.Title,
					OrderIndex:      i,
					BookFile:        c.BookFile,
					BookDisplayName: c.BookDisplay,
					HandoutLabel:    c.HandoutLabel,
					PageRange:       c.PageRange,
					QuizID:          quiz.ID,
					IsActive:        true,
				}
				if err := tx.Create(&course).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Catalog seeding failed: %v", err)
	}
}
