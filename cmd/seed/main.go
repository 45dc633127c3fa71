package main

import (
	"log"
	"time"

	"mentorconnect/internal/config"
	"mentorconnect/internal/database"
	"mentorconnect/internal/domain"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.MentorProfile{},
		&domain.Session{},
		&domain.Booking{},
		&domain.CancellationRequest{},
		&domain.Feedback{},
		&domain.Dispute{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := seed(db); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	log.Println("Seed complete")
}

func seed(db *gorm.DB) error {
	// wipe children before parents
	for _, model := range []any{
		&domain.Dispute{},
		&domain.Feedback{},
		&domain.CancellationRequest{},
		&domain.Booking{},
		&domain.Session{},
		&domain.MentorProfile{},
		&domain.User{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}

	hash := func(pw string) string {
		h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("bcrypt: %v", err)
		}
		return string(h)
	}

	admin := domain.User{
		Name:               "Platform Admin",
		Email:              "admin@mentorconnect.local",
		PasswordHash:       hash("admin123"),
		Role:               domain.RoleAdmin,
		VerificationStatus: domain.VerificationVerified,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	mentors := []domain.User{
		{
			Name:               "Aigerim Bekova",
			Email:              "aigerim@mentorconnect.local",
			PasswordHash:       hash("mentor123"),
			Role:               domain.RoleMentor,
			VerificationStatus: domain.VerificationVerified,
		},
		{
			Name:               "Daniel Kim",
			Email:              "daniel@mentorconnect.local",
			PasswordHash:       hash("mentor123"),
			Role:               domain.RoleMentor,
			VerificationStatus: domain.VerificationVerified,
		},
		{
			Name:               "Marat Ospanov",
			Email:              "marat@mentorconnect.local",
			PasswordHash:       hash("mentor123"),
			Role:               domain.RoleMentor,
			VerificationStatus: domain.VerificationPending,
		},
	}
	for i := range mentors {
		if err := db.Create(&mentors[i]).Error; err != nil {
			return err
		}
	}

	profiles := []domain.MentorProfile{
		{
			UserID:      mentors[0].ID,
			Headline:    "Staff Engineer, distributed systems",
			Bio:         "Ten years building payment infrastructure. Happy to talk system design interviews and career ladders.",
			LinkedinURL: "https://linkedin.com/in/aigerim-bekova",
		},
		{
			UserID:   mentors[1].ID,
			Headline: "Product manager, fintech",
			Bio:      "I help engineers move into product roles.",
		},
	}
	for i := range profiles {
		if err := db.Create(&profiles[i]).Error; err != nil {
			return err
		}
	}

	mentees := []domain.User{
		{
			Name:               "Zarina Akhmetova",
			Email:              "zarina@mentorconnect.local",
			PasswordHash:       hash("mentee123"),
			Role:               domain.RoleMentee,
			VerificationStatus: domain.VerificationVerified,
		},
		{
			Name:               "Tom Hughes",
			Email:              "tom@mentorconnect.local",
			PasswordHash:       hash("mentee123"),
			Role:               domain.RoleMentee,
			VerificationStatus: domain.VerificationVerified,
		},
	}
	for i := range mentees {
		if err := db.Create(&mentees[i]).Error; err != nil {
			return err
		}
	}

	now := time.Now()
	slots := []domain.Session{
		{
			MentorID:        mentors[0].ID,
			StartTime:       now.Add(48 * time.Hour),
			DurationMinutes: 60,
			Fee:             50,
			Status:          domain.SessionAvailable,
		},
		{
			MentorID:        mentors[0].ID,
			StartTime:       now.Add(72 * time.Hour),
			DurationMinutes: 30,
			Fee:             30,
			Status:          domain.SessionAvailable,
		},
		{
			MentorID:        mentors[1].ID,
			StartTime:       now.Add(24 * time.Hour),
			DurationMinutes: 60,
			Fee:             0,
			Status:          domain.SessionAvailable,
		},
	}
	for i := range slots {
		if err := db.Create(&slots[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d users, %d profiles, %d slots", 1+len(mentors)+len(mentees), len(profiles), len(slots))
	return nil
}
