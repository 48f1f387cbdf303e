package main

import (
	"fmt"
	"log"
	"os"

	"campusspaces/internal/database"
	"campusspaces/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "campusspaces.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM spaces")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@campus.edu",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Facilities Admin",
	}
	db.Create(&admin)
	log.Println("Admin created: admin@campus.edu / admin123")

	members := []struct {
		email  string
		name   string
		career string
	}{
		{"maria@campus.edu", "Maria Fuentes", "Computer Science"},
		{"diego@campus.edu", "Diego Ramos", "Civil Engineering"},
		{"lucia@campus.edu", "Lucia Torres", "Biology"},
	}
	for i, m := range members {
		hash, _ := bcrypt.GenerateFromPassword([]byte("member123"), bcrypt.DefaultCost)
		user := domain.User{
			Email:        m.email,
			PasswordHash: string(hash),
			Role:         domain.RoleUser,
			Name:         m.name,
			Career:       m.career,
		}
		db.Create(&user)
		log.Printf("Member %d created: %s / member123", i+1, m.email)
	}

	// ================== SPACES ==================
	log.Println("Creating spaces...")

	spaces := []domain.Space{
		{
			Name:       "Chemistry Lab A",
			Location:   "Science Building, Floor 2",
			Capacity:   24,
			Category:   domain.CategoryLaboratory,
			HourlyRate: 50.00,
			Equipment:  "Fume hoods, centrifuges, precision scales",
			IsActive:   true,
		},
		{
			Name:       "Indoor Basketball Court",
			Location:   "Sports Complex",
			Capacity:   30,
			Category:   domain.CategorySportsCourt,
			HourlyRate: 25.00,
			Equipment:  "Scoreboard, adjustable hoops",
			IsActive:   true,
		},
		{
			Name:       "Study Room 101",
			Location:   "Library, Floor 1",
			Capacity:   8,
			Category:   domain.CategoryStudyRoom,
			HourlyRate: 0,
			Equipment:  "Whiteboard, HDMI screen",
			IsActive:   true,
		},
		{
			Name:       "Main Auditorium",
			Location:   "Central Building",
			Capacity:   350,
			Category:   domain.CategoryAuditorium,
			HourlyRate: 120.00,
			Equipment:  "Projector, sound system, stage lighting",
			IsActive:   true,
		},
	}
	for i := range spaces {
		db.Create(&spaces[i])
		fmt.Printf("Space created: %s (%s)\n", spaces[i].Name, spaces[i].Category)
	}

	log.Println("Seed complete")
}
