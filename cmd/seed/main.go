// Command seed wipes the listings, bookings and reviews tables and
// refills them with sample data for local development.
package main

import (
	"database/sql"
	"fmt"
	"log"
	"math/rand"

	intconfig "travelapp/internal/config"
	intdb "travelapp/internal/db"
	"travelapp/internal/domain/models"
	"travelapp/internal/repositories"
	"travelapp/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	env := intconfig.LoadEnv()
	db := intconfig.ConnectDB(env)
	defer intconfig.CloseDB()

	if err := intdb.EnsureSchema(db); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	log.Println("deleting existing data...")
	for _, table := range []string{"reviews", "bookings", "listings"} {
		if _, err := db.Exec("DELETE FROM " + table); err != nil {
			log.Fatalf("failed to clear %s: %v", table, err)
		}
	}

	userID := ensureTestUser(db)

	listingRepo := repositories.ListingRepository{DB: db}
	bookingRepo := repositories.BookingRepository{DB: db}
	reviewRepo := repositories.ReviewRepository{DB: db}

	log.Println("creating sample listings...")
	var listingIDs []int64
	for i := 1; i <= 10; i++ {
		id, err := listingRepo.Create(models.Listing{
			Title:         fmt.Sprintf("Beautiful Apartment #%d", i),
			Description:   fmt.Sprintf("Spacious apartment with amazing views #%d", i),
			PricePerNight: float64(int(rand.Float64()*25000+5000)) / 100, // 50.00 - 300.00
			MaxGuests:     rand.Intn(8) + 1,
		})
		if err != nil {
			log.Fatalf("failed to create listing: %v", err)
		}
		listingIDs = append(listingIDs, id)
		log.Printf("created listing #%d (id=%d)", i, id)
	}

	log.Println("creating sample bookings...")
	statuses := []string{
		models.BookingStatusPending,
		models.BookingStatusConfirmed,
		models.BookingStatusCancelled,
	}
	for _, listingID := range listingIDs {
		start := utils.Today().AddDate(0, 0, rand.Intn(30)+1)
		end := start.AddDate(0, 0, rand.Intn(14)+1)
		if _, err := bookingRepo.CreateTx(db, models.Booking{
			ListingID: listingID,
			UserID:    userID,
			StartDate: utils.FormatDate(start),
			EndDate:   utils.FormatDate(end),
			Status:    statuses[rand.Intn(len(statuses))],
		}); err != nil {
			log.Fatalf("failed to create booking: %v", err)
		}
	}

	log.Println("creating sample reviews...")
	for i, listingID := range listingIDs {
		if _, err := reviewRepo.Create(models.Review{
			ListingID: listingID,
			UserID:    userID,
			Rating:    rand.Intn(5) + 1,
			Comment:   fmt.Sprintf("Great experience at Beautiful Apartment #%d!", i+1),
		}); err != nil {
			log.Fatalf("failed to create review: %v", err)
		}
	}

	log.Println("database seeding completed successfully!")
}

func ensureTestUser(db *sql.DB) int64 {
	repo := repositories.UserRepository{DB: db}
	if u, _, err := repo.GetCredentials("test@example.com"); err == nil {
		return u.ID
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("testpassword123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	id, err := repo.Create(models.User{
		Name:     "Test User",
		Username: "testuser",
		Email:    "test@example.com",
		Role:     "user",
		Status:   "active",
	}, string(hash))
	if err != nil {
		log.Fatalf("failed to create test user: %v", err)
	}
	return id
}
