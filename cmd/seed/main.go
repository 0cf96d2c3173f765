package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"musobuddy/internal/bookings"
	"musobuddy/internal/clients"
	"musobuddy/internal/contracts"
	"musobuddy/internal/invoices"
	"musobuddy/internal/shared/config"
	"musobuddy/internal/shared/database"
	"musobuddy/internal/users"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting MusoBuddy Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	// Delete in reverse dependency order
	tables := []string{
		"invoices",
		"contracts",
		"bookings",
		"clients",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	// Seed users first (no dependencies)
	userIDs, err := s.SeedUsers()
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	// Seed the address book for the first musician
	clientIDs, err := s.SeedClients(userIDs["musician1"])
	if err != nil {
		return fmt.Errorf("failed to seed clients: %w", err)
	}

	// Seed bookings, including a deliberately double-booked Saturday
	bookingIDs, err := s.SeedBookings(userIDs["musician1"], clientIDs)
	if err != nil {
		return fmt.Errorf("failed to seed bookings: %w", err)
	}

	// Seed contracts and invoices against the confirmed booking
	if err := s.SeedContracts(userIDs["musician1"], bookingIDs); err != nil {
		return fmt.Errorf("failed to seed contracts: %w", err)
	}

	if err := s.SeedInvoices(userIDs["musician1"], bookingIDs); err != nil {
		return fmt.Errorf("failed to seed invoices: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to clear Redis cache: %v", err)
	}

	return nil
}

// SeedUsers creates 3 users: 1 admin and 2 musicians
func (s *Seeder) SeedUsers() (map[string]uuid.UUID, error) {
	fmt.Println("  👤 Seeding users...")

	userIDs := make(map[string]uuid.UUID)

	// Hash password for all users (using "qwerty")
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		key       string
		firstName string
		lastName  string
		email     string
		role      users.Role
	}{
		{"admin", "Admin", "User", "admin@musobuddy.com", users.RoleAdmin},
		{"musician1", "Alex", "Carter", "alex.carter@example.com", users.RoleUser},
		{"musician2", "Jamie", "Reed", "jamie.reed@example.com", users.RoleUser},
	}

	for _, userData := range usersData {
		user := users.User{
			ID:        uuid.New(),
			FirstName: userData.firstName,
			LastName:  userData.lastName,
			Email:     userData.email,
			Password:  string(hashedPassword),
			Role:      userData.role,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		userIDs[userData.key] = user.ID
		fmt.Printf("    ✅ Created user: %s (%s)\n", user.Email, user.Role)
	}

	return userIDs, nil
}

// SeedClients creates address-book entries for a musician
func (s *Seeder) SeedClients(musicianID uuid.UUID) (map[string]uuid.UUID, error) {
	fmt.Println("  📇 Seeding clients...")

	clientIDs := make(map[string]uuid.UUID)

	clientsData := []struct {
		key   string
		name  string
		email string
		phone string
	}{
		{"sarah", "Sarah Mitchell", "sarah.mitchell@example.com", "+44 7700 900123"},
		{"kings_arms", "The Kings Arms", "events@kingsarms.example.com", "+44 20 7946 0958"},
		{"corporate", "Brightwave Events Ltd", "bookings@brightwave.example.com", "+44 161 496 0201"},
	}

	for _, clientData := range clientsData {
		client := clients.Client{
			ID:        uuid.New(),
			UserID:    musicianID,
			Name:      clientData.name,
			Email:     clientData.email,
			Phone:     clientData.phone,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&client).Error; err != nil {
			return nil, fmt.Errorf("failed to create client %s: %w", client.Name, err)
		}

		clientIDs[clientData.key] = client.ID
		fmt.Printf("    ✅ Created client: %s\n", client.Name)
	}

	return clientIDs, nil
}

// SeedBookings creates a realistic diary: a confirmed wedding, an enquiry,
// and two pub gigs on the same Saturday whose times overlap
func (s *Seeder) SeedBookings(musicianID uuid.UUID, clientIDs map[string]uuid.UUID) (map[string]uuid.UUID, error) {
	fmt.Println("  📅 Seeding bookings...")

	bookingIDs := make(map[string]uuid.UUID)

	weddingDate := date(2026, time.September, 12)
	saturday := date(2026, time.October, 3)
	enquiryDate := date(2026, time.November, 21)

	bookingsData := []struct {
		key          string
		clientKey    string
		clientName   string
		title        string
		eventDate    *time.Time
		eventTime    string
		eventEndTime string
		venue        string
		fee          float64
		status       bookings.Status
	}{
		{"wedding", "sarah", "Sarah Mitchell", "Mitchell Wedding", &weddingDate, "14:00", "18:00", "Oakwood Manor", 650, bookings.StatusConfirmed},
		{"pub_early", "kings_arms", "The Kings Arms", "Acoustic Evening", &saturday, "19:00", "21:30", "The Kings Arms", 180, bookings.StatusConfirmed},
		{"pub_late", "corporate", "Brightwave Events Ltd", "Autumn Social", &saturday, "21:00", "", "Brightwave HQ", 300, bookings.StatusNew},
		{"enquiry", "corporate", "Brightwave Events Ltd", "Christmas Party", &enquiryDate, "", "", "", 400, bookings.StatusNew},
	}

	for _, bookingData := range bookingsData {
		clientID := clientIDs[bookingData.clientKey]
		booking := bookings.Booking{
			ID:           uuid.New(),
			UserID:       musicianID,
			ClientID:     &clientID,
			ClientName:   bookingData.clientName,
			Title:        bookingData.title,
			EventDate:    bookingData.eventDate,
			EventTime:    bookingData.eventTime,
			EventEndTime: bookingData.eventEndTime,
			Venue:        bookingData.venue,
			Fee:          bookingData.fee,
			Status:       bookingData.status,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&booking).Error; err != nil {
			return nil, fmt.Errorf("failed to create booking %s: %w", bookingData.title, err)
		}

		bookingIDs[bookingData.key] = booking.ID
		fmt.Printf("    ✅ Created booking: %s (%s)\n", booking.Title, booking.Status)
	}

	return bookingIDs, nil
}

// SeedContracts creates a signed contract for the wedding and a draft for
// the overlapping pub gig
func (s *Seeder) SeedContracts(musicianID uuid.UUID, bookingIDs map[string]uuid.UUID) error {
	fmt.Println("  📝 Seeding contracts...")

	now := time.Now().UTC()
	sentAt := now.Add(-72 * time.Hour)
	signedAt := now.Add(-48 * time.Hour)

	signed := contracts.Contract{
		ID:            uuid.New(),
		UserID:        musicianID,
		BookingID:     bookingIDs["wedding"],
		ClientName:    "Sarah Mitchell",
		ClientEmail:   "sarah.mitchell@example.com",
		Terms:         "Performance of two 45-minute acoustic sets. 50% deposit due on signing.",
		Fee:           650,
		Status:        contracts.StatusSigned,
		SigningToken:  "d1f7c3a9b5e2481f9c6d0a7e3b8f5c2a9d4e1b6f8c3a0d7e5b2f9c4a1d8e6b3f",
		SentAt:        &sentAt,
		SignedAt:      &signedAt,
		SignatureName: "Sarah Mitchell",
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.db.PostgreSQL.Create(&signed).Error; err != nil {
		return fmt.Errorf("failed to create signed contract: %w", err)
	}
	fmt.Printf("    ✅ Created contract: #%d (%s)\n", signed.ContractNumber, signed.Status)

	draft := contracts.Contract{
		ID:          uuid.New(),
		UserID:      musicianID,
		BookingID:   bookingIDs["pub_late"],
		ClientName:  "Brightwave Events Ltd",
		ClientEmail: "bookings@brightwave.example.com",
		Terms:       "Single evening set, PA provided by venue.",
		Fee:         300,
		Status:      contracts.StatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.db.PostgreSQL.Create(&draft).Error; err != nil {
		return fmt.Errorf("failed to create draft contract: %w", err)
	}
	fmt.Printf("    ✅ Created contract: #%d (%s)\n", draft.ContractNumber, draft.Status)

	return nil
}

// SeedInvoices creates a paid invoice, a sent invoice, and one already past
// its due date so the overdue sweep has work to do
func (s *Seeder) SeedInvoices(musicianID uuid.UUID, bookingIDs map[string]uuid.UUID) error {
	fmt.Println("  💷 Seeding invoices...")

	now := time.Now().UTC()
	weddingID := bookingIDs["wedding"]
	pubID := bookingIDs["pub_early"]

	paidDue := date(2026, time.August, 1)
	sentDue := now.AddDate(0, 0, 14)
	overdueDue := now.AddDate(0, 0, -10)

	paidSentAt := now.AddDate(0, -1, 0)
	paidAt := now.AddDate(0, 0, -20)
	sentAt := now.AddDate(0, 0, -2)
	overdueSentAt := now.AddDate(0, 0, -30)

	invoicesData := []struct {
		bookingID   *uuid.UUID
		clientName  string
		clientEmail string
		amount      float64
		dueDate     *time.Time
		status      invoices.Status
		sentAt      *time.Time
		paidAt      *time.Time
		notes       string
	}{
		{&weddingID, "Sarah Mitchell", "sarah.mitchell@example.com", 325, &paidDue, invoices.StatusPaid, &paidSentAt, &paidAt, "Wedding deposit (50%)"},
		{&weddingID, "Sarah Mitchell", "sarah.mitchell@example.com", 325, &sentDue, invoices.StatusSent, &sentAt, nil, "Wedding balance"},
		{&pubID, "The Kings Arms", "events@kingsarms.example.com", 180, &overdueDue, invoices.StatusSent, &overdueSentAt, nil, ""},
	}

	for _, invoiceData := range invoicesData {
		invoice := invoices.Invoice{
			ID:          uuid.New(),
			UserID:      musicianID,
			BookingID:   invoiceData.bookingID,
			ClientName:  invoiceData.clientName,
			ClientEmail: invoiceData.clientEmail,
			Amount:      invoiceData.amount,
			DueDate:     invoiceData.dueDate,
			Status:      invoiceData.status,
			SentAt:      invoiceData.sentAt,
			PaidAt:      invoiceData.paidAt,
			Notes:       invoiceData.notes,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		if err := s.db.PostgreSQL.Create(&invoice).Error; err != nil {
			return fmt.Errorf("failed to create invoice for %s: %w", invoiceData.clientName, err)
		}

		fmt.Printf("    ✅ Created invoice: #%d (%s)\n", invoice.InvoiceNumber, invoice.Status)
	}

	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
