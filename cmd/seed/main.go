package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"varsity/internal/courses"
	"varsity/internal/fixtures"
	"varsity/internal/sections"
	"varsity/internal/shared/config"
	"varsity/internal/shared/database"
	"varsity/internal/users"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Varsity Database Seeder...")

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
		"student_schedules",
		"sections",
		"rooms",
		"courses",
		"payments",
		"tickets",
		"orders",
		"fixtures",
		"time_slots",
		"stadiums",
		"teams",
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

	userIDs, err := s.SeedUsers()
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	teamIDs, err := s.SeedTeams()
	if err != nil {
		return fmt.Errorf("failed to seed teams: %w", err)
	}

	stadiumIDs, err := s.SeedStadiums()
	if err != nil {
		return fmt.Errorf("failed to seed stadiums: %w", err)
	}

	if err := s.SeedFixtures(teamIDs, stadiumIDs); err != nil {
		return fmt.Errorf("failed to seed fixtures: %w", err)
	}

	courseIDs, roomIDs, err := s.SeedCoursesAndRooms()
	if err != nil {
		return fmt.Errorf("failed to seed courses and rooms: %w", err)
	}

	if err := s.SeedSections(courseIDs, roomIDs, userIDs["faculty"]); err != nil {
		return fmt.Errorf("failed to seed sections: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if s.db.Redis != nil {
		if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
			log.Printf("Warning: Failed to clear Redis cache: %v", err)
		}
	}

	return nil
}

// SeedUsers creates one user per role
func (s *Seeder) SeedUsers() (map[string]uuid.UUID, error) {
	fmt.Println("  👤 Seeding users...")

	userIDs := make(map[string]uuid.UUID)

	// Hash password for all users (using "qwerty")
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		key   string
		name  string
		email string
		role  users.Role
	}{
		{"admin", "Admin User", "admin@varsity.edu", users.RoleAdmin},
		{"faculty", "Grace Hopper", "grace.hopper@varsity.edu", users.RoleFaculty},
		{"faculty2", "Alan Kay", "alan.kay@varsity.edu", users.RoleFaculty},
		{"student", "Sam Rivera", "sam.rivera@varsity.edu", users.RoleStudent},
		{"student2", "Priya Nair", "priya.nair@varsity.edu", users.RoleStudent},
		{"audience", "Jordan Lee", "jordan.lee@example.com", users.RoleAudience},
	}

	for _, userData := range usersData {
		user := users.User{
			ID:        uuid.New(),
			Name:      userData.name,
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

// SeedTeams creates the participating teams
func (s *Seeder) SeedTeams() ([]uuid.UUID, error) {
	fmt.Println("  🏈 Seeding teams...")

	var teamIDs []uuid.UUID

	teamsData := []struct {
		name      string
		shortName string
	}{
		{"Northside Wolves", "NSW"},
		{"Harbor City Sharks", "HCS"},
		{"Valley Ridge Hawks", "VRH"},
		{"Old Town Titans", "OTT"},
	}

	for _, teamData := range teamsData {
		team := fixtures.Team{
			ID:        uuid.New(),
			Name:      teamData.name,
			ShortName: teamData.shortName,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&team).Error; err != nil {
			return nil, fmt.Errorf("failed to create team %s: %w", team.Name, err)
		}

		teamIDs = append(teamIDs, team.ID)
		fmt.Printf("    ✅ Created team: %s\n", team.Name)
	}

	return teamIDs, nil
}

// SeedStadiums creates the venues fixtures are played in
func (s *Seeder) SeedStadiums() ([]uuid.UUID, error) {
	fmt.Println("  🏟️ Seeding stadiums...")

	var stadiumIDs []uuid.UUID

	stadiumsData := []struct {
		name string
		abbr string
		size int
	}{
		{"University Bowl", "UB", 25000},
		{"Riverside Arena", "RA", 8000},
		{"Memorial Field", "MF", 12000},
	}

	for _, stadiumData := range stadiumsData {
		stadium := fixtures.Stadium{
			ID:        uuid.New(),
			Name:      stadiumData.name,
			Abbr:      stadiumData.abbr,
			Size:      stadiumData.size,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&stadium).Error; err != nil {
			return nil, fmt.Errorf("failed to create stadium %s: %w", stadium.Name, err)
		}

		stadiumIDs = append(stadiumIDs, stadium.ID)
		fmt.Printf("    ✅ Created stadium: %s\n", stadium.Name)
	}

	return stadiumIDs, nil
}

// SeedFixtures creates fixtures with their time slots
func (s *Seeder) SeedFixtures(teamIDs, stadiumIDs []uuid.UUID) error {
	fmt.Println("  🎟️ Seeding fixtures...")

	fixturesData := []struct {
		teamOne   int
		teamTwo   int
		stadium   int
		day       string
		startHour int
		price     float64
	}{
		{0, 1, 0, "SATURDAY", 15, 45.00},
		{2, 3, 1, "SATURDAY", 19, 30.00},
		{0, 2, 2, "SUNDAY", 14, 35.00},
		{1, 3, 0, "FRIDAY", 20, 55.00},
	}

	for _, fixtureData := range fixturesData {
		start := time.Date(2000, 1, 1, fixtureData.startHour, 0, 0, 0, time.UTC)
		slot := fixtures.TimeSlot{
			ID:        uuid.New(),
			Day:       fixtureData.day,
			Start:     start,
			End:       start.Add(2 * time.Hour),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&slot).Error; err != nil {
			return fmt.Errorf("failed to create time slot: %w", err)
		}

		fixture := fixtures.Fixture{
			ID:             uuid.New(),
			TeamOneID:      teamIDs[fixtureData.teamOne],
			TeamTwoID:      teamIDs[fixtureData.teamTwo],
			StadiumID:      stadiumIDs[fixtureData.stadium],
			TimeSlotID:     slot.ID,
			PricePerTicket: fixtureData.price,
			CreatedAt:      time.Now(),
			UpdatedAt:      time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&fixture).Error; err != nil {
			return fmt.Errorf("failed to create fixture: %w", err)
		}

		fmt.Printf("    ✅ Created fixture on %s at %02d:00\n", fixtureData.day, fixtureData.startHour)
	}

	return nil
}

// SeedCoursesAndRooms creates the academic catalog
func (s *Seeder) SeedCoursesAndRooms() ([]uuid.UUID, []uuid.UUID, error) {
	fmt.Println("  📚 Seeding courses and rooms...")

	coursesData := []struct {
		name string
		code string
	}{
		{"Introduction to Computer Science", "CS101"},
		{"Data Structures and Algorithms", "CS201"},
		{"Linear Algebra", "MATH220"},
		{"Modern World History", "HIST150"},
	}

	var courseIDs []uuid.UUID
	for _, courseData := range coursesData {
		course := courses.Course{
			ID:        uuid.New(),
			Name:      courseData.name,
			Code:      courseData.code,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&course).Error; err != nil {
			return nil, nil, fmt.Errorf("failed to create course %s: %w", course.Code, err)
		}

		courseIDs = append(courseIDs, course.ID)
		fmt.Printf("    ✅ Created course: %s (%s)\n", course.Name, course.Code)
	}

	roomsData := []struct {
		no       string
		capacity int
	}{
		{"A-101", 60},
		{"A-204", 40},
		{"B-310", 120},
	}

	var roomIDs []uuid.UUID
	for _, roomData := range roomsData {
		room := courses.Room{
			ID:          uuid.New(),
			No:          roomData.no,
			MaxCapacity: roomData.capacity,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&room).Error; err != nil {
			return nil, nil, fmt.Errorf("failed to create room %s: %w", room.No, err)
		}

		roomIDs = append(roomIDs, room.ID)
		fmt.Printf("    ✅ Created room: %s\n", room.No)
	}

	return courseIDs, roomIDs, nil
}

// SeedSections creates teaching sections, including a deliberately
// overlapping pair so schedule conflict detection has something to flag
func (s *Seeder) SeedSections(courseIDs, roomIDs []uuid.UUID, facultyID uuid.UUID) error {
	fmt.Println("  🗓️ Seeding sections...")

	sectionsData := []struct {
		name      string
		code      string
		course    int
		room      int
		day       string
		startHour int
		endHour   int
	}{
		{"CS101 Morning", "CS101-A", 0, 0, "MONDAY", 9, 11},
		{"CS201 Morning", "CS201-A", 1, 1, "MONDAY", 10, 12}, // overlaps CS101-A
		{"MATH220 Afternoon", "MATH220-A", 2, 2, "TUESDAY", 13, 15},
		{"HIST150 Evening", "HIST150-A", 3, 0, "WEDNESDAY", 17, 19},
	}

	for _, sectionData := range sectionsData {
		section := sections.Section{
			ID:        uuid.New(),
			Name:      sectionData.name,
			Code:      sectionData.code,
			CourseID:  courseIDs[sectionData.course],
			FacultyID: facultyID,
			RoomID:    roomIDs[sectionData.room],
			Day:       sectionData.day,
			StartTime: time.Date(2000, 1, 1, sectionData.startHour, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2000, 1, 1, sectionData.endHour, 0, 0, 0, time.UTC),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&section).Error; err != nil {
			return fmt.Errorf("failed to create section %s: %w", section.Code, err)
		}

		fmt.Printf("    ✅ Created section: %s\n", section.Code)
	}

	return nil
}
