//go:build integration
// +build integration

package integration

import (
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/linskybing/consult-go/internal/api/middleware"
	"github.com/linskybing/consult-go/internal/api/routes"
	"github.com/linskybing/consult-go/internal/config"
	"github.com/linskybing/consult-go/internal/config/db"
	"github.com/linskybing/consult-go/internal/domain/advisor"
	"github.com/linskybing/consult-go/internal/domain/audit"
	"github.com/linskybing/consult-go/internal/domain/caseref"
	"github.com/linskybing/consult-go/internal/domain/ticket"
	"github.com/linskybing/consult-go/internal/domain/user"
	"github.com/linskybing/consult-go/pkg/types"
)

// TestContext holds all test dependencies
type TestContext struct {
	Router        *gin.Engine
	AdminToken    string
	AdvisorToken  string
	CustomerToken string
	TestAdmin     *user.User
	TestAdvisor   *user.User
	TestCustomer  *user.User
	TestCase      *caseref.Case
}

var testCtx *TestContext

// TestMain sets up the test environment
func TestMain(m *testing.M) {
	if err := setupTestEnvironment(); err != nil {
		log.Fatalf("Failed to setup test environment: %v", err)
	}

	code := m.Run()

	cleanupTestEnvironment()
	os.Exit(code)
}

func setupTestEnvironment() error {
	// Load test configuration from .env file in test/integration directory
	envPath := ".env"
	if err := godotenv.Load(envPath); err != nil {
		log.Printf("Warning: Could not load %s file: %v", envPath, err)
	}

	_ = os.Setenv("DB_PORT", getEnvOrDefault("TEST_DB_PORT", "5432"))
	_ = os.Setenv("DB_USER", getEnvOrDefault("TEST_DB_USER", "postgres"))
	_ = os.Setenv("DB_PASSWORD", getEnvOrDefault("TEST_DB_PASSWORD", "postgres"))
	_ = os.Setenv("DB_NAME", getEnvOrDefault("TEST_DB_NAME", "consult_test"))
	_ = os.Setenv("JWT_SECRET", "test-secret-key-for-integration-testing")
	_ = os.Setenv("ROOM_TOKEN_SECRET", "test-room-token-secret")
	_ = os.Setenv("SERVER_PORT", "8081")
	_ = os.Setenv("ISSUER", "test-consult")

	config.LoadConfig()
	middleware.Init()
	db.Init()

	// Drop and recreate tables for clean test state
	if err := db.DB.Migrator().DropTable(
		&user.User{},
		&caseref.Case{},
		&ticket.Ticket{},
		&advisor.Presence{},
		&audit.AuditLog{},
	); err != nil {
		return fmt.Errorf("failed to drop tables: %v", err)
	}

	if err := db.DB.AutoMigrate(
		&user.User{},
		&caseref.Case{},
		&ticket.Ticket{},
		&advisor.Presence{},
		&audit.AuditLog{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %v", err)
	}
	log.Println("AutoMigrate completed")

	if err := db.CreateIndexes(); err != nil {
		return fmt.Errorf("failed to create indexes: %v", err)
	}
	log.Println("Indexes created")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	routes.RegisterRoutes(router, db.DB)

	testCtx = &TestContext{Router: router}

	if err := createTestData(); err != nil {
		return fmt.Errorf("failed to create test data: %v", err)
	}
	log.Println("Test data created successfully")

	return nil
}

func createTestData() error {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	adminUser := &user.User{
		Username: "test-admin",
		Password: string(hashed),
		Role:     string(user.RoleAdmin),
	}
	if err := db.DB.Create(adminUser).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %v", err)
	}
	testCtx.TestAdmin = adminUser

	advisorUser := &user.User{
		Username: "test-advisor",
		Password: string(hashed),
		Role:     string(user.RoleAdvisor),
	}
	if err := db.DB.Create(advisorUser).Error; err != nil {
		return fmt.Errorf("failed to create advisor user: %v", err)
	}
	testCtx.TestAdvisor = advisorUser

	customerUser := &user.User{
		Username: "test-customer",
		Password: string(hashed),
		Role:     string(user.RoleCustomer),
	}
	if err := db.DB.Create(customerUser).Error; err != nil {
		return fmt.Errorf("failed to create customer user: %v", err)
	}
	testCtx.TestCustomer = customerUser

	testCase := &caseref.Case{
		CustomerID: customerUser.UID,
		Subject:    "integration test case",
	}
	if err := db.DB.Create(testCase).Error; err != nil {
		return fmt.Errorf("failed to create test case: %v", err)
	}
	testCtx.TestCase = testCase

	testCtx.AdminToken = generateToken(adminUser.UID, adminUser.Username, adminUser.Role)
	testCtx.AdvisorToken = generateToken(advisorUser.UID, advisorUser.Username, advisorUser.Role)
	testCtx.CustomerToken = generateToken(customerUser.UID, customerUser.Username, customerUser.Role)

	log.Printf("Test data created: Admin(UID=%d), Advisor(UID=%d), Customer(UID=%d), Case(CID=%d)",
		adminUser.UID, advisorUser.UID, customerUser.UID, testCase.CID)

	return nil
}

func generateToken(uid uint, username, role string) string {
	claims := &types.Claims{
		UserID:   uid,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    config.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(config.JwtSecret))
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	return tokenString
}

func cleanupTestEnvironment() {
	if testCtx == nil {
		return
	}

	if db.DB != nil {
		_ = db.DB.Migrator().DropTable(
			&user.User{},
			&caseref.Case{},
			&ticket.Ticket{},
			&advisor.Presence{},
			&audit.AuditLog{},
		)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetTestContext returns the global test context
func GetTestContext() *TestContext {
	return testCtx
}
