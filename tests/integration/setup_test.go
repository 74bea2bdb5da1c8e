package integration

import (
	"context"
	"database/sql"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/tanvi/artisan-market/internal/api"
	"github.com/tanvi/artisan-market/internal/auth"
	"github.com/tanvi/artisan-market/internal/config"
	"github.com/tanvi/artisan-market/internal/mailer"
	"github.com/tanvi/artisan-market/internal/models"
	"github.com/tanvi/artisan-market/internal/store"
	"github.com/tanvi/artisan-market/pkg/client"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

func setupTestDB(t *testing.T) (*sql.DB, func()) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:14-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	postgres, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}

	host, err := postgres.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := postgres.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	dsn := fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping database: %v", err)
	}

	if err := runMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	cleanup := func() {
		if err := db.Close(); err != nil {
			t.Logf("Failed to close database: %v", err)
		}
		if err := postgres.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	}

	return db, cleanup
}

func runMigrations(db *sql.DB) error {
	migrationDir := "../../migrations"
	files, err := os.ReadDir(migrationDir)
	if err != nil {
		return fmt.Errorf("read migration directory: %w", err)
	}

	var migrationFiles []string
	for _, file := range files {
		if !file.IsDir() && strings.HasSuffix(file.Name(), ".up.sql") {
			migrationFiles = append(migrationFiles, file.Name())
		}
	}

	sort.Strings(migrationFiles)

	for _, filename := range migrationFiles {
		filePath := filepath.Join(migrationDir, filename)
		content, err := os.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("read migration file %s: %w", filename, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("execute migration %s: %w", filename, err)
		}
	}

	return nil
}

// env is a running API backed by a throwaway database.
type env struct {
	db      *sql.DB
	baseURL string
}

func setupAPI(t *testing.T) (*env, func()) {
	db, dbCleanup := setupTestDB(t)

	gin.SetMode(gin.TestMode)
	sessions := auth.NewSessionStore()
	m := mailer.New(config.SMTPConfig{}, zap.NewNop())
	server := api.NewServer(db, sessions, m, zap.NewNop())

	ts := httptest.NewServer(server.Routes())

	cleanup := func() {
		ts.Close()
		dbCleanup()
	}
	return &env{db: db, baseURL: ts.URL}, cleanup
}

func (e *env) client() *client.Client {
	return client.New(e.baseURL)
}

// registerUser creates a customer account through the API and returns a
// client already holding its session token.
func registerUser(t *testing.T, e *env, email string) (*client.Client, *models.User) {
	c := e.client()
	result, err := c.Register(context.Background(), client.RegisterParams{
		Email:     email,
		Password:  "secret123",
		FirstName: "Test",
		LastName:  "Customer",
	})
	if err != nil {
		t.Fatalf("Register %s: %v", email, err)
	}
	return c, result.User
}

// adminClient inserts an admin user directly and logs it in through the API.
func adminClient(t *testing.T, e *env) *client.Client {
	hash, err := auth.HashPassword("admin123")
	if err != nil {
		t.Fatalf("Hash password: %v", err)
	}

	_, err = store.CreateUser(context.Background(), e.db, "admin@test.local", hash, "Admin", "User", true)
	if err != nil {
		t.Fatalf("Create admin: %v", err)
	}

	c := e.client()
	if _, err := c.Login(context.Background(), "admin@test.local", "admin123"); err != nil {
		t.Fatalf("Login admin: %v", err)
	}
	return c
}

// seedProduct inserts a product directly into the store.
func seedProduct(t *testing.T, e *env, asin, name, category, material, country string, price string) *models.Product {
	product, err := store.CreateProduct(context.Background(), e.db, store.ProductParams{
		ASIN:            asin,
		Name:            name,
		Description:     "Seeded for tests",
		OriginalPrice:   decimal.RequireFromString(price),
		Category:        category,
		Material:        material,
		CountryOfOrigin: country,
		Images:          []string{},
		InStock:         true,
	})
	if err != nil {
		t.Fatalf("Create product %s: %v", asin, err)
	}
	return product
}

func artisanParams(name, specialization string) store.ArtisanParams {
	return store.ArtisanParams{
		Name:           name,
		Bio:            "Seeded for tests",
		Location:       "Jaipur, Rajasthan",
		Specialization: specialization,
		Experience:     "20 years",
		Story:          "Seeded for tests",
	}
}

func apiStatus(t *testing.T, err error) int {
	t.Helper()
	apiErr, ok := err.(*client.APIError)
	if !ok {
		t.Fatalf("Expected API error, got: %v", err)
	}
	return apiErr.Status
}
