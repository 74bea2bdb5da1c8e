package integration

import (
	"context"
	"net/http"
	"testing"

	"github.com/tanvi/artisan-market/internal/models"
	"github.com/tanvi/artisan-market/pkg/client"
)

func TestSupportMessageLifecycle(t *testing.T) {
	e, cleanup := setupAPI(t)
	defer cleanup()

	ctx := context.Background()

	// Anyone may submit a message, no account needed.
	msg, err := e.client().CreateSupportMessage(ctx, client.SupportParams{
		Name:    "Priya Sharma",
		Email:   "priya@example.com",
		Subject: "Damaged vase",
		Message: "The vase arrived chipped.",
	})
	if err != nil {
		t.Fatalf("Create support message: %v", err)
	}
	if msg.Status != models.SupportStatusOpen {
		t.Errorf("Expected status open, got %s", msg.Status)
	}

	admin := adminClient(t, e)

	open, err := admin.AdminSupportMessages(ctx, models.SupportStatusOpen)
	if err != nil {
		t.Fatalf("List open messages: %v", err)
	}
	if len(open) != 1 {
		t.Fatalf("Expected 1 open message, got %d", len(open))
	}

	resolved, err := admin.AdminSetSupportStatus(ctx, msg.ID, models.SupportStatusResolved)
	if err != nil {
		t.Fatalf("Resolve message: %v", err)
	}
	if resolved.Status != models.SupportStatusResolved {
		t.Errorf("Expected status resolved, got %s", resolved.Status)
	}

	open, err = admin.AdminSupportMessages(ctx, models.SupportStatusOpen)
	if err != nil {
		t.Fatalf("List open messages: %v", err)
	}
	if len(open) != 0 {
		t.Errorf("Expected no open messages, got %d", len(open))
	}
}

func TestSupportStatusValidation(t *testing.T) {
	e, cleanup := setupAPI(t)
	defer cleanup()

	ctx := context.Background()
	msg, err := e.client().CreateSupportMessage(ctx, client.SupportParams{
		Name:    "Priya Sharma",
		Email:   "priya@example.com",
		Subject: "Question",
		Message: "Do you ship to Pune?",
	})
	if err != nil {
		t.Fatalf("Create support message: %v", err)
	}

	admin := adminClient(t, e)
	_, err = admin.AdminSetSupportStatus(ctx, msg.ID, "archived")
	if err == nil {
		t.Fatal("Expected unknown support status to be rejected")
	}
	if status := apiStatus(t, err); status != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", status)
	}
}

func TestSupportListRequiresAdmin(t *testing.T) {
	e, cleanup := setupAPI(t)
	defer cleanup()

	customer, _ := registerUser(t, e, "priya@example.com")

	_, err := customer.AdminSupportMessages(context.Background(), "")
	if err == nil {
		t.Fatal("Expected support listing to be forbidden for customers")
	}
	if status := apiStatus(t, err); status != http.StatusForbidden {
		t.Errorf("Expected 403, got %d", status)
	}
}
