package integration

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/tanvi/artisan-market/pkg/client"
)

func TestRegisterAndMe(t *testing.T) {
	e, cleanup := setupAPI(t)
	defer cleanup()

	c, user := registerUser(t, e, "priya@example.com")

	if user.Email != "priya@example.com" {
		t.Errorf("Expected email priya@example.com, got %s", user.Email)
	}
	if user.IsAdmin {
		t.Error("New accounts must not be admins")
	}

	me, err := c.Me(context.Background())
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if me.ID != user.ID {
		t.Errorf("Expected user %s, got %s", user.ID, me.ID)
	}
}

func TestMeNeverExposesPassword(t *testing.T) {
	e, cleanup := setupAPI(t)
	defer cleanup()

	c, _ := registerUser(t, e, "priya@example.com")

	req, _ := http.NewRequest(http.MethodGet, e.baseURL+"/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+c.Token())
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /api/auth/me: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var fields map[string]interface{}
	if err := json.Unmarshal(body, &fields); err != nil {
		t.Fatalf("Decode body: %v", err)
	}

	for key := range fields {
		if key == "password" || key == "passwordHash" || key == "password_hash" {
			t.Errorf("Response leaks credential field %q", key)
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	e, cleanup := setupAPI(t)
	defer cleanup()

	_, first := registerUser(t, e, "priya@example.com")

	c := e.client()
	_, err := c.Register(context.Background(), client.RegisterParams{
		Email:     "priya@example.com",
		Password:  "different",
		FirstName: "Other",
		LastName:  "Person",
	})
	if err == nil {
		t.Fatal("Expected duplicate email to fail")
	}
	if status := apiStatus(t, err); status != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", status)
	}

	// The first account still works with its original password.
	again := e.client()
	result, err := again.Login(context.Background(), "priya@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login after duplicate attempt: %v", err)
	}
	if result.User.ID != first.ID {
		t.Errorf("Expected user %s, got %s", first.ID, result.User.ID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	e, cleanup := setupAPI(t)
	defer cleanup()

	registerUser(t, e, "priya@example.com")

	c := e.client()
	_, err := c.Login(context.Background(), "priya@example.com", "wrong")
	if err == nil {
		t.Fatal("Expected login to fail")
	}
	if status := apiStatus(t, err); status != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", status)
	}

	_, err = c.Login(context.Background(), "nobody@example.com", "secret123")
	if err == nil {
		t.Fatal("Expected login to fail")
	}
	if status := apiStatus(t, err); status != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", status)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	e, cleanup := setupAPI(t)
	defer cleanup()

	c, _ := registerUser(t, e, "priya@example.com")
	token := c.Token()

	if err := c.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	c.SetToken(token)
	_, err := c.Me(context.Background())
	if err == nil {
		t.Fatal("Expected revoked session to be rejected")
	}
	if status := apiStatus(t, err); status != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", status)
	}
}
