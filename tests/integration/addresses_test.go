package integration

import (
	"context"
	"net/http"
	"testing"

	"github.com/tanvi/artisan-market/pkg/client"
)

func addressParams(street string, isDefault bool) client.AddressParams {
	return client.AddressParams{
		FirstName:     "Priya",
		LastName:      "Sharma",
		StreetAddress: street,
		City:          "Bengaluru",
		State:         "Karnataka",
		ZipCode:       "560001",
		Country:       "India",
		IsDefault:     isDefault,
	}
}

func TestAtMostOneDefaultAddress(t *testing.T) {
	e, cleanup := setupAPI(t)
	defer cleanup()

	c, _ := registerUser(t, e, "priya@example.com")
	ctx := context.Background()

	first, err := c.CreateAddress(ctx, addressParams("12 MG Road", true))
	if err != nil {
		t.Fatalf("Create first address: %v", err)
	}
	if !first.IsDefault {
		t.Error("First address should be default")
	}

	second, err := c.CreateAddress(ctx, addressParams("44 Residency Road", true))
	if err != nil {
		t.Fatalf("Create second address: %v", err)
	}
	if !second.IsDefault {
		t.Error("Second address should be default")
	}

	addresses, err := c.Addresses(ctx)
	if err != nil {
		t.Fatalf("List addresses: %v", err)
	}
	if len(addresses) != 2 {
		t.Fatalf("Expected 2 addresses, got %d", len(addresses))
	}

	defaults := 0
	for _, a := range addresses {
		if a.IsDefault {
			defaults++
			if a.ID != second.ID {
				t.Errorf("Expected %s to be the default, got %s", second.ID, a.ID)
			}
		}
	}
	if defaults != 1 {
		t.Errorf("Expected exactly one default address, got %d", defaults)
	}

	// The default sorts first.
	if addresses[0].ID != second.ID {
		t.Error("Default address should be listed first")
	}
}

func TestPromoteAddressToDefault(t *testing.T) {
	e, cleanup := setupAPI(t)
	defer cleanup()

	c, _ := registerUser(t, e, "priya@example.com")
	ctx := context.Background()

	first, err := c.CreateAddress(ctx, addressParams("12 MG Road", true))
	if err != nil {
		t.Fatalf("Create first address: %v", err)
	}
	second, err := c.CreateAddress(ctx, addressParams("44 Residency Road", false))
	if err != nil {
		t.Fatalf("Create second address: %v", err)
	}

	promoted, err := c.UpdateAddress(ctx, second.ID, map[string]interface{}{"isDefault": true})
	if err != nil {
		t.Fatalf("Promote address: %v", err)
	}
	if !promoted.IsDefault {
		t.Error("Promoted address should be default")
	}

	addresses, err := c.Addresses(ctx)
	if err != nil {
		t.Fatalf("List addresses: %v", err)
	}
	for _, a := range addresses {
		if a.ID == first.ID && a.IsDefault {
			t.Error("Old default should have been cleared")
		}
	}
}

func TestAddressesAreOwnerScoped(t *testing.T) {
	e, cleanup := setupAPI(t)
	defer cleanup()

	priya, _ := registerUser(t, e, "priya@example.com")
	arjun, _ := registerUser(t, e, "arjun@example.com")
	ctx := context.Background()

	address, err := priya.CreateAddress(ctx, addressParams("12 MG Road", true))
	if err != nil {
		t.Fatalf("Create address: %v", err)
	}

	err = arjun.DeleteAddress(ctx, address.ID)
	if err == nil {
		t.Fatal("Expected foreign address delete to fail")
	}
	if status := apiStatus(t, err); status != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", status)
	}

	remaining, err := priya.Addresses(ctx)
	if err != nil {
		t.Fatalf("List addresses: %v", err)
	}
	if len(remaining) != 1 {
		t.Errorf("Expected the address to survive, got %d", len(remaining))
	}
}
