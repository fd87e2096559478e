package models

import (
	"errors"
	"testing"
)

func TestDecrementInventory(t *testing.T) {
	p := Product{Name: "Soap", Inventory: 10}
	if err := p.DecrementInventory(4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Inventory != 6 {
		t.Fatalf("inventory = %d, want 6", p.Inventory)
	}
}

func TestDecrementInventoryInsufficient(t *testing.T) {
	p := Product{Name: "Soap", Inventory: 3}
	err := p.DecrementInventory(5)

	var insufficient *InsufficientInventoryError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientInventoryError, got %v", err)
	}
	if insufficient.Requested != 5 || insufficient.Available != 3 {
		t.Errorf("error detail = %+v", insufficient)
	}
	// A rejected decrement must not touch the counter.
	if p.Inventory != 3 {
		t.Errorf("inventory = %d after rejection, want 3", p.Inventory)
	}
}

func TestDecrementInventoryInvalidQuantity(t *testing.T) {
	p := Product{Name: "Soap", Inventory: 3}
	for _, qty := range []int{0, -1} {
		if err := p.DecrementInventory(qty); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("DecrementInventory(%d) = %v, want ErrInvalidQuantity", qty, err)
		}
	}
	if p.Inventory != 3 {
		t.Errorf("inventory = %d, want 3", p.Inventory)
	}
}

func TestDecrementInventorySequence(t *testing.T) {
	p := Product{Name: "Soap", Inventory: 5}
	for i := 0; i < 5; i++ {
		if err := p.DecrementInventory(1); err != nil {
			t.Fatalf("decrement %d: %v", i, err)
		}
	}
	if p.Inventory != 0 {
		t.Fatalf("inventory = %d, want 0", p.Inventory)
	}
	if err := p.DecrementInventory(1); err == nil {
		t.Fatal("expected rejection at zero stock")
	}
}

func TestOrderChannelName(t *testing.T) {
	empty := ""
	online := "online"
	tests := []struct {
		channel *string
		want    string
	}{
		{nil, "unknown"},
		{&empty, "unknown"},
		{&online, "online"},
	}
	for _, tt := range tests {
		o := Order{Channel: tt.channel}
		if got := o.ChannelName(); got != tt.want {
			t.Errorf("ChannelName() = %q, want %q", got, tt.want)
		}
	}
}

func TestOrderRevenue(t *testing.T) {
	o := Order{Quantity: 3, SellingPrice: 49.5}
	if got := o.Revenue(); got != 148.5 {
		t.Fatalf("Revenue() = %v, want 148.5", got)
	}
}
