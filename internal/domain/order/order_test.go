package order

import "testing"

func TestNewOrder(t *testing.T) {
	order, err := NewOrder(1, 2, "ABC123", "P5", 5, 10, "Anna Svensson", 7)
	if err != nil {
		t.Fatalf("NewOrder() error = %v", err)
	}

	if order.SequenceEnd() != 14 {
		t.Errorf("SequenceEnd() = %d, want 14", order.SequenceEnd())
	}
	if order.KeyResponsible() != "Anna Svensson" {
		t.Errorf("KeyResponsible() = %q", order.KeyResponsible())
	}
	if order.ExportedPDF() {
		t.Error("a new order should not be marked exported")
	}
	if order.OrderDate().IsZero() {
		t.Error("order date should be set")
	}
}

func TestNewOrder_SequenceEnd(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		start    int
		wantEnd  int
	}{
		{name: "single key", quantity: 1, start: 1, wantEnd: 1},
		{name: "five keys from ten", quantity: 5, start: 10, wantEnd: 14},
		{name: "start at zero", quantity: 3, start: 0, wantEnd: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := NewOrder(1, 2, "ABC123", "P5", tt.quantity, tt.start, "", 7)
			if err != nil {
				t.Fatalf("NewOrder() error = %v", err)
			}
			if order.SequenceEnd() != tt.wantEnd {
				t.Errorf("SequenceEnd() = %d, want %d", order.SequenceEnd(), tt.wantEnd)
			}
		})
	}
}

func TestNewOrder_DefaultKeyResponsible(t *testing.T) {
	order, err := NewOrder(1, 2, "ABC123", "P5", 1, 1, "", 7)
	if err != nil {
		t.Fatalf("NewOrder() error = %v", err)
	}
	if order.KeyResponsible() != DefaultKeyResponsible {
		t.Errorf("KeyResponsible() = %q, want %q", order.KeyResponsible(), DefaultKeyResponsible)
	}
}

func TestNewOrder_Validation(t *testing.T) {
	tests := []struct {
		name        string
		customerID  uint
		keySystemID uint
		keyCode     string
		quantity    int
		start       int
	}{
		{name: "missing customer", customerID: 0, keySystemID: 2, keyCode: "ABC", quantity: 1, start: 1},
		{name: "missing key system", customerID: 1, keySystemID: 0, keyCode: "ABC", quantity: 1, start: 1},
		{name: "missing key code", customerID: 1, keySystemID: 2, keyCode: "", quantity: 1, start: 1},
		{name: "zero quantity", customerID: 1, keySystemID: 2, keyCode: "ABC", quantity: 0, start: 1},
		{name: "negative start", customerID: 1, keySystemID: 2, keyCode: "ABC", quantity: 1, start: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewOrder(tt.customerID, tt.keySystemID, tt.keyCode, "P5", tt.quantity, tt.start, "", 7); err == nil {
				t.Error("NewOrder() should fail")
			}
		})
	}
}

func TestOrder_MarkExported(t *testing.T) {
	order, err := NewOrder(1, 2, "ABC123", "P5", 1, 1, "", 7)
	if err != nil {
		t.Fatalf("NewOrder() error = %v", err)
	}

	order.MarkExported()
	if !order.ExportedPDF() {
		t.Error("MarkExported() should set the exported flag")
	}
}
