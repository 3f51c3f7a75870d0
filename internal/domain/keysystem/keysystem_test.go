package keysystem

import (
	"testing"
	"time"
)

func TestNewKeySystem(t *testing.T) {
	tests := []struct {
		name       string
		customerID uint
		keyCode    string
		attrs      Attributes
		wantErr    bool
	}{
		{name: "valid", customerID: 1, keyCode: "ABC123", wantErr: false},
		{name: "missing customer", customerID: 0, keyCode: "ABC123", wantErr: true},
		{name: "no key code at all", customerID: 1, keyCode: "", wantErr: true},
		{name: "secondary key code only", customerID: 1, keyCode: "", attrs: Attributes{KeyCode2: "XYZ9"}, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ks, err := NewKeySystem(tt.customerID, tt.keyCode, tt.attrs)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewKeySystem() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && ks.CustomerID() != tt.customerID {
				t.Errorf("CustomerID() = %d, want %d", ks.CustomerID(), tt.customerID)
			}
		})
	}
}

func TestParseBillingPlan(t *testing.T) {
	tests := []struct {
		in   string
		want BillingPlan
	}{
		{in: "Engångskostnad", want: PlanOneTime},
		{in: "månadskostnad", want: PlanMonthly},
		{in: "  Halvårskostnad  ", want: PlanHalfYear},
		{in: "HELÅRSKOSTNAD", want: PlanYearly},
		{in: "", want: ""},
		{in: "kvartal", want: ""},
	}

	for _, tt := range tests {
		if got := ParseBillingPlan(tt.in); got != tt.want {
			t.Errorf("ParseBillingPlan(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBillingPlan_IsRecurring(t *testing.T) {
	if PlanOneTime.IsRecurring() {
		t.Error("one-time plan should not be recurring")
	}
	for _, p := range []BillingPlan{PlanMonthly, PlanHalfYear, PlanYearly} {
		if !p.IsRecurring() {
			t.Errorf("%q should be recurring", p)
		}
	}
}

func TestKeySystem_PaymentExpired(t *testing.T) {
	newSystem := func(plan BillingPlan) *KeySystem {
		ks, err := NewKeySystem(1, "ABC123", Attributes{BillingPlan: plan, Price: 500})
		if err != nil {
			t.Fatalf("NewKeySystem() error = %v", err)
		}
		return ks
	}

	paidAt := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		plan BillingPlan
		now  time.Time
		want bool
	}{
		{name: "monthly within period", plan: PlanMonthly, now: paidAt.Add(29 * 24 * time.Hour), want: false},
		{name: "monthly at threshold", plan: PlanMonthly, now: paidAt.Add(30 * 24 * time.Hour), want: true},
		{name: "half-year within period", plan: PlanHalfYear, now: paidAt.Add(181 * 24 * time.Hour), want: false},
		{name: "half-year expired", plan: PlanHalfYear, now: paidAt.Add(182 * 24 * time.Hour), want: true},
		{name: "yearly within period", plan: PlanYearly, now: paidAt.Add(364 * 24 * time.Hour), want: false},
		{name: "yearly expired", plan: PlanYearly, now: paidAt.Add(366 * 24 * time.Hour), want: true},
		{name: "one-time never expires", plan: PlanOneTime, now: paidAt.Add(9999 * time.Hour), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ks := newSystem(tt.plan)
			ks.MarkPaid(paidAt)
			if got := ks.PaymentExpired(tt.now); got != tt.want {
				t.Errorf("PaymentExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeySystem_PaymentExpired_Unpaid(t *testing.T) {
	ks, err := NewKeySystem(1, "ABC123", Attributes{BillingPlan: PlanMonthly})
	if err != nil {
		t.Fatalf("NewKeySystem() error = %v", err)
	}

	if ks.PaymentExpired(time.Now().Add(1000 * time.Hour)) {
		t.Error("an unpaid system cannot expire")
	}
}

func TestKeySystem_NextDueDate(t *testing.T) {
	ks, err := NewKeySystem(1, "ABC123", Attributes{BillingPlan: PlanMonthly})
	if err != nil {
		t.Fatalf("NewKeySystem() error = %v", err)
	}

	if ks.NextDueDate() != nil {
		t.Error("unpaid system should have no due date")
	}

	paidAt := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	ks.MarkPaid(paidAt)

	due := ks.NextDueDate()
	if due == nil {
		t.Fatal("paid recurring system should have a due date")
	}
	if want := paidAt.Add(30 * 24 * time.Hour); !due.Equal(want) {
		t.Errorf("NextDueDate() = %v, want %v", due, want)
	}

	ks.MarkUnpaid()
	if ks.IsPaid() {
		t.Error("MarkUnpaid() should clear the paid flag")
	}
}

func TestKeySystem_RecordInvoice(t *testing.T) {
	ks, err := NewKeySystem(1, "ABC123", Attributes{})
	if err != nil {
		t.Fatalf("NewKeySystem() error = %v", err)
	}

	first := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	second := first.AddDate(0, 1, 0)

	ks.RecordInvoice(first)
	ks.RecordInvoice(second)

	if ks.InvoiceCount() != 2 {
		t.Errorf("InvoiceCount() = %d, want 2", ks.InvoiceCount())
	}
	if ks.LastInvoiceDate() == nil || !ks.LastInvoiceDate().Equal(second) {
		t.Errorf("LastInvoiceDate() = %v, want %v", ks.LastInvoiceDate(), second)
	}
}

func TestKeySystem_AdvanceSequence(t *testing.T) {
	ks, err := NewKeySystem(1, "ABC123", Attributes{})
	if err != nil {
		t.Fatalf("NewKeySystem() error = %v", err)
	}

	ks.AdvanceSequence(14)
	if ks.LastSequenceNumber() != 14 {
		t.Errorf("LastSequenceNumber() = %d, want 14", ks.LastSequenceNumber())
	}

	// Lower values never roll the counter back.
	ks.AdvanceSequence(10)
	if ks.LastSequenceNumber() != 14 {
		t.Errorf("LastSequenceNumber() = %d after lower advance, want 14", ks.LastSequenceNumber())
	}

	ks.AdvanceSequence(20)
	if ks.LastSequenceNumber() != 20 {
		t.Errorf("LastSequenceNumber() = %d, want 20", ks.LastSequenceNumber())
	}
}
