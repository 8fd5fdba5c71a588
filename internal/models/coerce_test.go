package models

import (
	"encoding/json"
	"testing"
)

func TestNumberCoercion(t *testing.T) {
	cases := []struct {
		in   string
		want Number
	}{
		{`12.5`, 12.5},
		{`"12.5"`, 12.5},
		{`" 7 "`, 7},
		{`""`, 0},
		{`null`, 0},
		{`true`, 0},
		{`{"nested":1}`, 0},
		{`"not a number"`, 0},
	}
	for _, tc := range cases {
		var n Number
		if err := json.Unmarshal([]byte(tc.in), &n); err != nil {
			t.Errorf("Unmarshal(%s) errored: %v", tc.in, err)
			continue
		}
		if n != tc.want {
			t.Errorf("Unmarshal(%s) = %v, want %v", tc.in, n, tc.want)
		}
	}
}

func TestNumberAbsentFieldDefaultsToZero(t *testing.T) {
	var p Product
	if err := json.Unmarshal([]byte(`{"id":"p1","name":"Oil"}`), &p); err != nil {
		t.Fatal(err)
	}
	if p.Quantity != 0 || p.Price != 0 || p.Cost != 0 {
		t.Fatalf("absent numerics should default to zero: %+v", p)
	}
}

func TestEmbeddedListsNeverFailTheRow(t *testing.T) {
	cases := []string{
		`{"id":"r1"}`,
		`{"id":"r1","items":null,"installments":null}`,
		`{"id":"r1","items":"garbage","installments":42}`,
		`{"id":"r1","items":{"k":"v"}}`,
	}
	for _, in := range cases {
		var r VehicleRepair
		if err := json.Unmarshal([]byte(in), &r); err != nil {
			t.Errorf("row %s should survive: %v", in, err)
			continue
		}
		if r.ID != "r1" {
			t.Errorf("row %s lost its id", in)
		}
		if len(r.Items) != 0 || len(r.Installments) != 0 {
			t.Errorf("row %s should have empty lists, got %+v", in, r)
		}
	}

	// And a well-formed list still decodes.
	var r VehicleRepair
	good := `{"id":"r1","items":[{"type":"Service","price":"40","quantity":2}]}`
	if err := json.Unmarshal([]byte(good), &r); err != nil {
		t.Fatal(err)
	}
	if len(r.Items) != 1 || r.Items[0].Subtotal() != 80 {
		t.Fatalf("items = %+v, want one line with subtotal 80", r.Items)
	}
}

func TestRepairTotalsAndBalance(t *testing.T) {
	r := VehicleRepair{
		Items: RepairItems{
			{Type: ItemPart, Price: 30, Quantity: 2},
			{Type: ItemService, Price: 50, Quantity: 1},
		},
		Installments: Installments{{Amount: 40}, {Amount: 10}},
	}
	if r.Total() != 110 {
		t.Fatalf("total = %v, want 110", r.Total())
	}
	if r.Paid() != 50 {
		t.Fatalf("paid = %v, want 50", r.Paid())
	}
	// Installments reduce the balance, never the total.
	if r.Balance() != 60 {
		t.Fatalf("balance = %v, want 60", r.Balance())
	}
}
