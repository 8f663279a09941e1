package models

import (
	"encoding/json"
	"testing"
)

func TestBookingDecodeNeverPopulatesAddons(t *testing.T) {
	payload := []byte(`{
		"id": "b-1",
		"bookedCategory": "CDAR",
		"status": "open",
		"addons": [{"id": "a-1", "title": "Child seat", "amount": 2}]
	}`)

	var b Booking
	if err := json.Unmarshal(payload, &b); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if b.ID != "b-1" || b.BookedCategory != "CDAR" || b.Status != "open" {
		t.Fatalf("unexpected booking fields: %+v", b)
	}
	if b.Addons != nil {
		t.Fatalf("addons must stay client-owned, got %+v", b.Addons)
	}
}

func TestBookingDecodeProtectionsList(t *testing.T) {
	payload := []byte(`{
		"id": "b-2",
		"protectionPackages": [{"id": "p-1", "name": "Basic"}, {"id": "p-2", "name": "Full"}]
	}`)

	var b Booking
	if err := json.Unmarshal(payload, &b); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(b.ProtectionPackages) != 2 {
		t.Fatalf("expected 2 protection packages, got %d", len(b.ProtectionPackages))
	}
	if b.ProtectionPackages[1].ID != "p-2" {
		t.Fatalf("unexpected second package: %+v", b.ProtectionPackages[1])
	}
}

func TestBookingDecodeProtectionsSingleObject(t *testing.T) {
	payload := []byte(`{
		"id": "b-3",
		"protectionPackages": {"id": "p-1", "name": "Basic"}
	}`)

	var b Booking
	if err := json.Unmarshal(payload, &b); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(b.ProtectionPackages) != 1 || b.ProtectionPackages[0].ID != "p-1" {
		t.Fatalf("expected single-object payload to normalize to a one-element list, got %+v", b.ProtectionPackages)
	}
}

func TestBookingDecodeProtectionsNull(t *testing.T) {
	payload := []byte(`{"id": "b-4", "protectionPackages": null}`)

	var b Booking
	if err := json.Unmarshal(payload, &b); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if b.ProtectionPackages != nil {
		t.Fatalf("expected nil protections, got %+v", b.ProtectionPackages)
	}
}

func TestBookingDecodeToleratesUnknownFields(t *testing.T) {
	payload := []byte(`{
		"id": "b-5",
		"status": "open",
		"somethingNew": {"nested": true},
		"selectedVehicle": {"vehicle": {"id": "v-1", "acrissCode": "CDAR"}}
	}`)

	var b Booking
	if err := json.Unmarshal(payload, &b); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if b.SelectedVehicle == nil || b.SelectedVehicle.Vehicle.ID != "v-1" {
		t.Fatalf("expected selected vehicle v-1, got %+v", b.SelectedVehicle)
	}
}
