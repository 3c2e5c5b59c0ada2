package domain

import "time"

// Organization represents a facility operator that owns parking slots
type Organization struct {
	ID            int64
	Name          string
	OrgType       string
	Description   *string
	TotalSlots2W  int // Declared two-wheeler capacity (informational)
	TotalSlots4W  int // Declared four-wheeler capacity (informational)
	Address       string
	City          string
	State         string
	ZipCode       string
	ContactPerson string
	ContactPhone  string
	Email         string
	PasswordHash  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalDeclaredSlots returns the declared capacity across both vehicle classes.
// Informational only: the authoritative capacity lives on each ParkingSlot.
func (o *Organization) TotalDeclaredSlots() int {
	return o.TotalSlots2W + o.TotalSlots4W
}

// Administrator represents a platform administrator credential record
type Administrator struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
