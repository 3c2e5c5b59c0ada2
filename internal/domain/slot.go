package domain

import "time"

// VehicleClass represents the vehicle class a slot accepts
type VehicleClass string

const (
	VehicleClass2W VehicleClass = "2W"
	VehicleClass4W VehicleClass = "4W"
)

// IsValid returns true if the vehicle class is one of the supported values
func (v VehicleClass) IsValid() bool {
	return v == VehicleClass2W || v == VehicleClass4W
}

// ParkingSlot represents one bookable inventory unit belonging to an organization.
// Инвариант: 0 <= AvailableSlots <= TotalSlots.
type ParkingSlot struct {
	ID             int64
	OrganizationID int64
	Name           string
	SlotType       VehicleClass
	TotalSlots     int // Capacity ceiling, set at creation (authoritative)
	AvailableSlots int // Mutable counter, decremented on admission
	Price          float64
	Features       []string
	Location       string
	Distance       string
	Address        string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCapacity returns true if at least one unit is available
func (s *ParkingSlot) HasCapacity() bool {
	return s.AvailableSlots > 0
}

// IsExhausted returns true if no units are available
func (s *ParkingSlot) IsExhausted() bool {
	return s.AvailableSlots <= 0
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (s *ParkingSlot) OccupancyRate() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	occupied := s.TotalSlots - s.AvailableSlots
	return float64(occupied) / float64(s.TotalSlots) * 100
}

// SlotWithOrganization парковочный слот с денормализованными данными организации.
// Используется в плоском списке слотов для выдачи наружу.
type SlotWithOrganization struct {
	ParkingSlot
	OrganizationName    string
	OrganizationCity    string
	OrganizationAddress string
}
