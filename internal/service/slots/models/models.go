package models

import (
	"github.com/m04kA/PMS-ReservationService/internal/domain"
)

// Request модели

// CreateSlotRequest запрос на создание парковочного слота
type CreateSlotRequest struct {
	Name       string   `json:"name"`
	SlotType   string   `json:"slotType"`
	TotalSlots int      `json:"totalSlots"`
	Price      float64  `json:"price"`
	Features   []string `json:"features,omitempty"`
	Location   string   `json:"location,omitempty"`
	Distance   string   `json:"distance,omitempty"`
	Address    string   `json:"address,omitempty"`
}

// Response модели

// SlotResponse плоское представление слота для выдачи наружу.
// Данные организации денормализованы в поля верхнего уровня.
type SlotResponse struct {
	ID                  int64    `json:"id"`
	OrganizationID      int64    `json:"organizationId"`
	OrganizationName    string   `json:"organizationName,omitempty"`
	OrganizationCity    string   `json:"organizationCity,omitempty"`
	OrganizationAddress string   `json:"organizationAddress,omitempty"`
	Name                string   `json:"name"`
	SlotType            string   `json:"slotType"`
	TotalSlots          int      `json:"totalSlots"`
	AvailableSlots      int      `json:"availableSlots"`
	Price               float64  `json:"price"`
	Features            []string `json:"features"`
	Location            string   `json:"location"`
	Distance            string   `json:"distance"`
	Address             string   `json:"address"`
}

// SlotListResponse ответ со списком слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// Методы конвертации

// FromDomainSlot конвертирует domain модель слота в DTO
func FromDomainSlot(s *domain.ParkingSlot) *SlotResponse {
	if s == nil {
		return nil
	}
	return &SlotResponse{
		ID:             s.ID,
		OrganizationID: s.OrganizationID,
		Name:           s.Name,
		SlotType:       string(s.SlotType),
		TotalSlots:     s.TotalSlots,
		AvailableSlots: s.AvailableSlots,
		Price:          s.Price,
		Features:       s.Features,
		Location:       s.Location,
		Distance:       s.Distance,
		Address:        s.Address,
	}
}

// FromDomainSlotWithOrganization конвертирует слот с данными организации в DTO
func FromDomainSlotWithOrganization(s *domain.SlotWithOrganization) *SlotResponse {
	if s == nil {
		return nil
	}
	resp := FromDomainSlot(&s.ParkingSlot)
	resp.OrganizationName = s.OrganizationName
	resp.OrganizationCity = s.OrganizationCity
	resp.OrganizationAddress = s.OrganizationAddress
	return resp
}

// ToDomainSlot конвертирует запрос создания в domain модель
func (r *CreateSlotRequest) ToDomainSlot(organizationID int64) *domain.ParkingSlot {
	return &domain.ParkingSlot{
		OrganizationID: organizationID,
		Name:           r.Name,
		SlotType:       domain.VehicleClass(r.SlotType),
		TotalSlots:     r.TotalSlots,
		AvailableSlots: r.TotalSlots,
		Price:          r.Price,
		Features:       r.Features,
		Location:       r.Location,
		Distance:       r.Distance,
		Address:        r.Address,
	}
}
