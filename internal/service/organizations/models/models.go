package models

import (
	"time"

	"github.com/m04kA/PMS-ReservationService/internal/domain"
)

// Request модели

// RegisterOrganizationRequest запрос на регистрацию организации
type RegisterOrganizationRequest struct {
	Name          string  `json:"name"`
	OrgType       string  `json:"orgType"`
	Description   *string `json:"description,omitempty"`
	TotalSlots2W  int     `json:"totalSlots2w"`
	TotalSlots4W  int     `json:"totalSlots4w"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	ZipCode       string  `json:"zipCode"`
	ContactPerson string  `json:"contactPerson"`
	ContactPhone  string  `json:"contactPhone"`
	Email         string  `json:"email"`
	Password      string  `json:"password"`
}

// Response модели

// SlotSummary краткие данные слота внутри ответа по организации
type SlotSummary struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	SlotType       string   `json:"slotType"`
	TotalSlots     int      `json:"totalSlots"`
	AvailableSlots int      `json:"availableSlots"`
	Price          float64  `json:"price"`
	Features       []string `json:"features"`
	Location       string   `json:"location"`
	Distance       string   `json:"distance"`
	Address        string   `json:"address"`
}

// OrganizationResponse ответ с данными организации.
// Хэш пароля наружу не отдается.
type OrganizationResponse struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	OrgType       string        `json:"orgType"`
	Description   *string       `json:"description,omitempty"`
	TotalSlots2W  int           `json:"totalSlots2w"`
	TotalSlots4W  int           `json:"totalSlots4w"`
	Address       string        `json:"address"`
	City          string        `json:"city"`
	State         string        `json:"state"`
	ZipCode       string        `json:"zipCode"`
	ContactPerson string        `json:"contactPerson"`
	ContactPhone  string        `json:"contactPhone"`
	Email         string        `json:"email"`
	Slots         []SlotSummary `json:"slots"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// OrganizationListResponse ответ со списком организаций
type OrganizationListResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
}

// Методы конвертации

// FromDomainOrganization конвертирует domain модель в DTO
func FromDomainOrganization(org *domain.Organization, slots []*domain.ParkingSlot) *OrganizationResponse {
	if org == nil {
		return nil
	}

	summaries := make([]SlotSummary, 0, len(slots))
	for _, s := range slots {
		summaries = append(summaries, SlotSummary{
			ID:             s.ID,
			Name:           s.Name,
			SlotType:       string(s.SlotType),
			TotalSlots:     s.TotalSlots,
			AvailableSlots: s.AvailableSlots,
			Price:          s.Price,
			Features:       s.Features,
			Location:       s.Location,
			Distance:       s.Distance,
			Address:        s.Address,
		})
	}

	return &OrganizationResponse{
		ID:            org.ID,
		Name:          org.Name,
		OrgType:       org.OrgType,
		Description:   org.Description,
		TotalSlots2W:  org.TotalSlots2W,
		TotalSlots4W:  org.TotalSlots4W,
		Address:       org.Address,
		City:          org.City,
		State:         org.State,
		ZipCode:       org.ZipCode,
		ContactPerson: org.ContactPerson,
		ContactPhone:  org.ContactPhone,
		Email:         org.Email,
		Slots:         summaries,
		CreatedAt:     org.CreatedAt,
	}
}

// ToDomainOrganization конвертирует запрос регистрации в domain модель.
// PasswordHash заполняет сервис после хэширования.
func (r *RegisterOrganizationRequest) ToDomainOrganization() *domain.Organization {
	return &domain.Organization{
		Name:          r.Name,
		OrgType:       r.OrgType,
		Description:   r.Description,
		TotalSlots2W:  r.TotalSlots2W,
		TotalSlots4W:  r.TotalSlots4W,
		Address:       r.Address,
		City:          r.City,
		State:         r.State,
		ZipCode:       r.ZipCode,
		ContactPerson: r.ContactPerson,
		ContactPhone:  r.ContactPhone,
		Email:         r.Email,
	}
}
