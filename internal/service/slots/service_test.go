package slots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PMS-ReservationService/internal/domain"
	orgRepo "github.com/m04kA/PMS-ReservationService/internal/infra/storage/organization"
	"github.com/m04kA/PMS-ReservationService/internal/service/slots/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeSlotRepo struct {
	created *domain.ParkingSlot
	listed  []*domain.SlotWithOrganization
}

func (f *fakeSlotRepo) Create(ctx context.Context, slot *domain.ParkingSlot) (*domain.ParkingSlot, error) {
	created := *slot
	created.ID = 11
	f.created = &created
	return &created, nil
}

func (f *fakeSlotRepo) List(ctx context.Context) ([]*domain.SlotWithOrganization, error) {
	return f.listed, nil
}

func (f *fakeSlotRepo) ListByOrganization(ctx context.Context, organizationID int64) ([]*domain.ParkingSlot, error) {
	return nil, nil
}

type fakeOrgRepo struct {
	known int64
}

func (f *fakeOrgRepo) GetByID(ctx context.Context, id int64) (*domain.Organization, error) {
	if id != f.known {
		return nil, orgRepo.ErrOrganizationNotFound
	}
	return &domain.Organization{ID: id}, nil
}

func validCreateRequest() *models.CreateSlotRequest {
	return &models.CreateSlotRequest{
		Name:       "Level A",
		SlotType:   "4W",
		TotalSlots: 20,
		Price:      50,
	}
}

func TestCreate(t *testing.T) {
	slots := &fakeSlotRepo{}
	svc := NewService(slots, &fakeOrgRepo{known: 2}, nopLogger{})

	resp, err := svc.Create(context.Background(), 2, validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, int64(2), resp.OrganizationID)
	// новый слот полностью свободен
	assert.Equal(t, 20, resp.TotalSlots)
	assert.Equal(t, 20, resp.AvailableSlots)
	assert.Equal(t, 20, slots.created.AvailableSlots)
}

func TestCreate_OrganizationNotFound(t *testing.T) {
	svc := NewService(&fakeSlotRepo{}, &fakeOrgRepo{known: 2}, nopLogger{})

	_, err := svc.Create(context.Background(), 99, validCreateRequest())
	assert.ErrorIs(t, err, ErrOrganizationNotFound)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CreateSlotRequest)
	}{
		{"empty name", func(r *models.CreateSlotRequest) { r.Name = " " }},
		{"unknown vehicle class", func(r *models.CreateSlotRequest) { r.SlotType = "3W" }},
		{"zero capacity", func(r *models.CreateSlotRequest) { r.TotalSlots = 0 }},
		{"negative price", func(r *models.CreateSlotRequest) { r.Price = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeSlotRepo{}, &fakeOrgRepo{known: 2}, nopLogger{})

			req := validCreateRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), 2, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestList_Flattened(t *testing.T) {
	slots := &fakeSlotRepo{listed: []*domain.SlotWithOrganization{
		{
			ParkingSlot: domain.ParkingSlot{
				ID:             1,
				OrganizationID: 2,
				Name:           "Level A",
				SlotType:       domain.VehicleClass4W,
				TotalSlots:     20,
				AvailableSlots: 15,
			},
			OrganizationName:    "City Mall",
			OrganizationCity:    "Pune",
			OrganizationAddress: "MG Road",
		},
	}}
	svc := NewService(slots, &fakeOrgRepo{known: 2}, nopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)

	got := resp.Slots[0]
	assert.Equal(t, "Level A", got.Name)
	assert.Equal(t, "City Mall", got.OrganizationName)
	assert.Equal(t, "Pune", got.OrganizationCity)
	assert.Equal(t, "MG Road", got.OrganizationAddress)
}
