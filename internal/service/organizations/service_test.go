package organizations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/PMS-ReservationService/internal/domain"
	orgRepo "github.com/m04kA/PMS-ReservationService/internal/infra/storage/organization"
	"github.com/m04kA/PMS-ReservationService/internal/service/organizations/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeOrgRepo struct {
	nextID int64
	orgs   []*domain.Organization
}

func (f *fakeOrgRepo) Create(ctx context.Context, org *domain.Organization) (*domain.Organization, error) {
	for _, existing := range f.orgs {
		if existing.Email == org.Email {
			return nil, orgRepo.ErrDuplicateEmail
		}
	}
	f.nextID++
	created := *org
	created.ID = f.nextID
	f.orgs = append(f.orgs, &created)
	return &created, nil
}

func (f *fakeOrgRepo) GetByID(ctx context.Context, id int64) (*domain.Organization, error) {
	for _, org := range f.orgs {
		if org.ID == id {
			return org, nil
		}
	}
	return nil, orgRepo.ErrOrganizationNotFound
}

func (f *fakeOrgRepo) List(ctx context.Context) ([]*domain.Organization, error) {
	return f.orgs, nil
}

type fakeSlotRepo struct {
	slots map[int64][]*domain.ParkingSlot
}

func (f *fakeSlotRepo) ListByOrganization(ctx context.Context, organizationID int64) ([]*domain.ParkingSlot, error) {
	return f.slots[organizationID], nil
}

func validRegisterRequest() *models.RegisterOrganizationRequest {
	return &models.RegisterOrganizationRequest{
		Name:         "City Mall",
		OrgType:      "mall",
		TotalSlots2W: 30,
		TotalSlots4W: 70,
		City:         "Pune",
		Email:        "Mall@Example.com",
		Password:     "secret-pass",
	}
}

func TestRegister(t *testing.T) {
	repo := &fakeOrgRepo{}
	svc := NewService(repo, &fakeSlotRepo{}, nopLogger{})

	resp, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "City Mall", resp.Name)
	// email нормализуется к нижнему регистру
	assert.Equal(t, "mall@example.com", resp.Email)

	// в хранилище bcrypt-хэш, не пароль
	stored := repo.orgs[0]
	assert.NotEqual(t, "secret-pass", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret-pass")))
}

func TestRegister_EmailTaken(t *testing.T) {
	repo := &fakeOrgRepo{}
	svc := NewService(repo, &fakeSlotRepo{}, nopLogger{})

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validRegisterRequest())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.RegisterOrganizationRequest)
	}{
		{"empty name", func(r *models.RegisterOrganizationRequest) { r.Name = "  " }},
		{"bad email", func(r *models.RegisterOrganizationRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *models.RegisterOrganizationRequest) { r.Password = "123" }},
		{"negative slots", func(r *models.RegisterOrganizationRequest) { r.TotalSlots2W = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeOrgRepo{}, &fakeSlotRepo{}, nopLogger{})

			req := validRegisterRequest()
			tt.mutate(req)

			_, err := svc.Register(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestList_NestsSlots(t *testing.T) {
	repo := &fakeOrgRepo{}
	slots := &fakeSlotRepo{slots: map[int64][]*domain.ParkingSlot{}}
	svc := NewService(repo, slots, nopLogger{})

	first, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	second := validRegisterRequest()
	second.Email = "other@example.com"
	_, err = svc.Register(context.Background(), second)
	require.NoError(t, err)

	slots.slots[first.ID] = []*domain.ParkingSlot{
		{ID: 1, OrganizationID: first.ID, Name: "Level A", SlotType: domain.VehicleClass4W, TotalSlots: 70, AvailableSlots: 65},
	}

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Organizations, 2)

	require.Len(t, resp.Organizations[0].Slots, 1)
	assert.Equal(t, "Level A", resp.Organizations[0].Slots[0].Name)
	assert.Empty(t, resp.Organizations[1].Slots)
}
