package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codedprincesharma/Marketplace-Microservices/internal/domain"
)

func seedUser(t *testing.T, repo *fakeUserRepo) *domain.User {
	t.Helper()

	user := &domain.User{
		ID:        uuid.New(),
		Username:  "johndoe",
		Email:     "john@example.com",
		FirstName: "John",
		LastName:  "Doe",
		Role:      domain.RoleUser,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestGetProfile(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	user := seedUser(t, repo)
	ctx := context.Background()

	profile, err := svc.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.ID)
	assert.Equal(t, domain.FullName{FirstName: "John", LastName: "Doe"}, profile.FullName)
	assert.NotNil(t, profile.Address, "addresses should marshal as [], not null")
	assert.Empty(t, profile.Address)
}

func TestGetProfileNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAddressLifecycle(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	user := seedUser(t, repo)
	ctx := context.Background()

	addresses, err := svc.ListAddresses(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, addresses)

	created, err := svc.AddAddress(ctx, user.ID, AddressRequest{
		Street:  "221B Baker Street",
		City:    "London",
		State:   "Greater London",
		Country: "UK",
		ZipCode: "12345",
		Phone:   "+441234567890",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, created.UserID)
	require.NotNil(t, created.Phone)
	assert.Equal(t, "+441234567890", *created.Phone)

	addresses, err = svc.ListAddresses(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, addresses, 1)
	assert.Equal(t, created.ID, addresses[0].ID)

	require.NoError(t, svc.DeleteAddress(ctx, user.ID, created.ID))

	addresses, err = svc.ListAddresses(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, addresses)
}

func TestAddAddressWithoutPhone(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	user := seedUser(t, repo)

	created, err := svc.AddAddress(context.Background(), user.ID, AddressRequest{
		Street:  "1 Main St",
		City:    "Springfield",
		State:   "IL",
		Country: "US",
		ZipCode: "62701",
	})
	require.NoError(t, err)
	assert.Nil(t, created.Phone)
}

func TestDeleteAddressNotFound(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	user := seedUser(t, repo)
	ctx := context.Background()

	err := svc.DeleteAddress(ctx, user.ID, uuid.New())
	assert.ErrorIs(t, err, ErrAddressNotFound)

	// An address belonging to another user is invisible to the caller.
	other := &domain.User{ID: uuid.New(), Username: "janedoe", Email: "jane@example.com"}
	require.NoError(t, repo.Create(ctx, other))
	created, err := svc.AddAddress(ctx, other.ID, AddressRequest{
		Street: "1 Main St", City: "Springfield", State: "IL", Country: "US", ZipCode: "62701",
	})
	require.NoError(t, err)

	err = svc.DeleteAddress(ctx, user.ID, created.ID)
	assert.ErrorIs(t, err, ErrAddressNotFound)
}
