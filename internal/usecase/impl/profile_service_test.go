package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"heritage/internal/domain/entity"
	"heritage/internal/infra/querycache"
	mockGw "heritage/internal/mocks/gateway"
	"heritage/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProfileService(t *testing.T) (usecase.ProfileUsecase, *mockGw.MockGateway, *querycache.Cache) {
	gw := mockGw.NewMockGateway(t)
	cache := querycache.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewProfileService(gw, cache, logger), gw, cache
}

func TestProfileService_GetCallerProfile_CachesAbsence(t *testing.T) {
	service, gw, _ := createTestProfileService(t)

	ctx := context.Background()
	caller := entity.Identity("user-1")

	gw.EXPECT().GetCallerUserProfile(ctx, caller).Return(nil, nil).Once()

	profile, err := service.GetCallerProfile(ctx, caller)
	require.NoError(t, err)
	assert.Nil(t, profile)

	// Absence is cached too: no second remote call.
	profile, err = service.GetCallerProfile(ctx, caller)
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestProfileService_GetCallerProfile_Error(t *testing.T) {
	service, gw, _ := createTestProfileService(t)

	ctx := context.Background()
	caller := entity.Identity("user-1")

	gw.EXPECT().GetCallerUserProfile(ctx, caller).Return(nil, errors.New("gateway down"))

	profile, err := service.GetCallerProfile(ctx, caller)

	assert.Error(t, err)
	assert.Nil(t, profile)
	assert.Contains(t, err.Error(), "failed to get caller profile")
}

func TestProfileService_SaveCallerProfile_NameRequired(t *testing.T) {
	service, _, _ := createTestProfileService(t)

	err := service.SaveCallerProfile(context.Background(), "user-1", &usecase.ProfileInput{Name: "   "})

	var fieldErrs usecase.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "Name is required", fieldErrs["name"])
}

func TestProfileService_SaveCallerProfile_InvalidatesCachedProfile(t *testing.T) {
	service, gw, cache := createTestProfileService(t)

	ctx := context.Background()
	caller := entity.Identity("user-1")
	key := querycache.Key("currentUserProfile", caller.String())
	cache.Set(key, (*entity.UserProfile)(nil))

	gw.EXPECT().
		SaveCallerUserProfile(ctx, caller, entity.UserProfile{
			Name:        "Asha Verma",
			Email:       "asha@example.com",
			PhoneNumber: "9876543210",
		}).
		Return(nil)

	err := service.SaveCallerProfile(ctx, caller, &usecase.ProfileInput{
		Name:        "  Asha Verma  ",
		Email:       "asha@example.com",
		PhoneNumber: "9876543210",
	})

	require.NoError(t, err)
	_, ok := cache.Get(key)
	assert.False(t, ok)
}
