package cache_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"go-event-registration/config"
	"go-event-registration/internal/cache"
	"go-event-registration/internal/database"
	"go-event-registration/internal/model"
	apperrors "go-event-registration/pkg/app_errors"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRedis *redis.Client

func TestMain(m *testing.M) {
	cfg := config.LoadTestConfig()

	var err error
	testRedis, err = database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Printf("Skipping cache tests: test redis unavailable: %v", err)
		os.Exit(0)
	}

	code := m.Run()
	testRedis.Close()

	os.Exit(code)
}

func flushRedis(t *testing.T) {
	t.Helper()
	if err := testRedis.FlushDB(context.Background()).Err(); err != nil {
		t.Fatalf("Failed to flush test redis: %v", err)
	}
}

func TestRedisEventCache_RoundTrip(t *testing.T) {
	flushRedis(t)
	ctx := context.Background()
	eventCache := cache.NewRedisEventCache(testRedis, time.Minute)

	location := "Main Hall"
	events := []*model.Event{
		{
			ID:                1,
			Name:              "Tech Symposium",
			Category:          "Technology",
			EventDate:         "2026-09-15",
			Location:          &location,
			RegistrationStart: 100,
			RegistrationEnd:   200,
			Status:            true,
		},
	}

	require.NoError(t, eventCache.SetOpenEvents(ctx, events))

	got, err := eventCache.GetOpenEvents(ctx)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Tech Symposium", got[0].Name)
	require.NotNil(t, got[0].Location)
	assert.Equal(t, "Main Hall", *got[0].Location)
}

func TestRedisEventCache_MissOnEmptyKey(t *testing.T) {
	flushRedis(t)
	eventCache := cache.NewRedisEventCache(testRedis, time.Minute)

	_, err := eventCache.GetOpenEvents(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrCacheMiss)
}

func TestRedisEventCache_CorruptPayloadIsAMiss(t *testing.T) {
	flushRedis(t)
	ctx := context.Background()
	eventCache := cache.NewRedisEventCache(testRedis, time.Minute)

	require.NoError(t, testRedis.Set(ctx, "events:open", "not json", time.Minute).Err())

	_, err := eventCache.GetOpenEvents(ctx)

	assert.ErrorIs(t, err, apperrors.ErrCacheMiss)
}

func TestRedisEventCache_Invalidate(t *testing.T) {
	flushRedis(t)
	ctx := context.Background()
	eventCache := cache.NewRedisEventCache(testRedis, time.Minute)

	require.NoError(t, eventCache.SetOpenEvents(ctx, []*model.Event{{ID: 1, Name: "Tech Symposium"}}))
	require.NoError(t, eventCache.InvalidateOpenEvents(ctx))

	_, err := eventCache.GetOpenEvents(ctx)

	assert.ErrorIs(t, err, apperrors.ErrCacheMiss)
}

func TestRedisEventCache_EntryExpires(t *testing.T) {
	flushRedis(t)
	ctx := context.Background()
	eventCache := cache.NewRedisEventCache(testRedis, 50*time.Millisecond)

	require.NoError(t, eventCache.SetOpenEvents(ctx, []*model.Event{{ID: 1, Name: "Tech Symposium"}}))

	time.Sleep(100 * time.Millisecond)

	_, err := eventCache.GetOpenEvents(ctx)

	assert.ErrorIs(t, err, apperrors.ErrCacheMiss)
}
