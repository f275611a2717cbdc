package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAvailabilityCache_GetUnavailable_Hit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewAvailabilityCache(client, 5*time.Minute)

	mock.ExpectGet("availability:room:r1").SetVal(`["2026-10-02","2026-10-03"]`)

	days, ok, err := c.GetUnavailable(context.Background(), "r1")

	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, days, 2)
	assert.Equal(t, day("2026-10-02"), days[0])
	assert.Equal(t, day("2026-10-03"), days[1])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailabilityCache_GetUnavailable_Miss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewAvailabilityCache(client, 5*time.Minute)

	mock.ExpectGet("availability:room:r1").RedisNil()

	days, ok, err := c.GetUnavailable(context.Background(), "r1")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, days)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailabilityCache_GetUnavailable_CorruptPayload(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewAvailabilityCache(client, 5*time.Minute)

	mock.ExpectGet("availability:room:r1").SetVal(`not json`)

	_, ok, err := c.GetUnavailable(context.Background(), "r1")

	require.Error(t, err)
	assert.False(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailabilityCache_SetUnavailable(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewAvailabilityCache(client, 5*time.Minute)

	mock.ExpectSet("availability:room:r1", []byte(`["2026-10-02"]`), 5*time.Minute).SetVal("OK")

	err := c.SetUnavailable(context.Background(), "r1", []time.Time{day("2026-10-02")})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailabilityCache_SetUnavailable_EmptyList(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewAvailabilityCache(client, 5*time.Minute)

	// An empty list is cached too, so a fully open room still gets a hit.
	mock.ExpectSet("availability:room:r1", []byte(`[]`), 5*time.Minute).SetVal("OK")

	err := c.SetUnavailable(context.Background(), "r1", nil)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailabilityCache_Invalidate(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewAvailabilityCache(client, 5*time.Minute)

	mock.ExpectDel("availability:room:r1").SetVal(1)

	err := c.Invalidate(context.Background(), "r1")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
