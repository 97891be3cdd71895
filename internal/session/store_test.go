package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	data map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string]string)}
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	f.data[key] = fmt.Sprint(value)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	val, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, key := range keys {
		if _, ok := f.data[key]; ok {
			delete(f.data, key)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestStore_CreateAndResolve(t *testing.T) {
	store := NewStore(newFakeRedis(), time.Hour)
	userID := uuid.New()

	token, err := store.Create(context.Background(), userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	gotID, err := store.UserID(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, userID, gotID)
}

func TestStore_TokensAreUnique(t *testing.T) {
	store := NewStore(newFakeRedis(), time.Hour)
	userID := uuid.New()

	first, err := store.Create(context.Background(), userID)
	require.NoError(t, err)
	second, err := store.Create(context.Background(), userID)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestStore_UnknownToken(t *testing.T) {
	store := NewStore(newFakeRedis(), time.Hour)

	_, err := store.UserID(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_Destroy(t *testing.T) {
	store := NewStore(newFakeRedis(), time.Hour)
	userID := uuid.New()

	token, err := store.Create(context.Background(), userID)
	require.NoError(t, err)

	err = store.Destroy(context.Background(), token)
	require.NoError(t, err)

	_, err = store.UserID(context.Background(), token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
