package mystore

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcGrol/wfpwidget/lib/myconfig"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return mr, client
}

func TestRedisStore(t *testing.T) {
	_, client := setupRedis(t)

	storeContract{store: NewRedisStore[setting](client, "test")}.Test(t)
}

func TestRedisStoreLayout(t *testing.T) {
	mr, client := setupRedis(t)
	store := NewRedisStore[setting](client, "shop1")

	err := store.Put(context.TODO(), "SeelWFPWidget.OptedIn", optedIn)
	require.NoError(t, err)

	raw, err := mr.Get("shop1:setting:SeelWFPWidget.OptedIn")
	require.NoError(t, err)
	assert.JSONEq(t, `{"Value":"1"}`, raw)
}

func TestRedisStoreCorruptValue(t *testing.T) {
	mr, client := setupRedis(t)
	store := NewRedisStore[setting](client, "")

	require.NoError(t, mr.Set("setting:optedIn", "not-json"))

	_, found, err := store.Get(context.TODO(), "optedIn")
	assert.Error(t, err)
	assert.False(t, found)
}

func TestNewRedisBackend(t *testing.T) {
	mr, _ := setupRedis(t)

	store, cleanup, err := New[setting](context.TODO(), myconfig.StoreConfig{
		Backend:   myconfig.StoreBackendRedis,
		RedisAddr: mr.Addr(),
	})
	require.NoError(t, err)
	defer cleanup()

	err = store.Put(context.TODO(), "expiry", expiry)
	assert.NoError(t, err)
	assert.True(t, mr.Exists("setting:expiry"))
}

func TestRedisTransaction(t *testing.T) {
	mr, client := setupRedis(t)
	store := NewRedisStore[setting](client, "")
	c := context.TODO()

	t.Run("Writes are applied together on success", func(t *testing.T) {
		err := store.RunInTransaction(c, func(c context.Context) error {
			err := store.Put(c, "optedIn", optedIn)
			if err != nil {
				return err
			}
			assert.False(t, mr.Exists("setting:optedIn"))
			return store.Put(c, "expiry", expiry)
		})
		require.NoError(t, err)

		all, err := store.List(c)
		require.NoError(t, err)
		assert.ElementsMatch(t, []setting{optedIn, expiry}, all)
	})

	t.Run("Nothing is written on error", func(t *testing.T) {
		err := store.RunInTransaction(c, func(c context.Context) error {
			err := store.Put(c, "optedIn", setting{Value: "0"})
			if err != nil {
				return err
			}
			return store.Delete(c, "expiry")
		})
		require.NoError(t, err)

		err = store.RunInTransaction(c, func(c context.Context) error {
			err := store.Put(c, "optedIn", setting{Value: "1"})
			if err != nil {
				return err
			}
			return errors.New("boom")
		})
		assert.EqualError(t, err, "boom")

		got, found, err := store.Get(c, "optedIn")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "0", got.Value)
		assert.False(t, mr.Exists("setting:expiry"))
	})

	t.Run("Nested transaction joins the outer one", func(t *testing.T) {
		err := store.RunInTransaction(c, func(c context.Context) error {
			return store.RunInTransaction(c, func(c context.Context) error {
				return store.Put(c, "expiry", expiry)
			})
		})
		require.NoError(t, err)
		assert.True(t, mr.Exists("setting:expiry"))
	})
}
