package mystore

import (
	"context"
	"fmt"
	"strings"

	"github.com/MarcGrol/wfpwidget/lib/myconfig"
)

type ctxTransactionKey struct{}

type Store[T any] interface {
	RunInTransaction(c context.Context, f func(c context.Context) error) error
	Put(c context.Context, uid string, value T) error
	Get(c context.Context, uid string) (T, bool, error)
	Delete(c context.Context, uid string) error
	List(c context.Context) ([]T, error)
}

// New returns the backend selected in the config plus a cleanup func that releases its connections.
func New[T any](c context.Context, cfg myconfig.StoreConfig) (Store[T], func(), error) {
	switch cfg.Backend {
	case myconfig.StoreBackendDatastore:
		return newGcloudStore[T](c, cfg.ProjectID, cfg.Namespace)
	case myconfig.StoreBackendRedis:
		return newRedisStore[T](c, cfg.RedisAddr, cfg.RedisDB, cfg.Namespace)
	case myconfig.StoreBackendMemory, "":
		return NewInMemoryStore[T](c)
	default:
		return nil, nil, fmt.Errorf("unknown store backend '%s'", cfg.Backend)
	}
}

func kindOf[T any]() string {
	val := new(T)
	kind := fmt.Sprintf("%T", *val)
	if strings.Contains(kind, ".") {
		kind = strings.Split(kind, ".")[1]
	}
	return kind
}
