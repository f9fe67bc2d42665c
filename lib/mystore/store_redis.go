package mystore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// redisStore keeps one JSON document per uid under "<namespace>:<kind>:<uid>".
// Writes inside a transaction are queued and applied atomically with MULTI/EXEC.
// Reads inside a transaction do not see its pending writes.
type redisStore[T any] struct {
	client *redis.Client
	prefix string
	kind   string
}

func newRedisStore[T any](c context.Context, addr string, db int, namespace string) (*redisStore[T], func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	err := client.Ping(c).Err()
	if err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("error connecting to redis at %s: %w", addr, err)
	}

	return NewRedisStore[T](client, namespace), func() {
		client.Close()
	}, nil
}

func NewRedisStore[T any](client *redis.Client, namespace string) *redisStore[T] {
	kind := kindOf[T]()
	prefix := kind + ":"
	if namespace != "" {
		prefix = namespace + ":" + prefix
	}
	return &redisStore[T]{
		client: client,
		prefix: prefix,
		kind:   kind,
	}
}

func pipelineFrom(c context.Context) redis.Pipeliner {
	pipe, ok := c.Value(ctxTransactionKey{}).(redis.Pipeliner)
	if !ok {
		return nil
	}
	return pipe
}

func (s *redisStore[T]) writer(c context.Context) redis.Cmdable {
	if pipe := pipelineFrom(c); pipe != nil {
		return pipe
	}
	return s.client
}

func (s *redisStore[T]) RunInTransaction(c context.Context, f func(c context.Context) error) error {
	if pipelineFrom(c) != nil {
		// nested: joins the outer transaction
		return f(c)
	}
	_, err := s.client.TxPipelined(c, func(pipe redis.Pipeliner) error {
		return f(context.WithValue(c, ctxTransactionKey{}, pipe))
	})
	return err
}

func (s *redisStore[T]) Put(c context.Context, uid string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error encoding entity %s with uid %s: %s", s.kind, uid, err)
	}

	err = s.writer(c).Set(c, s.prefix+uid, data, 0).Err()
	if err != nil {
		return fmt.Errorf("error storing entity %s with uid %s: %s", s.kind, uid, err)
	}
	return nil
}

func (s *redisStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	var value T

	data, err := s.client.Get(c, s.prefix+uid).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return value, false, nil
		}
		return value, false, fmt.Errorf("error fetching entity %s with uid %s: %s", s.kind, uid, err)
	}

	err = json.Unmarshal(data, &value)
	if err != nil {
		return value, false, fmt.Errorf("error decoding entity %s with uid %s: %s", s.kind, uid, err)
	}
	return value, true, nil
}

func (s *redisStore[T]) Delete(c context.Context, uid string) error {
	err := s.writer(c).Del(c, s.prefix+uid).Err()
	if err != nil {
		return fmt.Errorf("error deleting entity %s with uid %s: %s", s.kind, uid, err)
	}
	return nil
}

func (s *redisStore[T]) List(c context.Context) ([]T, error) {
	result := []T{}

	iter := s.client.Scan(c, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(c) {
		uid := iter.Val()[len(s.prefix):]
		value, found, err := s.Get(c, uid)
		if err != nil {
			return nil, err
		}
		if found {
			result = append(result, value)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("error listing entities %s: %s", s.kind, err)
	}
	return result, nil
}
