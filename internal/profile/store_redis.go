// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each blob under prefix+key. It implements [UserStore] and
// [SessionStore]. Keys have no expiry: the session pointer is durable.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis implementation of the blob stores.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

// LoadUsers reads the users blob.
func (store *RedisStore) LoadUsers(context context.Context) (*Directory, error) {
	value, err := store.get(context, usersKey)
	if err != nil {
		return nil, fmt.Errorf("redis_store_load_users_failed: %w", err)
	}
	directory, err := decodeDirectory(value)
	if err != nil {
		return nil, fmt.Errorf("redis_store_load_users_failed: %w", err)
	}
	return directory, nil
}

// SaveUsers replaces the users blob.
func (store *RedisStore) SaveUsers(context context.Context, directory *Directory) error {
	value, err := encodeDirectory(directory)
	if err != nil {
		return err
	}
	if err := store.client.Set(context, store.key(usersKey), value, 0).Err(); err != nil {
		return fmt.Errorf("redis_store_save_users_failed: %w", err)
	}
	return nil
}

// LoadSession reads the session pointer.
func (store *RedisStore) LoadSession(context context.Context) (string, error) {
	value, err := store.get(context, sessionKey)
	if err != nil {
		return "", fmt.Errorf("redis_store_load_session_failed: %w", err)
	}
	return value, nil
}

// SaveSession stores the session pointer.
func (store *RedisStore) SaveSession(context context.Context, identity string) error {
	if err := store.client.Set(context, store.key(sessionKey), identity, 0).Err(); err != nil {
		return fmt.Errorf("redis_store_save_session_failed: %w", err)
	}
	return nil
}

// ClearSession deletes the session key.
func (store *RedisStore) ClearSession(context context.Context) error {
	if err := store.client.Del(context, store.key(sessionKey)).Err(); err != nil {
		return fmt.Errorf("redis_store_clear_session_failed: %w", err)
	}
	return nil
}

func (store *RedisStore) key(name string) string {
	return store.prefix + name
}

func (store *RedisStore) get(context context.Context, name string) (string, error) {
	value, err := store.client.Get(context, store.key(name)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return value, err
}
