package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"github.com/Aditya231356/Carpenter-Website/models"

	"github.com/redis/go-redis/v9"
)

// Store keys for the persisted collections.
const (
	ProductsKey = "products"
	CartKey     = "cart"
	OrdersKey   = "orders"
	GalleryKey  = "gallery"
)

// Store reads and writes named JSON-serialized collections. Save overwrites
// the key unconditionally; the last writer wins.
type Store interface {
	Load(key string, dest any) (found bool, err error)
	Save(key string, value any) (err error)
	Delete(key string) (err error)
}

type RedisStore struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisStore(redis_conn *redis.Client, _ctx context.Context) (Store, error) {
	if redis_conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	err := redis_conn.Ping(_ctx).Err()
	if err != nil {
		return nil, err
	}
	return &RedisStore{
		rdb: redis_conn,
		ctx: _ctx,
	}, nil
}

func (s *RedisStore) Load(key string, dest any) (found bool, err error) {
	val, e := s.rdb.Get(s.ctx, key).Result()
	if e != nil {
		if e == redis.Nil {
			return
		}
		log.Printf("Load: %v", e)
		err = models.ErrServerError
		return
	}
	err = json.Unmarshal([]byte(val), dest)
	if err != nil {
		log.Printf("Load: Unmarshal err: %v", err)
		err = models.ErrServerError
		return
	}
	found = true
	return
}

func (s *RedisStore) Save(key string, value any) (err error) {
	jsonData, err := json.Marshal(value)
	if err != nil {
		log.Printf("Save: Marshal err: %v", err)
		err = models.ErrServerError
		return
	}
	err = s.rdb.Set(s.ctx, key, jsonData, 0).Err()
	if err != nil {
		log.Printf("Save: %v", err)
		err = models.ErrServerError
	}
	return
}

func (s *RedisStore) Delete(key string) (err error) {
	err = s.rdb.Del(s.ctx, key).Err()
	if err != nil {
		log.Printf("Delete: %v", err)
		err = models.ErrServerError
	}
	return
}
