package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"shopStore/entities"
	"shopStore/models"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const productListKey = "products:all"
const productListTTL = 5 * time.Minute

// CatalogCache keeps the full product list in redis so GET /products does not
// hit the document store on every call. Product writes invalidate it.
type CatalogCache interface {
	GetProductList(ctx context.Context) (prods []entities.Product, hit bool, err error)
	SetProductList(ctx context.Context, prods []entities.Product) error
	InvalidateProductList(ctx context.Context) error
}

type CatalogCacheRepo struct {
	rdb *redis.Client
}

func NewCatalogCache(rdb *redis.Client, ctx context.Context) (CatalogCache, error) {
	if rdb == nil {
		return nil, errors.New("conn must be non-nil")
	}
	err := rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}
	return &CatalogCacheRepo{
		rdb: rdb,
	}, nil
}

func (c *CatalogCacheRepo) GetProductList(ctx context.Context) (prods []entities.Product, hit bool, err error) {
	val, e := c.rdb.Get(ctx, productListKey).Result()
	if e != nil {
		if e == redis.Nil {
			return
		}
		log.Error().Err(e).Msg("GetProductList")
		err = models.ErrServerError
		return
	}
	err = json.Unmarshal([]byte(val), &prods)
	if err != nil {
		log.Error().Err(err).Msg("GetProductList: Unmarshal")
		err = models.ErrServerError
		return
	}
	hit = true
	return
}

func (c *CatalogCacheRepo) SetProductList(ctx context.Context, prods []entities.Product) (err error) {
	jsonData, err := json.Marshal(prods)
	if err != nil {
		log.Error().Err(err).Msg("SetProductList: Marshal")
		err = models.ErrServerError
		return
	}
	err = c.rdb.Set(ctx, productListKey, jsonData, productListTTL).Err()
	if err != nil {
		log.Error().Err(err).Msg("SetProductList")
		err = models.ErrServerError
	}
	return
}

func (c *CatalogCacheRepo) InvalidateProductList(ctx context.Context) (err error) {
	err = c.rdb.Del(ctx, productListKey).Err()
	if err != nil {
		log.Error().Err(err).Msg("InvalidateProductList")
		err = models.ErrServerError
	}
	return
}
