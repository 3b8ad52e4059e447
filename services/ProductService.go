package services

import (
	"context"

	"shopStore/entities"
	"shopStore/models"
	"shopStore/repository"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductService struct {
	pr repository.ProductRepository
	cc repository.CatalogCache
}

func NewProductService(productRepo repository.ProductRepository, catalogCache repository.CatalogCache) ProductService {
	return ProductService{
		pr: productRepo,
		cc: catalogCache,
	}
}

func (ps *ProductService) CreateProduct(ctx context.Context, req models.ProductRequest) (prod entities.Product, err error) {
	if req.Name == "" {
		log.Error().Msg("product name can not be empty")
		err = models.ErrNotAllowed
		return
	}
	if req.Price <= 0 {
		log.Error().Msg("price field is invalid")
		err = models.ErrNotAllowed
		return
	}
	if req.Discount < 0 || req.Discount > 100 {
		log.Error().Msg("discount field is invalid")
		err = models.ErrNotAllowed
		return
	}
	if req.Stock < 0 {
		log.Error().Msg("stock field is invalid")
		err = models.ErrNotAllowed
		return
	}
	prod, err = ps.pr.CreateProduct(ctx, req)
	if err != nil {
		return
	}
	ps.invalidateList(ctx)
	return
}

func (ps *ProductService) GetAllProducts(ctx context.Context) (prods []entities.Product, err error) {
	prods, hit, e := ps.cc.GetProductList(ctx)
	if e == nil && hit {
		return
	}
	// cache miss or cache failure, serve from the store either way
	prods, err = ps.pr.GetAllProducts(ctx)
	if err != nil {
		return
	}
	if e2 := ps.cc.SetProductList(ctx, prods); e2 != nil {
		log.Warn().Msg("GetAllProducts: product list not cached")
	}
	return
}

func (ps *ProductService) GetProductById(ctx context.Context, id primitive.ObjectID) (prod entities.Product, err error) {
	prod, exists, err := ps.pr.GetProductById(ctx, id)
	if err != nil {
		return
	}
	if !exists {
		err = models.ErrNotFoundError
	}
	return
}

func (ps *ProductService) UpdateProduct(ctx context.Context, id primitive.ObjectID, patch models.ProductPatch) (prod entities.Product, err error) {
	if patch.Name != nil && *patch.Name == "" {
		log.Error().Msg("product name can not be empty")
		err = models.ErrNotAllowed
		return
	}
	if patch.Price != nil && *patch.Price <= 0 {
		log.Error().Msg("price field is invalid")
		err = models.ErrNotAllowed
		return
	}
	if patch.Discount != nil && (*patch.Discount < 0 || *patch.Discount > 100) {
		log.Error().Msg("discount field is invalid")
		err = models.ErrNotAllowed
		return
	}
	prod, exists, err := ps.pr.UpdateProductById(ctx, id, patch)
	if err != nil {
		return
	}
	if !exists {
		log.Error().Msg("product does not exist")
		err = models.ErrNotFoundError
		return
	}
	ps.invalidateList(ctx)
	return
}

// DeleteProduct reports success whether or not the product existed. Carts and
// orders referencing the product are left untouched.
func (ps *ProductService) DeleteProduct(ctx context.Context, id primitive.ObjectID) (err error) {
	err = ps.pr.DeleteProductById(ctx, id)
	if err != nil {
		return
	}
	ps.invalidateList(ctx)
	return
}

func (ps *ProductService) invalidateList(ctx context.Context) {
	if e := ps.cc.InvalidateProductList(ctx); e != nil {
		log.Warn().Msg("stale product list left in cache")
	}
}
