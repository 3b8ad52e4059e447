package services

import (
	"context"

	"shopStore/entities"
	"shopStore/models"
	"shopStore/repository"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartService struct {
	pr repository.ProductRepository
	cr repository.CartRepository
}

func NewCartService(productRepo repository.ProductRepository, cartRepo repository.CartRepository) CartService {
	return CartService{
		pr: productRepo,
		cr: cartRepo,
	}
}

// AddCartItem lazily creates the user's cart on first add. An existing line
// for the same product is incremented, not duplicated.
func (cs *CartService) AddCartItem(ctx context.Context, userId primitive.ObjectID, req models.CartRequest) (cart entities.Cart, err error) {
	productId, e := primitive.ObjectIDFromHex(req.ProductId)
	if e != nil {
		log.Error().Err(e).Msg("AddCartItem: malformed product id")
		err = models.ErrBadRequest
		return
	}
	if req.Quantity <= 0 {
		log.Error().Msg("quantity field is invalid")
		err = models.ErrNotAllowed
		return
	}
	_, exists, e := cs.pr.GetProductById(ctx, productId)
	if e != nil {
		err = e
		return
	}
	if !exists {
		log.Error().Msg("product does not exist")
		err = models.ErrBadRequest
		return
	}
	cart, err = cs.cr.AddCartItem(ctx, userId, productId, req.Quantity)
	return
}

func (cs *CartService) GetCart(ctx context.Context, userId primitive.ObjectID) (cart entities.Cart, err error) {
	cart, exists, err := cs.cr.GetCartByUserId(ctx, userId)
	if err != nil {
		return
	}
	if !exists {
		err = models.ErrNotFoundError
	}
	return
}

func (cs *CartService) RemoveCartItem(ctx context.Context, userId primitive.ObjectID, req models.CartRequest) (cart entities.Cart, err error) {
	productId, e := primitive.ObjectIDFromHex(req.ProductId)
	if e != nil {
		log.Error().Err(e).Msg("RemoveCartItem: malformed product id")
		err = models.ErrBadRequest
		return
	}
	cart, exists, err := cs.cr.RemoveCartItem(ctx, userId, productId, req.Quantity)
	if err != nil {
		return
	}
	if !exists {
		err = models.ErrNotFoundError
	}
	return
}
