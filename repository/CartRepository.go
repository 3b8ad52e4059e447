package repository

import (
	"context"
	"errors"

	"shopStore/entities"
	"shopStore/models"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CartRepository interface {
	GetCartByUserId(ctx context.Context, userId primitive.ObjectID) (cart entities.Cart, exists bool, err error)
	AddCartItem(ctx context.Context, userId primitive.ObjectID, productId primitive.ObjectID, quantity int) (cart entities.Cart, err error)
	RemoveCartItem(ctx context.Context, userId primitive.ObjectID, productId primitive.ObjectID, quantity int) (cart entities.Cart, exists bool, err error)
	DeleteCartByUserId(ctx context.Context, userId primitive.ObjectID) error
}

type CartRepo struct {
	col *mongo.Collection
}

func NewCartRepository(db *mongo.Database) (CartRepository, error) {
	if db == nil {
		return nil, errors.New("db must be non-nil")
	}
	return &CartRepo{
		col: db.Collection("carts"),
	}, nil
}

func (c *CartRepo) GetCartByUserId(ctx context.Context, userId primitive.ObjectID) (cart entities.Cart, exists bool, err error) {
	err = c.col.FindOne(ctx, bson.M{"userId": userId}).Decode(&cart)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			err = nil
		} else {
			log.Error().Err(err).Msg("GetCartByUserId")
			err = models.ErrServerError
		}
		return
	}
	exists = true
	return
}

// AddCartItem merges the requested quantity into the user's cart with two
// server-side updates: a positional $inc on the matching line, then an
// upserting $push when no line matched. Concurrent adds for the same line
// never produce a duplicate entry.
func (c *CartRepo) AddCartItem(ctx context.Context, userId primitive.ObjectID, productId primitive.ObjectID, quantity int) (cart entities.Cart, err error) {
	res, e := c.col.UpdateOne(ctx,
		bson.M{"userId": userId, "items.productId": productId},
		bson.M{"$inc": bson.M{"items.$.quantity": quantity}})
	if e != nil {
		log.Error().Err(e).Msg("AddCartItem[1]")
		err = models.ErrServerError
		return
	}
	if res.MatchedCount == 0 {
		item := entities.CartItem{ProductId: productId, Quantity: quantity}
		_, e = c.col.UpdateOne(ctx,
			bson.M{"userId": userId},
			bson.M{"$push": bson.M{"items": item}},
			options.Update().SetUpsert(true))
		if e != nil {
			log.Error().Err(e).Msg("AddCartItem[2]")
			err = models.ErrServerError
			return
		}
	}

	cart, _, err = c.GetCartByUserId(ctx, userId)
	return
}

func (c *CartRepo) RemoveCartItem(ctx context.Context, userId primitive.ObjectID, productId primitive.ObjectID, quantity int) (cart entities.Cart, exists bool, err error) {
	cart, exists, err = c.GetCartByUserId(ctx, userId)
	if err != nil || !exists {
		return
	}
	if quantity == 0 {
		quantity = 1
	}

	items := make([]entities.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.ProductId == productId {
			if item.Quantity <= quantity {
				//discard
				continue
			}
			item.Quantity -= quantity
		}
		items = append(items, item)
	}
	cart.Items = items

	_, e := c.col.ReplaceOne(ctx, bson.M{"_id": cart.Id}, cart)
	if e != nil {
		log.Error().Err(e).Msg("RemoveCartItem")
		err = models.ErrServerError
	}
	return
}

func (c *CartRepo) DeleteCartByUserId(ctx context.Context, userId primitive.ObjectID) (err error) {
	_, e := c.col.DeleteMany(ctx, bson.M{"userId": userId})
	if e != nil {
		log.Error().Err(e).Msg("DeleteCartByUserId")
		err = models.ErrServerError
	}
	return
}
