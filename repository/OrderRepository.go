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
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error)
	GetOrderById(ctx context.Context, id primitive.ObjectID) (order entities.Order, exists bool, err error)
	DeleteOrderById(ctx context.Context, id primitive.ObjectID) error
}

type OrderRepo struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) (OrderRepository, error) {
	if db == nil {
		return nil, errors.New("db must be non-nil")
	}
	return &OrderRepo{
		col: db.Collection("orders"),
	}, nil
}

func (o *OrderRepo) CreateOrder(ctx context.Context, order entities.Order) (created entities.Order, err error) {
	order.Id = primitive.NewObjectID()
	_, e := o.col.InsertOne(ctx, order)
	if e != nil {
		log.Error().Err(e).Msg("CreateOrder")
		err = models.ErrServerError
		return
	}
	created = order
	return
}

func (o *OrderRepo) GetOrderById(ctx context.Context, id primitive.ObjectID) (order entities.Order, exists bool, err error) {
	err = o.col.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			err = nil
		} else {
			log.Error().Err(err).Msg("GetOrderById")
			err = models.ErrServerError
		}
		return
	}
	exists = true
	return
}

func (o *OrderRepo) DeleteOrderById(ctx context.Context, id primitive.ObjectID) (err error) {
	_, e := o.col.DeleteOne(ctx, bson.M{"_id": id})
	if e != nil {
		log.Error().Err(e).Msg("DeleteOrderById")
		err = models.ErrServerError
	}
	return
}
