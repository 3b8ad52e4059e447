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

type ProductRepository interface {
	CreateProduct(ctx context.Context, req models.ProductRequest) (entities.Product, error)
	GetAllProducts(ctx context.Context) ([]entities.Product, error)
	GetProductById(ctx context.Context, id primitive.ObjectID) (pModel entities.Product, exists bool, err error)
	UpdateProductById(ctx context.Context, id primitive.ObjectID, patch models.ProductPatch) (updated entities.Product, exists bool, err error)
	DeleteProductById(ctx context.Context, id primitive.ObjectID) error
}

type ProductRepo struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) (ProductRepository, error) {
	if db == nil {
		return nil, errors.New("db must be non-nil")
	}
	return &ProductRepo{
		col: db.Collection("products"),
	}, nil
}

func (p *ProductRepo) CreateProduct(ctx context.Context, req models.ProductRequest) (prod entities.Product, err error) {
	prod = entities.Product{
		Id:       primitive.NewObjectID(),
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Stock:    req.Stock,
		Discount: req.Discount,
	}
	_, e := p.col.InsertOne(ctx, prod)
	if e != nil {
		log.Error().Err(e).Msg("CreateProduct")
		err = models.ErrServerError
	}
	return
}

func (p *ProductRepo) GetAllProducts(ctx context.Context) (prods []entities.Product, err error) {
	cur, e := p.col.Find(ctx, bson.M{})
	if e != nil {
		log.Error().Err(e).Msg("GetAllProducts[1]")
		err = models.ErrServerError
		return
	}
	err = cur.All(ctx, &prods)
	if err != nil {
		log.Error().Err(err).Msg("GetAllProducts[2]")
		err = models.ErrServerError
	}
	return
}

func (p *ProductRepo) GetProductById(ctx context.Context, id primitive.ObjectID) (pModel entities.Product, exists bool, err error) {
	err = p.col.FindOne(ctx, bson.M{"_id": id}).Decode(&pModel)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			err = nil
		} else {
			log.Error().Err(err).Msg("GetProductById")
			err = models.ErrServerError
		}
		return
	}
	exists = true
	return
}

func (p *ProductRepo) UpdateProductById(ctx context.Context, id primitive.ObjectID, patch models.ProductPatch) (updated entities.Product, exists bool, err error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Stock != nil {
		set["stock"] = *patch.Stock
	}
	if patch.Discount != nil {
		set["discount"] = *patch.Discount
	}
	if len(set) == 0 {
		return p.GetProductById(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = p.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			err = nil
		} else {
			log.Error().Err(err).Msg("UpdateProductById")
			err = models.ErrServerError
		}
		return
	}
	exists = true
	return
}

func (p *ProductRepo) DeleteProductById(ctx context.Context, id primitive.ObjectID) (err error) {
	_, e := p.col.DeleteOne(ctx, bson.M{"_id": id})
	if e != nil {
		log.Error().Err(e).Msg("DeleteProductById")
		err = models.ErrServerError
	}
	return
}
