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

type CategoryRepository interface {
	CreateCategory(ctx context.Context, req models.CategoryRequest) (entities.Category, error)
	GetAllCategories(ctx context.Context) ([]entities.Category, error)
}

type CategoryRepo struct {
	col *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) (CategoryRepository, error) {
	if db == nil {
		return nil, errors.New("db must be non-nil")
	}
	return &CategoryRepo{
		col: db.Collection("categories"),
	}, nil
}

func (c *CategoryRepo) CreateCategory(ctx context.Context, req models.CategoryRequest) (cat entities.Category, err error) {
	cat = entities.Category{
		Id:          primitive.NewObjectID(),
		Name:        req.Name,
		Description: req.Description,
	}
	_, e := c.col.InsertOne(ctx, cat)
	if e != nil {
		log.Error().Err(e).Msg("CreateCategory")
		err = models.ErrServerError
	}
	return
}

func (c *CategoryRepo) GetAllCategories(ctx context.Context) (cats []entities.Category, err error) {
	cur, e := c.col.Find(ctx, bson.M{})
	if e != nil {
		log.Error().Err(e).Msg("GetAllCategories[1]")
		err = models.ErrServerError
		return
	}
	err = cur.All(ctx, &cats)
	if err != nil {
		log.Error().Err(err).Msg("GetAllCategories[2]")
		err = models.ErrServerError
	}
	return
}
