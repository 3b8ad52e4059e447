package services

import (
	"context"

	"shopStore/entities"
	"shopStore/models"
	"shopStore/repository"

	"github.com/rs/zerolog/log"
)

type CategoryService struct {
	cr repository.CategoryRepository
}

func NewCategoryService(catRepo repository.CategoryRepository) CategoryService {
	return CategoryService{
		cr: catRepo,
	}
}

func (cas *CategoryService) CreateCategory(ctx context.Context, req models.CategoryRequest) (cat entities.Category, err error) {
	if req.Name == "" {
		log.Error().Msg("category name can not be empty")
		err = models.ErrNotAllowed
		return
	}
	cat, err = cas.cr.CreateCategory(ctx, req)
	return
}

func (cas *CategoryService) GetAllCategories(ctx context.Context) (cats []entities.Category, err error) {
	cats, err = cas.cr.GetAllCategories(ctx)
	return
}
