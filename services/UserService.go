package services

import (
	"context"
	"net/mail"

	"shopStore/entities"
	"shopStore/models"
	"shopStore/repository"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService struct {
	ur repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return UserService{
		ur: userRepo,
	}
}

// CreateUser stores the password as a bcrypt hash, never in plaintext.
func (us *UserService) CreateUser(ctx context.Context, req models.UserRequest) (user entities.User, err error) {
	if req.Name == "" {
		log.Error().Msg("user name can not be empty")
		err = models.ErrNotAllowed
		return
	}
	if _, e := mail.ParseAddress(req.Email); e != nil {
		log.Error().Msg("email field is invalid")
		err = models.ErrNotAllowed
		return
	}
	if req.Password == "" {
		log.Error().Msg("password field is invalid")
		err = models.ErrNotAllowed
		return
	}

	_, exists, err := us.ur.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return
	}
	if exists {
		log.Error().Msg("CreateUser: user already exists")
		err = models.ErrNotAllowed
		return
	}

	hashedPassword, err := us.ur.EncryptPassword(req.Password)
	if err != nil {
		return
	}
	user, err = us.ur.AddNewUser(ctx, entities.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	})
	return
}

func (us *UserService) GetUserById(ctx context.Context, id primitive.ObjectID) (user entities.User, err error) {
	user, exists, err := us.ur.GetUserById(ctx, id)
	if err != nil {
		return
	}
	if !exists {
		err = models.ErrNotFoundError
	}
	return
}
