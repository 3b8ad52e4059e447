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
	"golang.org/x/crypto/bcrypt"
)

type UserRepository interface {
	AddNewUser(ctx context.Context, user entities.User) (entities.User, error)
	GetUserById(ctx context.Context, id primitive.ObjectID) (user entities.User, exists bool, err error)
	GetUserByEmail(ctx context.Context, email string) (user entities.User, exists bool, err error)
	EncryptPassword(userPass string) (hashedPassword string, err error)
	VerifyPassword(hashedPassword string, sentPassword string) bool
}

type UserRepo struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) (UserRepository, error) {
	if db == nil {
		return nil, errors.New("db must be non-nil")
	}
	return &UserRepo{
		col: db.Collection("users"),
	}, nil
}

func (u *UserRepo) AddNewUser(ctx context.Context, user entities.User) (created entities.User, err error) {
	user.Id = primitive.NewObjectID()
	_, e := u.col.InsertOne(ctx, user)
	if e != nil {
		log.Error().Err(e).Msg("AddNewUser")
		err = models.ErrServerError
		return
	}
	created = user
	return
}

func (u *UserRepo) GetUserById(ctx context.Context, id primitive.ObjectID) (user entities.User, exists bool, err error) {
	err = u.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			err = nil
		} else {
			log.Error().Err(err).Msg("GetUserById")
			err = models.ErrServerError
		}
		return
	}
	exists = true
	return
}

func (u *UserRepo) GetUserByEmail(ctx context.Context, email string) (user entities.User, exists bool, err error) {
	err = u.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			err = nil
		} else {
			log.Error().Err(err).Msg("GetUserByEmail")
			err = models.ErrServerError
		}
		return
	}
	exists = true
	return
}

func (u *UserRepo) EncryptPassword(userPass string) (hashedPassword string, err error) {
	var password []byte
	password, err = bcrypt.GenerateFromPassword([]byte(userPass), 8)
	if err != nil {
		log.Error().Err(err).Msg("EncryptPassword")
		err = models.ErrServerError
		return
	}
	hashedPassword = string(password)
	return
}

func (u *UserRepo) VerifyPassword(hashedPassword string, sentPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(sentPassword))
	if err != nil {
		log.Error().Err(err).Msg("VerifyPassword")
	}
	return err == nil
}
