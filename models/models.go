package models

import "errors"

var ErrBadRequest = errors.New("bad request")
var ErrServerError = errors.New("server error")
var ErrNotFoundError = errors.New("not found")
var ErrNotAllowed = errors.New("not acceptable")

type ProductRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Stock    int     `json:"stock"`
	Discount float64 `json:"discount"`
}

// ProductPatch carries a partial update; nil fields are left untouched.
type ProductPatch struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Category *string  `json:"category"`
	Stock    *int     `json:"stock"`
	Discount *float64 `json:"discount"`
}

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CartRequest struct {
	ProductId string `json:"productId"`
	Quantity  int    `json:"quantity"`
}
