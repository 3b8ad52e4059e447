package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"

	"shopStore/models"
	"shopStore/services"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Handler struct {
	ps  services.ProductService
	cas services.CategoryService
	us  services.UserService
	cs  services.CartService
	ors services.OrderService
}

type HandlerParams struct {
	PrdService  services.ProductService
	CatsService services.CategoryService
	UsrService  services.UserService
	CrtService  services.CartService
	OrdService  services.OrderService
}

func NewHandler(params HandlerParams) *Handler {
	return &Handler{
		ps:  params.PrdService,
		cas: params.CatsService,
		us:  params.UsrService,
		cs:  params.CrtService,
		ors: params.OrdService,
	}
}

// product

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req models.ProductRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		log.Error().Err(err).Msg("Unmarshal err")
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	prod, err := h.ps.CreateProduct(r.Context(), req)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, prod)
}

func (h *Handler) GetAllProducts(w http.ResponseWriter, r *http.Request) {
	prods, err := h.ps.GetAllProducts(r.Context())
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prods)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		log.Error().Err(err).Msg("bad product id")
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	prod, err := h.ps.GetProductById(r.Context(), id)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prod)
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		log.Error().Err(err).Msg("bad product id")
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	var patch models.ProductPatch
	err = json.NewDecoder(r.Body).Decode(&patch)
	if err != nil {
		log.Error().Err(err).Msg("Unmarshal err")
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	prod, err := h.ps.UpdateProduct(r.Context(), id, patch)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prod)
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		log.Error().Err(err).Msg("bad product id")
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	err = h.ps.DeleteProduct(r.Context(), id)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Product deleted"})
}

// category

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		log.Error().Err(err).Msg("Unmarshal err")
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	cat, err := h.cas.CreateCategory(r.Context(), req)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, cat)
}

func (h *Handler) GetAllCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.cas.GetAllCategories(r.Context())
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cats)
}

// user

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.UserRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		log.Error().Err(err).Msg("Unmarshal err")
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	user, err := h.us.CreateUser(r.Context(), req)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		log.Error().Err(err).Msg("bad user id")
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	user, err := h.us.GetUserById(r.Context(), id)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// cart

func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userId, err := primitive.ObjectIDFromHex(vars["userId"])
	if err != nil {
		log.Error().Err(err).Msg("bad user id")
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	var req models.CartRequest
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		log.Error().Err(err).Msg("Unmarshal err")
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	cart, err := h.cs.AddCartItem(r.Context(), userId, req)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userId, err := primitive.ObjectIDFromHex(vars["userId"])
	if err != nil {
		log.Error().Err(err).Msg("bad user id")
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	cart, err := h.cs.GetCart(r.Context(), userId)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userId, err := primitive.ObjectIDFromHex(vars["userId"])
	if err != nil {
		log.Error().Err(err).Msg("bad user id")
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	var req models.CartRequest
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		log.Error().Err(err).Msg("Unmarshal err")
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	cart, err := h.cs.RemoveCartItem(r.Context(), userId, req)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

// order

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userId, err := primitive.ObjectIDFromHex(vars["userId"])
	if err != nil {
		log.Error().Err(err).Msg("bad user id")
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	order, err := h.ors.Checkout(r.Context(), userId)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		log.Error().Err(err).Msg("bad order id")
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	order, err := h.ors.GetOrderById(r.Context(), id)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// middleware

func (h *Handler) RequestIdMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := uuid.NewString()
		w.Header().Set("X-Request-Id", requestId)
		log.Info().Str("requestId", requestId).Str("method", r.Method).Str("path", r.URL.Path).Msg("request")
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) ErrorHandleMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().Interface("panic", rec).Str("stacktrace", string(debug.Stack())).Msg("panic occured")
				writeJSON(w, http.StatusBadGateway, map[string]string{"error": "something went wrong, contact with service administration"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func WriteErrorResponse(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrNotFoundError):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrNotAllowed):
		status = http.StatusNotAcceptable
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("Marshal err")
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(jsonData)
}
