package services

import (
	"context"
	"math"
	"time"

	"shopStore/entities"
	"shopStore/models"
	"shopStore/repository"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderService struct {
	pr repository.ProductRepository
	cr repository.CartRepository
	or repository.OrderRepository
	ep repository.EventPublisher
}

func NewOrderService(productRepo repository.ProductRepository, cartRepo repository.CartRepository, orderRepo repository.OrderRepository, events repository.EventPublisher) OrderService {
	return OrderService{
		pr: productRepo,
		cr: cartRepo,
		or: orderRepo,
		ep: events,
	}
}

type checkoutLine struct {
	idx  int
	item entities.OrderItem
	err  error
}

// Checkout snapshots the user's cart into an order. Unit prices are resolved
// at call time, discounted and rounded to 2 decimal places, so later product
// changes never affect the order. The cart is deleted once the order is
// persisted; if the delete fails the order is removed again so the store never
// holds both an order and a stale cart.
func (ors *OrderService) Checkout(ctx context.Context, userId primitive.ObjectID) (order entities.Order, err error) {
	cart, exists, err := ors.cr.GetCartByUserId(ctx, userId)
	if err != nil {
		return
	}
	if !exists || len(cart.Items) == 0 {
		log.Error().Str("userId", userId.Hex()).Msg("Checkout: cart not found")
		err = models.ErrBadRequest
		return
	}

	ch := make(chan checkoutLine, len(cart.Items))
	for i, item := range cart.Items {
		go func(idx int, line entities.CartItem) {
			res := checkoutLine{idx: idx}
			p, ex, e := ors.pr.GetProductById(ctx, line.ProductId)
			if e == nil && !ex {
				log.Error().Str("productId", line.ProductId.Hex()).Msg("Checkout: cart references unknown product")
				e = models.ErrBadRequest
			}
			if e != nil {
				res.err = e
				ch <- res
				return
			}
			res.item = entities.OrderItem{
				ProductId:       line.ProductId,
				Quantity:        line.Quantity,
				PriceAtPurchase: discountedPrice(p),
			}
			ch <- res
		}(i, item)
	}

	items := make([]entities.OrderItem, len(cart.Items))
	for range cart.Items {
		res := <-ch
		if res.err != nil {
			err = res.err
			return
		}
		items[res.idx] = res.item
	}

	var total float64
	for _, item := range items {
		total += item.PriceAtPurchase * float64(item.Quantity)
	}

	order, err = ors.or.CreateOrder(ctx, entities.Order{
		UserId:    userId,
		Items:     items,
		Total:     round2(total),
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return
	}

	if e := ors.cr.DeleteCartByUserId(ctx, userId); e != nil {
		// compensate: take the order back rather than leave both behind
		if e2 := ors.or.DeleteOrderById(ctx, order.Id); e2 != nil {
			log.Error().Str("orderId", order.Id.Hex()).Msg("Checkout: compensation failed, order kept alongside stale cart")
		}
		order = entities.Order{}
		err = models.ErrServerError
		return
	}

	if e := ors.ep.PublishOrderCreated(ctx, order); e != nil {
		log.Warn().Str("orderId", order.Id.Hex()).Msg("Checkout: order event not published")
	}
	return
}

func (ors *OrderService) GetOrderById(ctx context.Context, id primitive.ObjectID) (order entities.Order, err error) {
	order, exists, err := ors.or.GetOrderById(ctx, id)
	if err != nil {
		return
	}
	if !exists {
		err = models.ErrNotFoundError
	}
	return
}

func discountedPrice(p entities.Product) float64 {
	return round2(p.Price * (1 - p.Discount/100))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
