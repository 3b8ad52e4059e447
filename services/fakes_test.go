package services

import (
	"context"
	"sync"

	"shopStore/entities"
	"shopStore/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeProductRepo struct {
	mu    sync.Mutex
	prods map[primitive.ObjectID]entities.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{prods: make(map[primitive.ObjectID]entities.Product)}
}

func (f *fakeProductRepo) CreateProduct(ctx context.Context, req models.ProductRequest) (entities.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	prod := entities.Product{
		Id:       primitive.NewObjectID(),
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Stock:    req.Stock,
		Discount: req.Discount,
	}
	f.prods[prod.Id] = prod
	return prod, nil
}

func (f *fakeProductRepo) GetAllProducts(ctx context.Context) ([]entities.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var prods []entities.Product
	for _, p := range f.prods {
		prods = append(prods, p)
	}
	return prods, nil
}

func (f *fakeProductRepo) GetProductById(ctx context.Context, id primitive.ObjectID) (entities.Product, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.prods[id]
	return p, ok, nil
}

func (f *fakeProductRepo) UpdateProductById(ctx context.Context, id primitive.ObjectID, patch models.ProductPatch) (entities.Product, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.prods[id]
	if !ok {
		return entities.Product{}, false, nil
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Discount != nil {
		p.Discount = *patch.Discount
	}
	f.prods[id] = p
	return p, true, nil
}

func (f *fakeProductRepo) DeleteProductById(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.prods, id)
	return nil
}

type fakeCartRepo struct {
	mu         sync.Mutex
	carts      map[primitive.ObjectID]entities.Cart
	failDelete bool
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[primitive.ObjectID]entities.Cart)}
}

func (f *fakeCartRepo) GetCartByUserId(ctx context.Context, userId primitive.ObjectID) (entities.Cart, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.carts[userId]
	return c, ok, nil
}

func (f *fakeCartRepo) AddCartItem(ctx context.Context, userId primitive.ObjectID, productId primitive.ObjectID, quantity int) (entities.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cart, ok := f.carts[userId]
	if !ok {
		cart = entities.Cart{Id: primitive.NewObjectID(), UserId: userId}
	}
	merged := false
	for i, item := range cart.Items {
		if item.ProductId == productId {
			cart.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, entities.CartItem{ProductId: productId, Quantity: quantity})
	}
	f.carts[userId] = cart
	return cart, nil
}

func (f *fakeCartRepo) RemoveCartItem(ctx context.Context, userId primitive.ObjectID, productId primitive.ObjectID, quantity int) (entities.Cart, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cart, ok := f.carts[userId]
	if !ok {
		return entities.Cart{}, false, nil
	}
	if quantity == 0 {
		quantity = 1
	}
	items := make([]entities.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.ProductId == productId {
			if item.Quantity <= quantity {
				continue
			}
			item.Quantity -= quantity
		}
		items = append(items, item)
	}
	cart.Items = items
	f.carts[userId] = cart
	return cart, true, nil
}

func (f *fakeCartRepo) DeleteCartByUserId(ctx context.Context, userId primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDelete {
		return models.ErrServerError
	}
	delete(f.carts, userId)
	return nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[primitive.ObjectID]entities.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[primitive.ObjectID]entities.Order)}
}

func (f *fakeOrderRepo) CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order.Id = primitive.NewObjectID()
	f.orders[order.Id] = order
	return order, nil
}

func (f *fakeOrderRepo) GetOrderById(ctx context.Context, id primitive.ObjectID) (entities.Order, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	return o, ok, nil
}

func (f *fakeOrderRepo) DeleteOrderById(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.orders, id)
	return nil
}

type fakeCatalogCache struct {
	mu            sync.Mutex
	prods         []entities.Product
	has           bool
	sets          int
	invalidations int
}

func (f *fakeCatalogCache) GetProductList(ctx context.Context) ([]entities.Product, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.prods, f.has, nil
}

func (f *fakeCatalogCache) SetProductList(ctx context.Context, prods []entities.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prods = prods
	f.has = true
	f.sets++
	return nil
}

func (f *fakeCatalogCache) InvalidateProductList(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prods = nil
	f.has = false
	f.invalidations++
	return nil
}

type fakeEventPublisher struct {
	mu        sync.Mutex
	published []entities.Order
	fail      bool
}

func (f *fakeEventPublisher) PublishOrderCreated(ctx context.Context, order entities.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return models.ErrServerError
	}
	f.published = append(f.published, order)
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]entities.User)}
}

func (f *fakeUserRepo) AddNewUser(ctx context.Context, user entities.User) (entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.Id = primitive.NewObjectID()
	f.users[user.Id] = user
	return user, nil
}

func (f *fakeUserRepo) GetUserById(ctx context.Context, id primitive.ObjectID) (entities.User, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	return u, ok, nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (entities.User, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, true, nil
		}
	}
	return entities.User{}, false, nil
}

func (f *fakeUserRepo) EncryptPassword(userPass string) (string, error) {
	return "hashed:" + userPass, nil
}

func (f *fakeUserRepo) VerifyPassword(hashedPassword string, sentPassword string) bool {
	return hashedPassword == "hashed:"+sentPassword
}
