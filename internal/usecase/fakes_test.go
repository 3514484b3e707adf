package usecase_test

import (
	"context"
	"errors"
	"sort"
	"strings"

	"crosstop/internal/domain/model"
	repo "crosstop/internal/repository"

	"github.com/shopspring/decimal"
)

// インメモリのリポジトリ実装。トランザクションはスナップショット復元で模す

type memStore struct {
	nextID     int64
	products   map[int64]model.Product
	images     map[int64][]model.ProductImage
	categories map[int64]model.Category
	brands     map[int64]model.Brand
	carts      map[int64]model.Cart
	items      map[int64]model.CartItem
	orders     map[int64]model.Order
	customers  map[int64]model.Customer
	users      map[int64]model.User

	failOrderCreate bool
}

func newMemStore() *memStore {
	return &memStore{
		products:   map[int64]model.Product{},
		images:     map[int64][]model.ProductImage{},
		categories: map[int64]model.Category{},
		brands:     map[int64]model.Brand{},
		carts:      map[int64]model.Cart{},
		items:      map[int64]model.CartItem{},
		orders:     map[int64]model.Order{},
		customers:  map[int64]model.Customer{},
		users:      map[int64]model.User{},
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) addProduct(slug string, name string, price string, gender model.Gender, brandID int64, size float64) model.Product {
	p := model.Product{
		ID:          s.id(),
		Slug:        slug,
		Name:        name,
		Gender:      gender,
		BrandID:     brandID,
		Size:        size,
		Price:       decimal.RequireFromString(price),
		InAvailable: true,
	}
	s.products[p.ID] = p
	return p
}

func (s *memStore) addCustomer(userID int64) model.Customer {
	c := model.Customer{ID: s.id(), UserID: &userID}
	s.customers[c.ID] = c
	return c
}

func (s *memStore) addCart(ownerID int64) model.Cart {
	c := model.Cart{ID: s.id(), OwnerID: &ownerID, FinalPrice: decimal.Zero}
	s.carts[c.ID] = c
	return c
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *memStore) clone() *memStore {
	c := *s
	c.products = copyMap(s.products)
	c.images = copyMap(s.images)
	c.categories = copyMap(s.categories)
	c.brands = copyMap(s.brands)
	c.carts = copyMap(s.carts)
	c.items = copyMap(s.items)
	c.orders = copyMap(s.orders)
	c.customers = copyMap(s.customers)
	c.users = copyMap(s.users)
	return &c
}

func (s *memStore) restore(snapshot *memStore) {
	*s = *snapshot
}

// --- products ---

type fakeProductRepo struct{ s *memStore }

func (r *fakeProductRepo) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.s.products {
		if !p.InAvailable {
			continue
		}
		if q.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q.Name)) {
			continue
		}
		if q.Gender != nil && p.Gender != *q.Gender {
			continue
		}
		if q.BrandID != nil && p.BrandID != *q.BrandID {
			continue
		}
		if q.Size != nil && p.Size != *q.Size {
			continue
		}
		if q.CategoryID != nil && p.CategoryID != *q.CategoryID {
			continue
		}
		if q.MinPrice != nil && p.Price.LessThan(*q.MinPrice) {
			continue
		}
		if q.MaxPrice != nil && p.Price.GreaterThan(*q.MaxPrice) {
			continue
		}
		out = append(out, p)
	}

	switch q.Sort {
	case "price_asc":
		sort.Slice(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	case "price_desc":
		sort.Slice(out, func(i, j int) bool { return out[i].Price.GreaterThan(out[j].Price) })
	default:
		sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	}
	return out, nil
}

func (r *fakeProductRepo) FindByID(ctx context.Context, id int64) (model.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) FindBySlug(ctx context.Context, slug string) (model.Product, error) {
	for _, p := range r.s.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}

func (r *fakeProductRepo) ListImages(ctx context.Context, productID int64) ([]model.ProductImage, error) {
	return r.s.images[productID], nil
}

// --- categories / brands ---

type fakeCategoryRepo struct{ s *memStore }

func (r *fakeCategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	for _, c := range r.s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCategoryRepo) FindBySlug(ctx context.Context, slug string) (model.Category, error) {
	for _, c := range r.s.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return model.Category{}, repo.ErrNotFound
}

type fakeBrandRepo struct{ s *memStore }

func (r *fakeBrandRepo) List(ctx context.Context) ([]model.Brand, error) {
	var out []model.Brand
	for _, b := range r.s.brands {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeBrandRepo) FindBySlug(ctx context.Context, slug string) (model.Brand, error) {
	for _, b := range r.s.brands {
		if b.Slug == slug {
			return b, nil
		}
	}
	return model.Brand{}, repo.ErrNotFound
}

// --- carts ---

type fakeCartRepo struct{ s *memStore }

func (r *fakeCartRepo) GetOrCreateActiveByOwner(ctx context.Context, customerID int64) (model.Cart, error) {
	for _, c := range r.s.carts {
		if c.OwnerID != nil && *c.OwnerID == customerID && !c.InOrder {
			return c, nil
		}
	}
	c := model.Cart{ID: r.s.id(), OwnerID: &customerID, FinalPrice: decimal.Zero}
	r.s.carts[c.ID] = c
	return c, nil
}

func (r *fakeCartRepo) GetOrCreateAnonymousBySession(ctx context.Context, sessionToken string) (model.Cart, error) {
	for _, c := range r.s.carts {
		if c.SessionToken == sessionToken && !c.InOrder {
			return c, nil
		}
	}
	c := model.Cart{ID: r.s.id(), SessionToken: sessionToken, ForAnonymousUser: true, FinalPrice: decimal.Zero}
	r.s.carts[c.ID] = c
	return c, nil
}

func (r *fakeCartRepo) FindByID(ctx context.Context, cartID int64) (model.Cart, error) {
	c, ok := r.s.carts[cartID]
	if !ok {
		return model.Cart{}, repo.ErrNotFound
	}
	return c, nil
}

func (r *fakeCartRepo) FindByIDForUpdate(ctx context.Context, cartID int64) (model.Cart, error) {
	return r.FindByID(ctx, cartID)
}

func (r *fakeCartRepo) UpdateAggregates(ctx context.Context, cartID int64, totalProducts int64, finalPrice decimal.Decimal) error {
	c, ok := r.s.carts[cartID]
	if !ok {
		return repo.ErrNotFound
	}
	c.TotalProducts = totalProducts
	c.FinalPrice = finalPrice
	r.s.carts[cartID] = c
	return nil
}

func (r *fakeCartRepo) MarkInOrder(ctx context.Context, cartID int64) error {
	c, ok := r.s.carts[cartID]
	if !ok || c.InOrder {
		return repo.ErrNotFound
	}
	c.InOrder = true
	r.s.carts[cartID] = c
	return nil
}

// --- cart items ---

type fakeCartItemRepo struct{ s *memStore }

func (r *fakeCartItemRepo) ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	var out []model.CartItem
	for _, it := range r.s.items {
		if it.CartID == cartID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCartItemRepo) ListByCustomerID(ctx context.Context, customerID int64) ([]model.CartItem, error) {
	var out []model.CartItem
	for _, it := range r.s.items {
		if it.CustomerID != nil && *it.CustomerID == customerID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCartItemRepo) GetOrCreate(ctx context.Context, item model.CartItem) (model.CartItem, bool, error) {
	for _, it := range r.s.items {
		if it.CartID == item.CartID && it.ProductID == item.ProductID {
			return it, false, nil
		}
	}
	item.ID = r.s.id()
	r.s.items[item.ID] = item
	return item, true, nil
}

func (r *fakeCartItemRepo) DeleteByCartAndProduct(ctx context.Context, cartID int64, productID int64) error {
	for id, it := range r.s.items {
		if it.CartID == cartID && it.ProductID == productID {
			delete(r.s.items, id)
			return nil
		}
	}
	return repo.ErrNotFound
}

// --- orders ---

type fakeOrderRepo struct{ s *memStore }

func (r *fakeOrderRepo) Create(ctx context.Context, order model.Order) (model.Order, error) {
	if r.s.failOrderCreate {
		return model.Order{}, errors.New("insert failed")
	}
	order.ID = r.s.id()
	r.s.orders[order.ID] = order
	return order, nil
}

func (r *fakeOrderRepo) ListByCustomerID(ctx context.Context, customerID int64) ([]model.Order, error) {
	var out []model.Order
	for _, o := range r.s.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	o, ok := r.s.orders[orderID]
	if !ok {
		return model.Order{}, repo.ErrNotFound
	}
	return o, nil
}

// --- customers / users ---

type fakeCustomerRepo struct{ s *memStore }

func (r *fakeCustomerRepo) Create(ctx context.Context, customer model.Customer) (model.Customer, error) {
	customer.ID = r.s.id()
	r.s.customers[customer.ID] = customer
	return customer, nil
}

func (r *fakeCustomerRepo) FindByID(ctx context.Context, customerID int64) (model.Customer, error) {
	c, ok := r.s.customers[customerID]
	if !ok {
		return model.Customer{}, repo.ErrNotFound
	}
	return c, nil
}

func (r *fakeCustomerRepo) FindByUserID(ctx context.Context, userID int64) (model.Customer, error) {
	for _, c := range r.s.customers {
		if c.UserID != nil && *c.UserID == userID {
			return c, nil
		}
	}
	return model.Customer{}, repo.ErrNotFound
}

func (r *fakeCustomerRepo) GetOrCreateByUserID(ctx context.Context, userID int64) (model.Customer, error) {
	if c, err := r.FindByUserID(ctx, userID); err == nil {
		return c, nil
	}
	return r.Create(ctx, model.Customer{UserID: &userID})
}

type fakeUserRepo struct{ s *memStore }

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	for _, u := range r.s.users {
		if u.Username == user.Username {
			return errors.New("duplicate key")
		}
	}
	user.ID = r.s.id()
	r.s.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, userID int64) (model.User, error) {
	u, ok := r.s.users[userID]
	if !ok {
		return model.User{}, repo.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (model.User, error) {
	for _, u := range r.s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, repo.ErrNotFound
}

// --- tx ---

type fakeTxRepos struct{ s *memStore }

func (r *fakeTxRepos) Products() repo.ProductRepository   { return &fakeProductRepo{s: r.s} }
func (r *fakeTxRepos) Carts() repo.CartRepository         { return &fakeCartRepo{s: r.s} }
func (r *fakeTxRepos) CartItems() repo.CartItemRepository { return &fakeCartItemRepo{s: r.s} }
func (r *fakeTxRepos) Orders() repo.OrderRepository       { return &fakeOrderRepo{s: r.s} }
func (r *fakeTxRepos) Customers() repo.CustomerRepository { return &fakeCustomerRepo{s: r.s} }
func (r *fakeTxRepos) Users() repo.UserRepository         { return &fakeUserRepo{s: r.s} }

type fakeTxManager struct{ s *memStore }

// 失敗時はスナップショットに巻き戻す（DBのrollback相当）
func (tm *fakeTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	snapshot := tm.s.clone()
	if err := fn(&fakeTxRepos{s: tm.s}); err != nil {
		tm.s.restore(snapshot)
		return err
	}
	return nil
}
