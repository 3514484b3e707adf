package repository

import (
	"context"

	repo "crosstop/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	products  repo.ProductRepository
	carts     repo.CartRepository
	cartItems repo.CartItemRepository
	orders    repo.OrderRepository
	customers repo.CustomerRepository
	users     repo.UserRepository
}

func (r *txReposGorm) Products() repo.ProductRepository   { return r.products }
func (r *txReposGorm) Carts() repo.CartRepository         { return r.carts }
func (r *txReposGorm) CartItems() repo.CartItemRepository { return r.cartItems }
func (r *txReposGorm) Orders() repo.OrderRepository       { return r.orders }
func (r *txReposGorm) Customers() repo.CustomerRepository { return r.customers }
func (r *txReposGorm) Users() repo.UserRepository         { return r.users }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			products:  NewProductGormRepository(tx),
			carts:     NewCartGormRepository(tx),
			cartItems: NewCartItemGormRepository(tx),
			orders:    NewOrderGormRepository(tx),
			customers: NewCustomerGormRepository(tx),
			users:     NewUserGormRepository(tx),
		}
		return fn(r)
	})
}
