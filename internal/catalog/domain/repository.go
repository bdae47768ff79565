package domain

import "context"

type Repository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]ProductListItem, error)
	CountActiveProducts(ctx context.Context) (int64, error)
	FindProductByID(ctx context.Context, id int64) (*Product, error)
	CreateProduct(ctx context.Context, product *Product) error
	UpdateProduct(ctx context.Context, product *Product) error
	DeleteProduct(ctx context.Context, id int64) error
}

// ProductFilter restricts product listings. Listings always exclude
// inactive rows; CategoryID narrows to one category when set.
type ProductFilter struct {
	CategoryID *int64
}
