package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	ListCategories(ctx context.Context) ([]CategoryResponse, error)
	ListProducts(ctx context.Context, req ListProductsRequest) ([]ProductResponse, error)
	CreateProduct(ctx context.Context, req ProductRequest) (*ProductResponse, error)
	UpdateProduct(ctx context.Context, id string, req ProductRequest) (*ProductResponse, error)
	DeleteProduct(ctx context.Context, id string) error
}

type ListProductsRequest struct {
	CategoryID string
}

// ProductRequest carries the full mutable record. Updates replace every
// mutable field (full-record semantics, last write wins).
type ProductRequest struct {
	Name        string  `json:"name"`
	CategoryID  *string `json:"category_id"`
	Price       int64   `json:"price"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	Active      *bool   `json:"active"`
}

type CategoryResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Order  int    `json:"order"`
	Active bool   `json:"active"`
}

type ProductResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CategoryID   *string   `json:"category_id,omitempty"`
	CategoryName string    `json:"category_name"`
	Price        int64     `json:"price"`
	Description  *string   `json:"description,omitempty"`
	ImageURL     *string   `json:"image_url,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

var (
	ErrNotFound     = errors.New("not_found")
	ErrInvalidID    = errors.New("invalid_id")
	ErrInvalidName  = errors.New("invalid_name")
	ErrInvalidPrice = errors.New("invalid_price")
)
