package repository

import (
	"context"
	"errors"

	"github.com/polenmarket/polen/internal/catalog/domain"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &repo{db: db}
}

func (r *repo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var items []domain.Category
	err := r.db.WithContext(ctx).
		Where("activo = ?", true).
		Order("orden ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.ProductListItem, error) {
	var items []domain.ProductListItem
	stmt := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Select("productos.*, categorias.nombre AS categoria_nombre").
		Joins("LEFT JOIN categorias ON categorias.id = productos.categoria_id").
		Where("productos.activo = ?", true)

	if filter.CategoryID != nil {
		stmt = stmt.Where("productos.categoria_id = ?", *filter.CategoryID)
	}

	err := stmt.Order("productos.created_at DESC").Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) CountActiveProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("activo = ?", true).
		Count(&count).Error
	return count, err
}

func (r *repo) FindProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repo) CreateProduct(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *repo) UpdateProduct(ctx context.Context, product *domain.Product) error {
	if product == nil {
		return gorm.ErrInvalidData
	}
	tx := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ?", product.ID).
		Select("nombre", "categoria_id", "precio", "descripcion", "imagen_url", "activo").
		Updates(product)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *repo) DeleteProduct(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Product{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
