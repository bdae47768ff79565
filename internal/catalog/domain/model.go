package domain

import "time"

// Category maps the legacy `categorias` table. Categories are managed
// outside this service; we only read them.
type Category struct {
	ID     int64  `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"column:nombre;type:text;not null"`
	Slug   string `json:"slug" gorm:"column:slug;type:text;not null"`
	Order  int    `json:"order" gorm:"column:orden;not null;default:0"`
	// No default tag: gorm would skip a zero-value (false) flag on insert
	// and the row would come back active.
	Active bool `json:"active" gorm:"column:activo;not null"`
}

func (Category) TableName() string { return "categorias" }

// Product maps the legacy `productos` table. Column names are part of the
// compatibility contract with the existing backend and must not change.
type Product struct {
	ID          int64     `gorm:"primaryKey"`
	Name        string    `gorm:"column:nombre;type:text;not null"`
	CategoryID  *int64    `gorm:"column:categoria_id"`
	Price       int64     `gorm:"column:precio;not null"`
	Description *string   `gorm:"column:descripcion;type:text"`
	ImageURL    *string   `gorm:"column:imagen_url;type:text"`
	Active      bool      `gorm:"column:activo;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

func (Product) TableName() string { return "productos" }

// ProductListItem is a product row joined with its category name for display.
type ProductListItem struct {
	Product      `gorm:"embedded"`
	CategoryName *string `gorm:"column:categoria_nombre"`
}
