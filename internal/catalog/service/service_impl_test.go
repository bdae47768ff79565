package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/polenmarket/polen/internal/catalog/domain"
	"github.com/polenmarket/polen/internal/catalog/repository"
	"github.com/polenmarket/polen/pkg/db"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(&domain.Category{}, &domain.Product{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("failed to create snowflake node: %v", err)
	}

	return New(zap.NewNop(), repository.New(dbConn), node), dbConn
}

func seedCategory(t *testing.T, dbConn *gorm.DB, id int64, name string, order int, active bool) {
	t.Helper()
	cat := domain.Category{ID: id, Name: name, Slug: name, Order: order, Active: active}
	if err := dbConn.Create(&cat).Error; err != nil {
		t.Fatalf("seed category %s: %v", name, err)
	}
}

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }

func TestListCategoriesOnlyActiveOrdered(t *testing.T) {
	svc, dbConn := newTestService(t)

	seedCategory(t, dbConn, 2, "Segunda", 2, true)
	seedCategory(t, dbConn, 1, "Primera", 1, true)
	seedCategory(t, dbConn, 3, "Oculta", 0, false)

	cats, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(cats) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(cats))
	}
	if cats[0].Name != "Primera" || cats[1].Name != "Segunda" {
		t.Fatalf("unexpected order: %s, %s", cats[0].Name, cats[1].Name)
	}
}

func TestCreateProductValidation(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.CreateProduct(context.Background(), domain.ProductRequest{Price: 100}); err != domain.ErrInvalidName {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
	if _, err := svc.CreateProduct(context.Background(), domain.ProductRequest{Name: "Miel", Price: -1}); err != domain.ErrInvalidPrice {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
	if _, err := svc.CreateProduct(context.Background(), domain.ProductRequest{Name: "Miel", Price: 100, CategoryID: strptr("abc")}); err != domain.ErrInvalidID {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestListProductsExcludesInactive(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.CreateProduct(context.Background(), domain.ProductRequest{Name: "Visible", Price: 100}); err != nil {
		t.Fatalf("create visible: %v", err)
	}
	if _, err := svc.CreateProduct(context.Background(), domain.ProductRequest{Name: "Oculto", Price: 200, Active: boolptr(false)}); err != nil {
		t.Fatalf("create hidden: %v", err)
	}

	items, err := svc.ListProducts(context.Background(), domain.ListProductsRequest{})
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 product, got %d", len(items))
	}
	if items[0].Name != "Visible" {
		t.Fatalf("expected Visible, got %s", items[0].Name)
	}
}

func TestCreateProductPersistsInactive(t *testing.T) {
	svc, dbConn := newTestService(t)

	created, err := svc.CreateProduct(context.Background(), domain.ProductRequest{
		Name: "Guardado", Price: 100, Active: boolptr(false),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Active {
		t.Fatal("expected response to carry active=false")
	}

	// The stored row must be inactive too, not silently flipped to a
	// column default on insert.
	var stored domain.Product
	if err := dbConn.First(&stored, "nombre = ?", "Guardado").Error; err != nil {
		t.Fatalf("load stored product: %v", err)
	}
	if stored.Active {
		t.Fatal("expected stored row to be inactive")
	}
}

func TestListProductsCategoryNameJoin(t *testing.T) {
	svc, dbConn := newTestService(t)

	seedCategory(t, dbConn, 7, "Miel", 1, true)
	categoryID := snowflake.ID(7).String()

	if _, err := svc.CreateProduct(context.Background(), domain.ProductRequest{
		Name: "Miel de azahar", Price: 1500, CategoryID: &categoryID,
	}); err != nil {
		t.Fatalf("create categorized: %v", err)
	}
	if _, err := svc.CreateProduct(context.Background(), domain.ProductRequest{
		Name: "Suelto", Price: 500,
	}); err != nil {
		t.Fatalf("create uncategorized: %v", err)
	}

	items, err := svc.ListProducts(context.Background(), domain.ListProductsRequest{})
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 products, got %d", len(items))
	}
	byName := map[string]domain.ProductResponse{}
	for _, item := range items {
		byName[item.Name] = item
	}
	if got := byName["Miel de azahar"].CategoryName; got != "Miel" {
		t.Fatalf("expected category Miel, got %q", got)
	}
	if got := byName["Suelto"].CategoryName; got != "Sin categoría" {
		t.Fatalf("expected placeholder category, got %q", got)
	}

	filtered, err := svc.ListProducts(context.Background(), domain.ListProductsRequest{CategoryID: categoryID})
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Name != "Miel de azahar" {
		t.Fatalf("unexpected filtered result: %+v", filtered)
	}
}

func TestUpdateProductReplacesAllFields(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.CreateProduct(context.Background(), domain.ProductRequest{
		Name:        "Original",
		Price:       1000,
		Description: strptr("con descripción"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Omitting description on update clears it: writes are full-record.
	updated, err := svc.UpdateProduct(context.Background(), created.ID, domain.ProductRequest{
		Name:  "Renombrado",
		Price: 2000,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Renombrado" || updated.Price != 2000 {
		t.Fatalf("unexpected update result: %+v", updated)
	}
	if updated.Description != nil {
		t.Fatalf("expected description cleared, got %v", *updated.Description)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("expected created_at preserved")
	}

	items, err := svc.ListProducts(context.Background(), domain.ListProductsRequest{})
	if err != nil {
		t.Fatalf("list after update: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Renombrado" {
		t.Fatalf("update not persisted: %+v", items)
	}
}

func TestUpdateProductErrors(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.UpdateProduct(context.Background(), "zzz", domain.ProductRequest{Name: "x", Price: 1}); err != domain.ErrInvalidID {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if _, err := svc.UpdateProduct(context.Background(), "424242", domain.ProductRequest{Name: "x", Price: 1}); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteProduct(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.CreateProduct(context.Background(), domain.ProductRequest{Name: "Efímero", Price: 100})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DeleteProduct(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteProduct(context.Background(), created.ID); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}

	items, err := svc.ListProducts(context.Background(), domain.ListProductsRequest{})
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %d", len(items))
	}
}
