package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/polenmarket/polen/internal/catalog/domain"
	"go.uber.org/zap"
)

// Products without a resolvable category render this placeholder; a dangling
// categoria_id is tolerated, never an error.
const noCategoryLabel = "Sin categoría"

type Service struct {
	log   *zap.Logger
	repo  domain.Repository
	genID *snowflake.Node
}

func New(log *zap.Logger, repo domain.Repository, genID *snowflake.Node) domain.Service {
	return &Service{
		log:   log.Named("catalog.service"),
		repo:  repo,
		genID: genID,
	}
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	items, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.log.Error("list categories", zap.Error(err))
		return nil, err
	}

	resp := make([]domain.CategoryResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, domain.CategoryResponse{
			ID:     snowflake.ID(item.ID).String(),
			Name:   item.Name,
			Slug:   item.Slug,
			Order:  item.Order,
			Active: item.Active,
		})
	}
	return resp, nil
}

func (s *Service) ListProducts(ctx context.Context, req domain.ListProductsRequest) ([]domain.ProductResponse, error) {
	var filter domain.ProductFilter
	if raw := strings.TrimSpace(req.CategoryID); raw != "" {
		id, err := snowflake.ParseString(raw)
		if err != nil {
			return nil, domain.ErrInvalidID
		}
		categoryID := id.Int64()
		filter.CategoryID = &categoryID
	}

	items, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		s.log.Error("list products", zap.Error(err))
		return nil, err
	}

	resp := make([]domain.ProductResponse, 0, len(items))
	for _, item := range items {
		r := toResponse(&item.Product)
		if item.CategoryName != nil && *item.CategoryName != "" {
			r.CategoryName = *item.CategoryName
		}
		resp = append(resp, r)
	}
	return resp, nil
}

func (s *Service) CreateProduct(ctx context.Context, req domain.ProductRequest) (*domain.ProductResponse, error) {
	p, err := s.buildProduct(req)
	if err != nil {
		return nil, err
	}
	p.ID = s.genID.Generate().Int64()

	if err := s.repo.CreateProduct(ctx, p); err != nil {
		s.log.Error("create product", zap.Error(err))
		return nil, err
	}

	resp := toResponse(p)
	return &resp, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id string, req domain.ProductRequest) (*domain.ProductResponse, error) {
	productID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	existing, err := s.repo.FindProductByID(ctx, productID.Int64())
	if err != nil {
		s.log.Error("find product", zap.Error(err))
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	p, err := s.buildProduct(req)
	if err != nil {
		return nil, err
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt

	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		s.log.Error("update product", zap.Error(err))
		return nil, err
	}

	resp := toResponse(p)
	return &resp, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	productID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	if err := s.repo.DeleteProduct(ctx, productID.Int64()); err != nil {
		if err != domain.ErrNotFound {
			s.log.Error("delete product", zap.Error(err))
		}
		return err
	}
	return nil
}

// buildProduct validates the request and assembles the full record written
// on both create and update.
func (s *Service) buildProduct(req domain.ProductRequest) (*domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	if req.Price < 0 {
		return nil, domain.ErrInvalidPrice
	}

	p := &domain.Product{
		Name:   name,
		Price:  req.Price,
		Active: true,
	}
	if req.Active != nil {
		p.Active = *req.Active
	}

	if req.CategoryID != nil && strings.TrimSpace(*req.CategoryID) != "" {
		id, err := snowflake.ParseString(strings.TrimSpace(*req.CategoryID))
		if err != nil {
			return nil, domain.ErrInvalidID
		}
		categoryID := id.Int64()
		p.CategoryID = &categoryID
	}

	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description != "" {
			p.Description = &description
		}
	}
	if req.ImageURL != nil {
		imageURL := strings.TrimSpace(*req.ImageURL)
		if imageURL != "" {
			p.ImageURL = &imageURL
		}
	}

	return p, nil
}

func toResponse(p *domain.Product) domain.ProductResponse {
	resp := domain.ProductResponse{
		ID:           snowflake.ID(p.ID).String(),
		Name:         p.Name,
		CategoryName: noCategoryLabel,
		Price:        p.Price,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		Active:       p.Active,
		CreatedAt:    p.CreatedAt,
	}
	if p.CategoryID != nil {
		categoryID := snowflake.ID(*p.CategoryID).String()
		resp.CategoryID = &categoryID
	}
	return resp
}
