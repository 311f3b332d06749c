package service

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/inventory/internal/events"
	"github.com/Skotchmaster/inventory/internal/models"
	"github.com/Skotchmaster/inventory/internal/repo"
	"github.com/Skotchmaster/inventory/internal/transport"
)

type ProductService struct {
	Repo      *repo.GormRepo
	Publisher events.Publisher
	Topic     string
}

func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx)
}

func (s *ProductService) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	prod, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, notFound("product", id, err)
	}
	return prod, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, req transport.ProductRequest) (*models.Product, error) {
	if err := validateProduct(req); err != nil {
		return nil, err
	}

	image := models.DefaultProductImage
	prod := &models.Product{
		Name:        models.DefaultProductName,
		Description: models.DefaultProductDescription,
		Price:       models.DefaultProductPrice,
		Image:       &image,
	}
	applyProduct(prod, req)

	created, err := s.Repo.CreateProduct(ctx, prod)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	publish(ctx, s.Publisher, s.Topic, events.ProductCreated, created.ID, created)
	return created, nil
}

// UpdateProduct overwrites only the fields present in req.
func (s *ProductService) UpdateProduct(ctx context.Context, id int, req transport.ProductRequest) (*models.Product, error) {
	if err := validateProduct(req); err != nil {
		return nil, err
	}

	prod, err := s.Repo.UpdateProduct(ctx, id, func(p *models.Product) error {
		applyProduct(p, req)
		return nil
	})
	if err != nil {
		return nil, notFound("product", id, err)
	}

	publish(ctx, s.Publisher, s.Topic, events.ProductUpdated, prod.ID, prod)
	return prod, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int) (*models.Product, error) {
	prod, err := s.Repo.DeleteProduct(ctx, id)
	if err != nil {
		return nil, notFound("product", id, err)
	}

	publish(ctx, s.Publisher, s.Topic, events.ProductDeleted, prod.ID, prod)
	return prod, nil
}

func validateProduct(req transport.ProductRequest) error {
	if err := requireNotNull("name", req.Name); err != nil {
		return err
	}
	if err := requireNotNull("description", req.Description); err != nil {
		return err
	}
	return requireNotNull("price", req.Price)
}

func applyProduct(p *models.Product, req transport.ProductRequest) {
	if req.Name.Set {
		p.Name = *req.Name.Value
	}
	if req.Description.Set {
		p.Description = *req.Description.Value
	}
	if req.Price.Set {
		p.Price = *req.Price.Value
	}
	if req.SKU.Set {
		p.SKU = req.SKU.Value
	}
	if req.Image.Set {
		p.Image = req.Image.Value
	}
	if req.Quantity.Set {
		p.Quantity = req.Quantity.Value
	}
}
