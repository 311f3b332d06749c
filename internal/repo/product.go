package repo

import (
	"context"

	"github.com/Skotchmaster/inventory/internal/models"
)

func (r *GormRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	return list[models.Product](ctx, r.DB)
}

func (r *GormRepo) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	return get[models.Product](ctx, r.DB, id)
}

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) (*models.Product, error) {
	if err := create(ctx, r.DB, prod); err != nil {
		return nil, err
	}
	return prod, nil
}

func (r *GormRepo) UpdateProduct(ctx context.Context, id int, apply func(*models.Product) error) (*models.Product, error) {
	return update(ctx, r.DB, id, apply)
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id int) (*models.Product, error) {
	return remove[models.Product](ctx, r.DB, id)
}
