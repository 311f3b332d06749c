package repo

import (
	"context"

	"github.com/Skotchmaster/inventory/internal/models"
)

func (r *GormRepo) ListCart(ctx context.Context) ([]models.Cart, error) {
	return list[models.Cart](ctx, r.DB)
}

func (r *GormRepo) GetCart(ctx context.Context, id int) (*models.Cart, error) {
	return get[models.Cart](ctx, r.DB, id)
}

func (r *GormRepo) CreateCart(ctx context.Context, item *models.Cart) (*models.Cart, error) {
	if err := create(ctx, r.DB, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *GormRepo) UpdateCart(ctx context.Context, id int, apply func(*models.Cart) error) (*models.Cart, error) {
	return update(ctx, r.DB, id, apply)
}

func (r *GormRepo) DeleteCart(ctx context.Context, id int) (*models.Cart, error) {
	return remove[models.Cart](ctx, r.DB, id)
}
