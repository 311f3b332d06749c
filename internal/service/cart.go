package service

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/inventory/internal/events"
	"github.com/Skotchmaster/inventory/internal/models"
	"github.com/Skotchmaster/inventory/internal/repo"
	"github.com/Skotchmaster/inventory/internal/transport"
)

type CartService struct {
	Repo      *repo.GormRepo
	Publisher events.Publisher
	Topic     string
}

func (s *CartService) ListCart(ctx context.Context) ([]models.Cart, error) {
	return s.Repo.ListCart(ctx)
}

func (s *CartService) GetCart(ctx context.Context, id int) (*models.Cart, error) {
	item, err := s.Repo.GetCart(ctx, id)
	if err != nil {
		return nil, notFound("cart", id, err)
	}
	return item, nil
}

// CreateCart stores a new entry. item_id is taken from the client as is and
// stays null when omitted.
func (s *CartService) CreateCart(ctx context.Context, req transport.CartRequest) (*models.Cart, error) {
	if err := validateCart(req); err != nil {
		return nil, err
	}

	quantity := models.DefaultCartQuantity
	item := &models.Cart{
		CustomerID: models.DefaultCartCustomerID,
		ProductID:  models.DefaultCartProductID,
		Quantity:   &quantity,
	}
	applyCart(item, req)

	created, err := s.Repo.CreateCart(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("create cart: %w", err)
	}

	publish(ctx, s.Publisher, s.Topic, events.CartCreated, created.ID, created)
	return created, nil
}

func (s *CartService) UpdateCart(ctx context.Context, id int, req transport.CartRequest) (*models.Cart, error) {
	if err := validateCart(req); err != nil {
		return nil, err
	}

	item, err := s.Repo.UpdateCart(ctx, id, func(c *models.Cart) error {
		applyCart(c, req)
		return nil
	})
	if err != nil {
		return nil, notFound("cart", id, err)
	}

	publish(ctx, s.Publisher, s.Topic, events.CartUpdated, item.ID, item)
	return item, nil
}

func (s *CartService) DeleteCart(ctx context.Context, id int) (*models.Cart, error) {
	item, err := s.Repo.DeleteCart(ctx, id)
	if err != nil {
		return nil, notFound("cart", id, err)
	}

	publish(ctx, s.Publisher, s.Topic, events.CartDeleted, item.ID, item)
	return item, nil
}

// validateCart rejects explicit nulls. item_id may be omitted, which leaves
// it null, but cannot be sent as null.
func validateCart(req transport.CartRequest) error {
	if err := requireNotNull("item_id", req.ItemID); err != nil {
		return err
	}
	if err := requireNotNull("customer_id", req.CustomerID); err != nil {
		return err
	}
	return requireNotNull("product_id", req.ProductID)
}

func applyCart(c *models.Cart, req transport.CartRequest) {
	if req.ItemID.Set {
		c.ItemID = req.ItemID.Value
	}
	if req.CustomerID.Set {
		c.CustomerID = *req.CustomerID.Value
	}
	if req.ProductID.Set {
		c.ProductID = *req.ProductID.Value
	}
	if req.Quantity.Set {
		c.Quantity = req.Quantity.Value
	}
}
