package models

const (
	DefaultProductName        = "example product"
	DefaultProductDescription = "example description"
	DefaultProductPrice       = 0.0
	DefaultProductImage       = "https://i1.wp.com/gelatologia.com/wp-content/uploads/2020/07/placeholder.png"

	DefaultCartCustomerID = "customer_id"
	DefaultCartProductID  = "product_id"
	DefaultCartQuantity   = 0
)

type Product struct {
	ID          int     `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name        string  `gorm:"not null"                  json:"name"`
	Description string  `gorm:"not null"                  json:"description"`
	Price       float64 `gorm:"not null"                  json:"price"`
	SKU         *int    `                                 json:"sku"`
	Image       *string `                                 json:"image"`
	Quantity    *int    `                                 json:"quantity"`
}

func (Product) TableName() string {
	return "product"
}

// Cart is a single cart entry. ProductID is a free string and is not
// checked against the product table.
type Cart struct {
	ID         int     `gorm:"primaryKey;autoIncrement"  json:"id"`
	ItemID     *string `                                 json:"item_id"`
	CustomerID string  `gorm:"not null"                  json:"customer_id"`
	ProductID  string  `gorm:"not null"                  json:"product_id"`
	Quantity   *int    `                                 json:"quantity"`
}

func (Cart) TableName() string {
	return "cart"
}

// All lists the models backed by a table, in migration order.
func All() []any {
	return []any{&Product{}, &Cart{}}
}
