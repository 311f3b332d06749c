package transport

// ProductRequest is the body of POST /products/ and PUT /products/{id}.
// On create, absent fields take the model defaults; on update, only present
// fields are written.
type ProductRequest struct {
	Name        Optional[string]  `json:"name"        swaggertype:"string"  example:"example product"`
	Description Optional[string]  `json:"description" swaggertype:"string"  example:"example description"`
	Price       Optional[float64] `json:"price"       swaggertype:"number"  example:"0"`
	SKU         Optional[int]     `json:"sku"         swaggertype:"integer" extensions:"x-nullable"`
	Image       Optional[string]  `json:"image"       swaggertype:"string"  extensions:"x-nullable"`
	Quantity    Optional[int]     `json:"quantity"    swaggertype:"integer" extensions:"x-nullable"`
}

// CartRequest is the body of POST /cart/ and PUT /cart/{id}.
type CartRequest struct {
	ItemID     Optional[string] `json:"item_id"     swaggertype:"string"`
	CustomerID Optional[string] `json:"customer_id" swaggertype:"string"  example:"customer_id"`
	ProductID  Optional[string] `json:"product_id"  swaggertype:"string"  example:"product_id"`
	Quantity   Optional[int]    `json:"quantity"    swaggertype:"integer" extensions:"x-nullable"`
}

type ErrorResponse struct {
	Detail string `json:"detail" example:"Product not found"`
}
