package models

// Product is one catalog entry as served by the product list endpoint.
// The catalog is a pure input: fetched once, never written back.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	Color       string  `json:"color"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
}

// CartProduct is the display snapshot captured when a product is added to
// the cart. Later catalog price changes do not affect existing lines.
type CartProduct struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	ImageURL string  `json:"imageUrl"`
}

// Snapshot captures the cart-facing fields of a product.
func (p Product) Snapshot() CartProduct {
	return CartProduct{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Category: p.Category,
		ImageURL: p.ImageURL,
	}
}

// CartItem is one cart line: a product snapshot plus a quantity >= 1.
// At most one line exists per product id.
type CartItem struct {
	Product  CartProduct `json:"product"`
	Quantity int         `json:"quantity"`
}

// Subtotal is price times quantity for this line.
func (i CartItem) Subtotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}
