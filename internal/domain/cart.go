package domain

type CartItem struct {
	ID       int64
	Product  ProductSummary
	Quantity int
}

// Cart is the canonical server-side cart as last fetched. The synchronizer
// owns the single in-memory copy; everything else reads through it.
type Cart struct {
	ID    int64
	Items []CartItem
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

func (c Cart) Item(itemID int64) (CartItem, bool) {
	for _, item := range c.Items {
		if item.ID == itemID {
			return item, true
		}
	}
	return CartItem{}, false
}

func (c Cart) ItemForProduct(productID int64) (CartItem, bool) {
	for _, item := range c.Items {
		if item.Product.ID == productID {
			return item, true
		}
	}
	return CartItem{}, false
}
