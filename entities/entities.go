package entities

type Product struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Quality     string `json:"quality"`
	Price       int    `json:"price"`
	Image       string `json:"image"`
}

// CartLine carries the product display fields so the cart stays renderable
// even after the product itself is edited or deleted.
type CartLine struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Quality     string `json:"quality"`
	Price       int    `json:"price"`
	Image       string `json:"image"`
	Quantity    int    `json:"quantity"`
}

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Delivery float64 `json:"delivery"`
	Total    float64 `json:"total"`
}

type Order struct {
	OrderId         string     `json:"orderId"`
	CustomerName    string     `json:"customerName"`
	CustomerMobile  string     `json:"customerMobile"`
	CustomerEmail   string     `json:"customerEmail,omitempty"`
	DeliveryAddress string     `json:"deliveryAddress"`
	City            string     `json:"city"`
	Pincode         string     `json:"pincode"`
	PaymentMethod   string     `json:"paymentMethod"`
	Items           []CartLine `json:"items"`
	Totals          Totals     `json:"totals"`
	OrderDate       string     `json:"orderDate"`
	Status          string     `json:"status"`
}

type GalleryItem struct {
	Id          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Image       string `json:"image"`
}

type CartResponse struct {
	Items  []CartLine `json:"items"`
	Count  int        `json:"count"`
	Totals Totals     `json:"totals"`
}

type DashboardStats struct {
	TotalProducts int     `json:"totalProducts"`
	TotalOrders   int     `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
}
