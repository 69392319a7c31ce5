package models

import "errors"

var ErrBadRequest = errors.New("bad request")
var ErrServerError = errors.New("server error")
var ErrNotFoundError = errors.New("not found")
var ErrNotAllowed = errors.New("not acceptable")
var ErrEmptyCart = errors.New("your cart is empty")

// PaymentMethods lists the accepted checkout payment options.
var PaymentMethods = []string{"cod", "upi", "card"}

func IsValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

type CheckoutForm struct {
	CustomerName    string `json:"customerName"`
	CustomerMobile  string `json:"customerMobile"`
	CustomerEmail   string `json:"customerEmail,omitempty"`
	DeliveryAddress string `json:"deliveryAddress"`
	City            string `json:"city"`
	Pincode         string `json:"pincode"`
	PaymentMethod   string `json:"paymentMethod"`
}

type ProductForm struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Quality     string `json:"quality"`
	Price       int    `json:"price"`
	Image       string `json:"image"`
}

type ProductFilter struct {
	Search     string
	Category   string
	PriceRange string
}

type CartRequest struct {
	ProductId int `json:"product_id"`
}

type QuantityRequest struct {
	Quantity int `json:"quantity"`
}
