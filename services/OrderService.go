package services

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Aditya231356/Carpenter-Website/entities"
	"github.com/Aditya231356/Carpenter-Website/models"
	"github.com/Aditya231356/Carpenter-Website/repository"
)

type OrderService struct {
	cs CartService
	or repository.OrderRepository
	pr repository.ProductRepository
}

func NewOrderService(cartService CartService, orderRepo repository.OrderRepository, productRepo repository.ProductRepository) OrderService {
	return OrderService{
		cs: cartService,
		or: orderRepo,
		pr: productRepo,
	}
}

// PlaceOrder snapshots the current cart plus the checkout form into a new
// order, appends it to the orders collection and clears the cart. An empty
// cart or an invalid form leaves both collections untouched.
func (ors *OrderService) PlaceOrder(form models.CheckoutForm) (order entities.Order, err error) {
	cart, e := ors.cs.GetCart()
	if e != nil {
		err = e
		return
	}
	if len(cart.Items) == 0 {
		err = models.ErrEmptyCart
		return
	}
	err = validateCheckoutForm(form)
	if err != nil {
		return
	}

	order = entities.Order{
		OrderId:         "ORD" + strconv.FormatInt(time.Now().UnixMilli(), 10),
		CustomerName:    form.CustomerName,
		CustomerMobile:  form.CustomerMobile,
		CustomerEmail:   form.CustomerEmail,
		DeliveryAddress: form.DeliveryAddress,
		City:            form.City,
		Pincode:         form.Pincode,
		PaymentMethod:   form.PaymentMethod,
		Items:           cart.Items,
		Totals:          cart.Totals,
		OrderDate:       time.Now().Format("02/01/2006, 15:04:05"),
		Status:          "pending",
	}

	err = ors.or.AppendOrder(order)
	if err != nil {
		return
	}
	err = ors.cs.Clear()
	return
}

func validateCheckoutForm(form models.CheckoutForm) (err error) {
	required := map[string]string{
		"customerName":    form.CustomerName,
		"customerMobile":  form.CustomerMobile,
		"deliveryAddress": form.DeliveryAddress,
		"city":            form.City,
		"pincode":         form.Pincode,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			log.Printf("PlaceOrder: %v is required", field)
			err = models.ErrBadRequest
			return
		}
	}
	if !models.IsValidPaymentMethod(form.PaymentMethod) {
		log.Printf("PlaceOrder: payment method %q is not supported", form.PaymentMethod)
		err = models.ErrBadRequest
	}
	return
}

func (ors *OrderService) ListOrders() (orders []entities.Order, err error) {
	orders, err = ors.or.GetOrders()
	return
}

func (ors *OrderService) GetOrderById(orderId string) (order entities.Order, err error) {
	orders, e := ors.or.GetOrders()
	if e != nil {
		err = e
		return
	}
	for _, o := range orders {
		if o.OrderId == orderId {
			order = o
			return
		}
	}
	err = models.ErrNotFoundError
	return
}

// DashboardStats aggregates the admin dashboard cards: product count, order
// count and total revenue over all placed orders.
func (ors *OrderService) DashboardStats() (stats entities.DashboardStats, err error) {
	prods, e := ors.pr.GetProducts()
	if e != nil {
		err = e
		return
	}
	orders, e := ors.or.GetOrders()
	if e != nil {
		err = e
		return
	}
	var revenue float64
	for _, o := range orders {
		revenue += o.Totals.Total
	}
	stats = entities.DashboardStats{
		TotalProducts: len(prods),
		TotalOrders:   len(orders),
		TotalRevenue:  revenue,
	}
	return
}
