package repository

import (
	"errors"
	"log"

	"github.com/Aditya231356/Carpenter-Website/entities"
)

type OrderRepository interface {
	GetOrders() (orders []entities.Order, err error)
	AppendOrder(order entities.Order) (err error)
}

type OrderRepo struct {
	store Store
}

func NewOrderRepository(store Store) (OrderRepository, error) {
	if store == nil {
		return nil, errors.New("store must be non-nil")
	}
	return &OrderRepo{
		store: store,
	}, nil
}

func (o *OrderRepo) GetOrders() (orders []entities.Order, err error) {
	orders = []entities.Order{}
	found, e := o.store.Load(OrdersKey, &orders)
	if e != nil {
		log.Printf("GetOrders: %v", e)
		orders = []entities.Order{}
		return
	}
	if !found {
		orders = []entities.Order{}
	}
	return
}

// AppendOrder is a load-push-save cycle, not a transaction. A concurrent
// writer between load and save loses its append.
func (o *OrderRepo) AppendOrder(order entities.Order) (err error) {
	orders, err := o.GetOrders()
	if err != nil {
		return
	}
	orders = append(orders, order)
	err = o.store.Save(OrdersKey, orders)
	return
}
