package repository

import (
	"errors"
	"log"

	"github.com/Aditya231356/Carpenter-Website/entities"
)

type CartRepository interface {
	GetCart() (cart []entities.CartLine, err error)
	SaveCart(cart []entities.CartLine) (err error)
	ClearCart() (err error)
}

type CartRepo struct {
	store Store
}

func NewCartRepository(store Store) (CartRepository, error) {
	if store == nil {
		return nil, errors.New("store must be non-nil")
	}
	return &CartRepo{
		store: store,
	}, nil
}

func (c *CartRepo) GetCart() (cart []entities.CartLine, err error) {
	cart = []entities.CartLine{}
	found, e := c.store.Load(CartKey, &cart)
	if e != nil {
		// unreadable cart degrades to empty, same as a missing key
		log.Printf("GetCart: %v", e)
		cart = []entities.CartLine{}
		return
	}
	if !found {
		cart = []entities.CartLine{}
	}
	return
}

func (c *CartRepo) SaveCart(cart []entities.CartLine) (err error) {
	err = c.store.Save(CartKey, cart)
	return
}

func (c *CartRepo) ClearCart() (err error) {
	err = c.store.Delete(CartKey)
	return
}
