package repository

import (
	"errors"
	"log"

	"github.com/Aditya231356/Carpenter-Website/catalog"
	"github.com/Aditya231356/Carpenter-Website/entities"
)

type ProductRepository interface {
	GetProducts() (prods []entities.Product, err error)
	SaveProducts(prods []entities.Product) (err error)
	SeedDefaults() (err error)
}

type ProductRepo struct {
	store Store
}

func NewProductRepository(store Store) (ProductRepository, error) {
	if store == nil {
		return nil, errors.New("store must be non-nil")
	}
	return &ProductRepo{
		store: store,
	}, nil
}

// GetProducts falls back to the default catalog when the key is missing or
// unreadable. The fallback is never written back here; seeding is explicit.
func (p *ProductRepo) GetProducts() (prods []entities.Product, err error) {
	found, e := p.store.Load(ProductsKey, &prods)
	if e != nil {
		log.Printf("GetProducts: %v", e)
		prods = catalog.DefaultProducts()
		return
	}
	if !found {
		prods = catalog.DefaultProducts()
	}
	return
}

func (p *ProductRepo) SaveProducts(prods []entities.Product) (err error) {
	err = p.store.Save(ProductsKey, prods)
	return
}

func (p *ProductRepo) SeedDefaults() (err error) {
	var existing []entities.Product
	found, e := p.store.Load(ProductsKey, &existing)
	if e != nil {
		err = e
		return
	}
	if found {
		return
	}
	err = p.store.Save(ProductsKey, catalog.DefaultProducts())
	return
}
