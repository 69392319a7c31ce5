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

type ProductService struct {
	pr repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return ProductService{
		pr: productRepo,
	}
}

// ListProducts applies the browse filters: a case-insensitive search term over
// name, description and quality, a category filter and a price range of the
// form "min-max" or "min+". Empty or "all" filters pass everything.
func (ps *ProductService) ListProducts(filter models.ProductFilter) (prods []entities.Product, err error) {
	all, e := ps.pr.GetProducts()
	if e != nil {
		err = e
		return
	}
	minPrice, maxPrice, e := parsePriceRange(filter.PriceRange)
	if e != nil {
		err = e
		return
	}
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	prods = []entities.Product{}
	for _, p := range all {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) &&
			!strings.Contains(strings.ToLower(p.Quality), search) {
			continue
		}
		if filter.Category != "" && filter.Category != "all" && p.Category != filter.Category {
			continue
		}
		if p.Price < minPrice {
			continue
		}
		if maxPrice >= 0 && p.Price > maxPrice {
			continue
		}
		prods = append(prods, p)
	}
	return
}

// parsePriceRange returns maxPrice = -1 for open-ended ranges ("25000+").
func parsePriceRange(priceRange string) (minPrice int, maxPrice int, err error) {
	maxPrice = -1
	if priceRange == "" || priceRange == "all" {
		return
	}
	if strings.HasSuffix(priceRange, "+") {
		minPrice, err = strconv.Atoi(strings.TrimSuffix(priceRange, "+"))
		if err != nil {
			log.Printf("parsePriceRange: %v", err)
			err = models.ErrBadRequest
		}
		return
	}
	parts := strings.SplitN(priceRange, "-", 2)
	if len(parts) != 2 {
		log.Printf("parsePriceRange: invalid range %q", priceRange)
		err = models.ErrBadRequest
		return
	}
	minPrice, err = strconv.Atoi(parts[0])
	if err == nil {
		maxPrice, err = strconv.Atoi(parts[1])
	}
	if err != nil {
		log.Printf("parsePriceRange: %v", err)
		err = models.ErrBadRequest
	}
	return
}

func (ps *ProductService) GetProductById(id int) (prod entities.Product, err error) {
	prods, e := ps.pr.GetProducts()
	if e != nil {
		err = e
		return
	}
	for _, p := range prods {
		if p.Id == id {
			prod = p
			return
		}
	}
	err = models.ErrNotFoundError
	return
}

// CreateProduct appends an admin-entered product. Ids are derived from the
// current time, matching the order id scheme.
func (ps *ProductService) CreateProduct(form models.ProductForm) (prod entities.Product, err error) {
	prods, e := ps.pr.GetProducts()
	if e != nil {
		err = e
		return
	}
	id := form.Id
	if id == 0 {
		id = int(time.Now().UnixMilli())
	}
	prod = entities.Product{
		Id:          id,
		Name:        form.Name,
		Description: form.Description,
		Category:    form.Category,
		Quality:     form.Quality,
		Price:       form.Price,
		Image:       form.Image,
	}
	prods = append(prods, prod)
	err = ps.pr.SaveProducts(prods)
	return
}

func (ps *ProductService) UpdateProduct(form models.ProductForm) (prod entities.Product, err error) {
	prods, e := ps.pr.GetProducts()
	if e != nil {
		err = e
		return
	}
	for i, p := range prods {
		if p.Id != form.Id {
			continue
		}
		prod = entities.Product{
			Id:          form.Id,
			Name:        form.Name,
			Description: form.Description,
			Category:    form.Category,
			Quality:     form.Quality,
			Price:       form.Price,
			Image:       form.Image,
		}
		prods[i] = prod
		err = ps.pr.SaveProducts(prods)
		return
	}
	log.Printf("UpdateProduct: product %v does not exist", form.Id)
	err = models.ErrNotFoundError
	return
}

// DeleteProduct is idempotent; deleting an unknown id rewrites the collection
// unchanged.
func (ps *ProductService) DeleteProduct(id int) (err error) {
	prods, e := ps.pr.GetProducts()
	if e != nil {
		err = e
		return
	}
	filtered := []entities.Product{}
	for _, p := range prods {
		if p.Id != id {
			filtered = append(filtered, p)
		}
	}
	err = ps.pr.SaveProducts(filtered)
	return
}

func (ps *ProductService) SeedDefaults() (err error) {
	err = ps.pr.SeedDefaults()
	return
}
