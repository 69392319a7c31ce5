package services

import (
	"testing"

	"github.com/Aditya231356/Carpenter-Website/entities"
	"github.com/Aditya231356/Carpenter-Website/models"
	"github.com/Aditya231356/Carpenter-Website/repository"

	"github.com/stretchr/testify/require"
)

func newTestProductService(t *testing.T) ProductService {
	t.Helper()
	store := repository.NewMemoryStore()
	productRepo, err := repository.NewProductRepository(store)
	require.NoError(t, err)
	return NewProductService(productRepo)
}

func seededProductService(t *testing.T, prods []entities.Product) ProductService {
	t.Helper()
	store := repository.NewMemoryStore()
	productRepo, err := repository.NewProductRepository(store)
	require.NoError(t, err)
	require.NoError(t, productRepo.SaveProducts(prods))
	return NewProductService(productRepo)
}

func browseFixture() []entities.Product {
	return []entities.Product{
		{Id: 1, Name: "Teak Wood Bed", Description: "King size bed with storage", Category: "furniture", Quality: "Premium Teak Wood", Price: 45000},
		{Id: 2, Name: "Wooden Main Door", Description: "Carved entrance door", Category: "doors", Quality: "Seasoned Teak Wood", Price: 28000},
		{Id: 3, Name: "Custom Bookshelf", Description: "Wall-mounted bookshelf", Category: "custom", Quality: "Plywood with Laminate", Price: 15000},
	}
}

func TestListProducts_NoFilterReturnsAll(t *testing.T) {
	ps := seededProductService(t, browseFixture())

	prods, err := ps.ListProducts(models.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, prods, 3)
}

func TestListProducts_SearchIsCaseInsensitive(t *testing.T) {
	ps := seededProductService(t, browseFixture())

	// matches name
	prods, err := ps.ListProducts(models.ProductFilter{Search: "TEAK WOOD BED"})
	require.NoError(t, err)
	require.Len(t, prods, 1)
	require.Equal(t, 1, prods[0].Id)

	// matches description
	prods, err = ps.ListProducts(models.ProductFilter{Search: "carved"})
	require.NoError(t, err)
	require.Len(t, prods, 1)
	require.Equal(t, 2, prods[0].Id)

	// matches quality
	prods, err = ps.ListProducts(models.ProductFilter{Search: "laminate"})
	require.NoError(t, err)
	require.Len(t, prods, 1)
	require.Equal(t, 3, prods[0].Id)
}

func TestListProducts_CategoryFilter(t *testing.T) {
	ps := seededProductService(t, browseFixture())

	prods, err := ps.ListProducts(models.ProductFilter{Category: "doors"})
	require.NoError(t, err)
	require.Len(t, prods, 1)
	require.Equal(t, 2, prods[0].Id)

	prods, err = ps.ListProducts(models.ProductFilter{Category: "all"})
	require.NoError(t, err)
	require.Len(t, prods, 3)
}

func TestListProducts_PriceRange(t *testing.T) {
	ps := seededProductService(t, browseFixture())

	prods, err := ps.ListProducts(models.ProductFilter{PriceRange: "10000-30000"})
	require.NoError(t, err)
	require.Len(t, prods, 2)

	prods, err = ps.ListProducts(models.ProductFilter{PriceRange: "25000+"})
	require.NoError(t, err)
	require.Len(t, prods, 2)

	prods, err = ps.ListProducts(models.ProductFilter{PriceRange: "28000-28000"})
	require.NoError(t, err)
	require.Len(t, prods, 1)
	require.Equal(t, 2, prods[0].Id)
}

func TestListProducts_MalformedPriceRange(t *testing.T) {
	ps := seededProductService(t, browseFixture())

	_, err := ps.ListProducts(models.ProductFilter{PriceRange: "cheap"})
	require.ErrorIs(t, err, models.ErrBadRequest)

	_, err = ps.ListProducts(models.ProductFilter{PriceRange: "10-20-30"})
	require.ErrorIs(t, err, models.ErrBadRequest)
}

func TestListProducts_CombinedFilters(t *testing.T) {
	ps := seededProductService(t, browseFixture())

	prods, err := ps.ListProducts(models.ProductFilter{
		Search:     "teak",
		Category:   "furniture",
		PriceRange: "40000+",
	})
	require.NoError(t, err)
	require.Len(t, prods, 1)
	require.Equal(t, 1, prods[0].Id)
}

func TestGetProductById(t *testing.T) {
	ps := seededProductService(t, browseFixture())

	prod, err := ps.GetProductById(2)
	require.NoError(t, err)
	require.Equal(t, "Wooden Main Door", prod.Name)

	_, err = ps.GetProductById(42)
	require.ErrorIs(t, err, models.ErrNotFoundError)
}

func TestCreateProduct_AssignsTimeDerivedId(t *testing.T) {
	ps := seededProductService(t, browseFixture())

	prod, err := ps.CreateProduct(models.ProductForm{
		Name:     "Carved Swing",
		Category: "custom",
		Quality:  "Teak Wood",
		Price:    18000,
	})
	require.NoError(t, err)
	require.NotZero(t, prod.Id)

	stored, err := ps.GetProductById(prod.Id)
	require.NoError(t, err)
	require.Equal(t, "Carved Swing", stored.Name)
}

func TestUpdateProduct(t *testing.T) {
	ps := seededProductService(t, browseFixture())

	prod, err := ps.UpdateProduct(models.ProductForm{
		Id:       3,
		Name:     "Custom Bookshelf",
		Category: "custom",
		Quality:  "Solid Oak",
		Price:    21000,
	})
	require.NoError(t, err)
	require.Equal(t, 21000, prod.Price)

	stored, err := ps.GetProductById(3)
	require.NoError(t, err)
	require.Equal(t, "Solid Oak", stored.Quality)

	_, err = ps.UpdateProduct(models.ProductForm{Id: 42, Name: "Ghost"})
	require.ErrorIs(t, err, models.ErrNotFoundError)
}

func TestDeleteProduct_Idempotent(t *testing.T) {
	ps := seededProductService(t, browseFixture())

	require.NoError(t, ps.DeleteProduct(1))
	_, err := ps.GetProductById(1)
	require.ErrorIs(t, err, models.ErrNotFoundError)

	require.NoError(t, ps.DeleteProduct(1))
	prods, err := ps.ListProducts(models.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, prods, 2)
}

func TestListProducts_DefaultCatalogFallback(t *testing.T) {
	ps := newTestProductService(t)

	prods, err := ps.ListProducts(models.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, prods, 6)
}
