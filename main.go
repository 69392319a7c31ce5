package main

import (
	"context"
	"log"
	"net/http"

	"github.com/Aditya231356/Carpenter-Website/config"
	"github.com/Aditya231356/Carpenter-Website/handlers"
	"github.com/Aditya231356/Carpenter-Website/repository"
	"github.com/Aditya231356/Carpenter-Website/services"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.LoadConfig()
	rdb := config.NewRedisClient(cfg.Redis)
	defer rdb.Close()

	store, err := repository.NewRedisStore(rdb, context.Background())
	if err != nil {
		panic(err)
	}
	pR, err := repository.NewProductRepository(store)
	cartR, err2 := repository.NewCartRepository(store)
	oR, _ := repository.NewOrderRepository(store)
	gR, _ := repository.NewGalleryRepository(store)
	if err != nil {
		panic(err)
	}
	if err2 != nil {
		panic(err2)
	}

	prdService := services.NewProductService(pR)
	crtService := services.NewCartService(cartR, services.LogNotifier{})
	galService := services.NewGalleryService(gR)
	hp := handlers.HandlerParams{
		PrdService:  prdService,
		CrtService:  crtService,
		OrdService:  services.NewOrderService(crtService, oR, pR),
		GalyService: galService,
	}

	if err := prdService.SeedDefaults(); err != nil {
		panic(err)
	}
	if err := galService.SeedDefaults(); err != nil {
		panic(err)
	}
	log.Printf("default catalog seeded")

	ha := handlers.NewHandler(hp)
	router := mux.NewRouter()
	router.Use(ha.ErrorHandleMiddleware)
	router.Use(ha.RequestIDMiddleware)

	router.HandleFunc("/products", ha.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id:[0-9]+}", ha.GetProduct).Methods("GET")
	router.HandleFunc("/admin/products", ha.CreateProduct).Methods("POST")
	router.HandleFunc("/admin/products/{id:[0-9]+}/update", ha.UpdateProduct).Methods("POST")
	router.HandleFunc("/admin/products/{id:[0-9]+}", ha.DeleteProduct).Methods("DELETE")

	router.HandleFunc("/cart", ha.GetCart).Methods("GET")
	router.HandleFunc("/cart", ha.AddToCart).Methods("POST")
	router.HandleFunc("/cart/total", ha.GetCartTotal).Methods("GET")
	router.HandleFunc("/cart/{id:[0-9]+}", ha.DeleteFromCart).Methods("DELETE")
	router.HandleFunc("/cart/{id:[0-9]+}/quantity", ha.UpdateCartQuantity).Methods("POST")
	router.HandleFunc("/cart/{id:[0-9]+}/increase", ha.IncreaseQuantity).Methods("POST")
	router.HandleFunc("/cart/{id:[0-9]+}/decrease", ha.DecreaseQuantity).Methods("POST")

	router.HandleFunc("/checkout", ha.Checkout).Methods("POST")
	router.HandleFunc("/admin/orders", ha.GetOrders).Methods("GET")
	router.HandleFunc("/admin/orders/{id}", ha.GetOrderById).Methods("GET")
	router.HandleFunc("/admin/dashboard", ha.GetDashboard).Methods("GET")

	router.HandleFunc("/gallery", ha.GetGallery).Methods("GET")
	router.HandleFunc("/gallery/{id:[0-9]+}/navigate", ha.NavigateGallery).Methods("GET")

	log.Printf("starting server...")
	http.ListenAndServe(":"+cfg.Server.Port, router)
}
