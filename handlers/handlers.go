package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"runtime/debug"
	"strconv"

	"github.com/Aditya231356/Carpenter-Website/models"
	"github.com/Aditya231356/Carpenter-Website/services"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type Handler struct {
	ps  services.ProductService
	cs  services.CartService
	ors services.OrderService
	gs  services.GalleryService
}

type HandlerParams struct {
	PrdService  services.ProductService
	CrtService  services.CartService
	OrdService  services.OrderService
	GalyService services.GalleryService
}

func NewHandler(params HandlerParams) *Handler {
	return &Handler{
		ps:  params.PrdService,
		cs:  params.CrtService,
		ors: params.OrdService,
		gs:  params.GalyService,
	}
}

// products

func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	filter := models.ProductFilter{
		Search:     r.URL.Query().Get("search"),
		Category:   r.URL.Query().Get("category"),
		PriceRange: r.URL.Query().Get("price"),
	}
	prods, err := h.ps.ListProducts(filter)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, prods)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		log.Printf("Unmarshal err:%v", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	prod, err := h.ps.GetProductById(id)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, prod)
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var form models.ProductForm
	err := json.NewDecoder(r.Body).Decode(&form)
	if err != nil {
		log.Printf("Unmarshal err:%v", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	prod, err := h.ps.CreateProduct(form)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, prod)
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var form models.ProductForm
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		log.Printf("Unmarshal err:%v", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	err = json.NewDecoder(r.Body).Decode(&form)
	if err != nil {
		log.Printf("Unmarshal err:%v", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	form.Id = id
	prod, err := h.ps.UpdateProduct(form)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, prod)
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		log.Printf("Unmarshal err:%v", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	err = h.ps.DeleteProduct(id)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// cart

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cs.GetCart()
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, cart)
}

func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	req := models.CartRequest{}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		log.Printf("Unmarshal err:%v", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	prod, err := h.ps.GetProductById(req.ProductId)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	cart, err := h.cs.AddToCart(prod)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, cart)
}

func (h *Handler) DeleteFromCart(w http.ResponseWriter, r *http.Request) {
	id, ok := cartProductId(w, r)
	if !ok {
		return
	}
	cart, err := h.cs.RemoveFromCart(id)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, cart)
}

func (h *Handler) UpdateCartQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := cartProductId(w, r)
	if !ok {
		return
	}
	req := models.QuantityRequest{}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		log.Printf("Unmarshal err:%v", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	cart, err := h.cs.UpdateCartQuantity(id, req.Quantity)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, cart)
}

func (h *Handler) IncreaseQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := cartProductId(w, r)
	if !ok {
		return
	}
	cart, err := h.cs.IncreaseQuantity(id)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, cart)
}

func (h *Handler) DecreaseQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := cartProductId(w, r)
	if !ok {
		return
	}
	cart, err := h.cs.DecreaseQuantity(id)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, cart)
}

func (h *Handler) GetCartTotal(w http.ResponseWriter, r *http.Request) {
	totals, err := h.cs.CalculateCartTotal()
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, totals)
}

func cartProductId(w http.ResponseWriter, r *http.Request) (id int, ok bool) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		log.Printf("Unmarshal err:%v", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	ok = true
	return
}

// orders

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	form := models.CheckoutForm{}
	err := json.NewDecoder(r.Body).Decode(&form)
	if err != nil {
		log.Printf("Unmarshal err:%v", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	order, err := h.ors.PlaceOrder(form)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, order)
}

func (h *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.ors.ListOrders()
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, orders)
}

func (h *Handler) GetOrderById(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	order, err := h.ors.GetOrderById(vars["id"])
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, order)
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ors.DashboardStats()
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, stats)
}

// gallery

func (h *Handler) GetGallery(w http.ResponseWriter, r *http.Request) {
	items, err := h.gs.ListGallery(r.URL.Query().Get("category"))
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, items)
}

func (h *Handler) NavigateGallery(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		log.Printf("Unmarshal err:%v", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	direction := 1
	if r.URL.Query().Get("direction") == "prev" {
		direction = -1
	}
	item, err := h.gs.Navigate(id, direction, r.URL.Query().Get("category"))
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, item)
}

// middleware

func (h *Handler) ErrorHandleMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic occured: %v \n stacktrace: %v", rec, string(debug.Stack()))
				http.Error(w, "something went wrong, contact with service administration", http.StatusBadGateway)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := r.Header.Get("X-Request-Id")
		if requestId == "" {
			requestId = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestId)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, data any) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Printf("Marshal err:%v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(jsonData)
}

func WriteErrorResponse(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrServerError):
		http.Error(w, err.Error(), http.StatusInternalServerError)
	case errors.Is(err, models.ErrEmptyCart):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrBadRequest):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrNotFoundError):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrNotAllowed):
		http.Error(w, err.Error(), http.StatusNotAcceptable)
	default:
		http.Error(w, "server error", http.StatusInternalServerError)
	}
}
