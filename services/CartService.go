package services

import (
	"fmt"

	"github.com/Aditya231356/Carpenter-Website/entities"
	"github.com/Aditya231356/Carpenter-Website/repository"

	"github.com/shopspring/decimal"
)

var taxRate = decimal.New(5, -2) // 5%
var deliveryCharge = decimal.NewFromInt(500)

type CartService struct {
	cr repository.CartRepository
	n  Notifier
}

func NewCartService(cartRepo repository.CartRepository, notifier Notifier) CartService {
	return CartService{
		cr: cartRepo,
		n:  notifier,
	}
}

// AddToCart increments the line for the product if it is already carted,
// otherwise appends a new quantity-1 line built from the display fields.
func (cs *CartService) AddToCart(product entities.Product) (cart []entities.CartLine, err error) {
	cart, err = cs.cr.GetCart()
	if err != nil {
		return
	}
	existing := -1
	for i, line := range cart {
		if line.Id == product.Id {
			existing = i
			break
		}
	}
	if existing != -1 {
		cart[existing].Quantity += 1
	} else {
		cart = append(cart, entities.CartLine{
			Id:          product.Id,
			Name:        product.Name,
			Description: product.Description,
			Quality:     product.Quality,
			Price:       product.Price,
			Image:       product.Image,
			Quantity:    1,
		})
	}
	err = cs.cr.SaveCart(cart)
	if err != nil {
		return
	}
	cs.n.Notify(fmt.Sprintf("%s added to cart!", product.Name))
	return
}

// RemoveFromCart drops the line with the matching id. Removing an id that is
// not carted is a no-op, not an error.
func (cs *CartService) RemoveFromCart(productId int) (cart []entities.CartLine, err error) {
	cart, err = cs.cr.GetCart()
	if err != nil {
		return
	}
	filtered := []entities.CartLine{}
	for _, line := range cart {
		if line.Id != productId {
			filtered = append(filtered, line)
		}
	}
	cart = filtered
	err = cs.cr.SaveCart(cart)
	if err != nil {
		return
	}
	cs.n.Notify("Item removed from cart")
	return
}

// UpdateCartQuantity sets the quantity when newQuantity > 0 and removes the
// line otherwise. Unknown ids are ignored.
func (cs *CartService) UpdateCartQuantity(productId int, newQuantity int) (cart []entities.CartLine, err error) {
	cart, err = cs.cr.GetCart()
	if err != nil {
		return
	}
	for i, line := range cart {
		if line.Id != productId {
			continue
		}
		if newQuantity > 0 {
			cart[i].Quantity = newQuantity
		} else {
			cart = append(cart[:i], cart[i+1:]...)
		}
		break
	}
	err = cs.cr.SaveCart(cart)
	return
}

func (cs *CartService) IncreaseQuantity(productId int) (cart []entities.CartLine, err error) {
	cart, err = cs.cr.GetCart()
	if err != nil {
		return
	}
	for i, line := range cart {
		if line.Id == productId {
			cart[i].Quantity += 1
			err = cs.cr.SaveCart(cart)
			if err != nil {
				return
			}
			cs.n.Notify("Quantity updated")
			return
		}
	}
	return
}

// DecreaseQuantity never drops a line below quantity 1; removal goes through
// RemoveFromCart explicitly.
func (cs *CartService) DecreaseQuantity(productId int) (cart []entities.CartLine, err error) {
	cart, err = cs.cr.GetCart()
	if err != nil {
		return
	}
	for i, line := range cart {
		if line.Id == productId {
			if line.Quantity <= 1 {
				return
			}
			cart[i].Quantity -= 1
			err = cs.cr.SaveCart(cart)
			if err != nil {
				return
			}
			cs.n.Notify("Quantity updated")
			return
		}
	}
	return
}

// CalculateCartTotal recomputes the breakdown from persisted cart state on
// every call: subtotal over price*quantity, 5% tax, flat 500 delivery.
func (cs *CartService) CalculateCartTotal() (totals entities.Totals, err error) {
	cart, err := cs.cr.GetCart()
	if err != nil {
		return
	}
	totals = totalsFor(cart)
	return
}

func (cs *CartService) GetCart() (resp entities.CartResponse, err error) {
	cart, err := cs.cr.GetCart()
	if err != nil {
		return
	}
	count := 0
	for _, line := range cart {
		count += line.Quantity
	}
	resp = entities.CartResponse{
		Items:  cart,
		Count:  count,
		Totals: totalsFor(cart),
	}
	return
}

func (cs *CartService) Clear() (err error) {
	err = cs.cr.ClearCart()
	return
}

func totalsFor(cart []entities.CartLine) entities.Totals {
	subtotal := decimal.Zero
	for _, line := range cart {
		lineTotal := decimal.NewFromInt(int64(line.Price)).Mul(decimal.NewFromInt(int64(line.Quantity)))
		subtotal = subtotal.Add(lineTotal)
	}
	tax := subtotal.Mul(taxRate)
	total := subtotal.Add(tax).Add(deliveryCharge)
	return entities.Totals{
		Subtotal: subtotal.InexactFloat64(),
		Tax:      tax.InexactFloat64(),
		Delivery: deliveryCharge.InexactFloat64(),
		Total:    total.InexactFloat64(),
	}
}
