package dto

import (
	"vending-machine/internal/core/domain"

	"github.com/shopspring/decimal"
)

// SelectRequest is the request body for choosing a drink.
type SelectRequest struct {
	DrinkID string `json:"drink_id" binding:"required,drink_id"`
}

// InsertRequest is the request body for inserting money. Amount accepts a
// JSON number or a decimal string ("1.50").
type InsertRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

// RestockRequest is the request body for adding stock. Quantity is checked
// by the inventory so a non-positive value maps to VND_008.
type RestockRequest struct {
	DrinkID  string `json:"drink_id" binding:"required,drink_id"`
	Quantity *int   `json:"quantity" binding:"required"`
}

// LoginRequest is the request body for admin login.
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=64"`
	Password string `json:"password" binding:"required,max=128"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// DrinkResponse describes one catalog drink.
type DrinkResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity *int   `json:"quantity,omitempty"`
}

// MenuResponse is the customer menu.
type MenuResponse struct {
	Drinks  []DrinkResponse `json:"drinks"`
	Balance string          `json:"balance"`
}

// OutcomeResponse is the body of a successful machine operation.
type OutcomeResponse struct {
	Message string `json:"message"`
	Amount  string `json:"amount"`
}

// DispenseResponse adds the change and a replay marker to the outcome.
type DispenseResponse struct {
	Message  string `json:"message"`
	Change   string `json:"change"`
	Replayed bool   `json:"replayed"`
}

// BalanceResponse reports the balance against the current selection.
type BalanceResponse struct {
	Balance       string         `json:"balance"`
	SelectedDrink *DrinkResponse `json:"selected_drink"`
	Sufficient    bool           `json:"sufficient"`
	Shortfall     string         `json:"shortfall,omitempty"`
	Message       string         `json:"message"`
}

// StockItemResponse is one line of the stock report.
type StockItemResponse struct {
	DrinkID  string `json:"drink_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status"`
}

func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func NewDrinkResponse(d domain.Drink) DrinkResponse {
	return DrinkResponse{ID: d.ID(), Name: d.Name(), Price: Money(d.Price())}
}

func NewMenuResponse(m domain.Menu) MenuResponse {
	drinks := make([]DrinkResponse, 0, len(m.Items))
	for _, item := range m.Items {
		r := NewDrinkResponse(item.Drink)
		qty := item.Quantity
		r.Quantity = &qty
		drinks = append(drinks, r)
	}
	return MenuResponse{Drinks: drinks, Balance: Money(m.Balance)}
}

func NewOutcomeResponse(o domain.Outcome) OutcomeResponse {
	return OutcomeResponse{Message: o.Message, Amount: Money(o.Amount)}
}

func NewStockResponse(levels []domain.StockLevel) []StockItemResponse {
	out := make([]StockItemResponse, 0, len(levels))
	for _, l := range levels {
		out = append(out, StockItemResponse{
			DrinkID:  l.DrinkID,
			Name:     l.Name,
			Quantity: l.Quantity,
			Status:   l.Status(),
		})
	}
	return out
}
