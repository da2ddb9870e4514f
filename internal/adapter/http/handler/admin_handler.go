package handler

import (
	"vending-machine/internal/adapter/http/dto"
	"vending-machine/internal/core/domain"
	"vending-machine/internal/core/ports"
	"vending-machine/pkg/apperror"
	"vending-machine/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves operator login and stock maintenance.
type AdminHandler struct {
	authSvc    ports.AuthService
	machineSvc ports.MachineService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(authSvc ports.AuthService, machineSvc ports.MachineService) *AdminHandler {
	return &AdminHandler{authSvc: authSvc, machineSvc: machineSvc}
}

// Login handles POST /api/v1/admin/login.
// Credentials are not sanitized: escaping would change the password.
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	token, expiry, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.LoginResponse{
		Token:  token,
		Expiry: expiry.Unix(),
	})
}

// Stock handles GET /api/v1/admin/stock.
func (h *AdminHandler) Stock(c *gin.Context) {
	response.OK(c, dto.NewStockResponse(h.machineSvc.StockStatus(c.Request.Context())))
}

// Restock handles POST /api/v1/admin/restock.
func (h *AdminHandler) Restock(c *gin.Context) {
	var req dto.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	ctx := c.Request.Context()
	drinkID := dto.NormalizeDrinkID(req.DrinkID)
	if err := h.machineSvc.Restock(ctx, drinkID, *req.Quantity); err != nil {
		response.Error(c, err)
		return
	}

	for _, level := range h.machineSvc.StockStatus(ctx) {
		if level.DrinkID == drinkID {
			response.OK(c, dto.NewStockResponse([]domain.StockLevel{level})[0])
			return
		}
	}
	response.Error(c, apperror.ErrNotFound("Drink '"+drinkID+"'"))
}

// Reset handles POST /api/v1/admin/reset. Any balance is voided, not refunded.
func (h *AdminHandler) Reset(c *gin.Context) {
	voided := h.machineSvc.ResetTransaction(c.Request.Context())
	response.OK(c, dto.OutcomeResponse{
		Message: "Transaction reset",
		Amount:  dto.Money(voided),
	})
}
