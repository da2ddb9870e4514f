package handler

import (
	"vending-machine/internal/adapter/http/dto"
	"vending-machine/internal/core/domain"
	"vending-machine/internal/core/ports"
	"vending-machine/pkg/apperror"
	"vending-machine/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	HeaderIdempotencyKey     = "Idempotency-Key"
	HeaderIdempotentReplayed = "Idempotent-Replayed"
)

// MachineHandler serves the customer-facing machine endpoints.
type MachineHandler struct {
	machineSvc  ports.MachineService
	dispenseSvc ports.DispenseService
}

// NewMachineHandler creates a new MachineHandler.
func NewMachineHandler(machineSvc ports.MachineService, dispenseSvc ports.DispenseService) *MachineHandler {
	return &MachineHandler{machineSvc: machineSvc, dispenseSvc: dispenseSvc}
}

// Menu handles GET /api/v1/machine/menu.
func (h *MachineHandler) Menu(c *gin.Context) {
	response.OK(c, dto.NewMenuResponse(h.machineSvc.Menu(c.Request.Context())))
}

// Select handles POST /api/v1/machine/select.
func (h *MachineHandler) Select(c *gin.Context) {
	var req dto.SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	outcome := h.machineSvc.SelectDrink(c.Request.Context(), dto.NormalizeDrinkID(req.DrinkID))
	writeOutcome(c, outcome)
}

// Insert handles POST /api/v1/machine/insert.
func (h *MachineHandler) Insert(c *gin.Context) {
	var req dto.InsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	outcome := h.machineSvc.InsertMoney(c.Request.Context(), *req.Amount)
	writeOutcome(c, outcome)
}

// Balance handles GET /api/v1/machine/balance. It always answers 200; an
// unmet price is reported through Sufficient and Shortfall.
func (h *MachineHandler) Balance(c *gin.Context) {
	ctx := c.Request.Context()

	outcome := h.machineSvc.CheckBalance(ctx)
	resp := dto.BalanceResponse{
		Balance:    dto.Money(h.machineSvc.Balance(ctx)),
		Sufficient: outcome.OK(),
		Message:    outcome.Message,
	}
	if drink, ok := h.machineSvc.Selection(ctx); ok {
		d := dto.NewDrinkResponse(drink)
		resp.SelectedDrink = &d
	}
	if outcome.Kind == domain.OutcomeInsufficientBalance {
		resp.Shortfall = dto.Money(outcome.Amount)
	}

	response.OK(c, resp)
}

// Dispense handles POST /api/v1/machine/dispense. A repeated Idempotency-Key
// returns the stored result of the first successful dispense.
func (h *MachineHandler) Dispense(c *gin.Context) {
	key := c.GetHeader(HeaderIdempotencyKey)
	if len(key) > 128 {
		response.Error(c, apperror.Validation("Idempotency-Key must be at most 128 characters"))
		return
	}

	outcome, replayed := h.dispenseSvc.Dispense(c.Request.Context(), key)
	if !outcome.OK() {
		response.Error(c, outcome.Err())
		return
	}

	if replayed {
		c.Header(HeaderIdempotentReplayed, "true")
	}
	response.OK(c, dto.DispenseResponse{
		Message:  outcome.Message,
		Change:   dto.Money(outcome.Amount),
		Replayed: replayed,
	})
}

// Return handles POST /api/v1/machine/return.
func (h *MachineHandler) Return(c *gin.Context) {
	writeOutcome(c, h.machineSvc.ReturnChange(c.Request.Context()))
}

func writeOutcome(c *gin.Context, outcome domain.Outcome) {
	if !outcome.OK() {
		response.Error(c, outcome.Err())
		return
	}
	response.OK(c, dto.NewOutcomeResponse(outcome))
}
