package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ardyware/ledger/internal/domain/apperr"
	"github.com/ardyware/ledger/internal/domain/dto"
	"github.com/ardyware/ledger/internal/domain/models"
	"github.com/ardyware/ledger/internal/service"
)

// Handler provides HTTP handlers for the trade ledger endpoints.
//
// Responsibilities:
//   - Decode incoming JSON bodies and query parameters
//   - Delegate to the ledger service
//   - Map service error kinds to HTTP status codes
//   - Return structured JSON responses
type Handler struct {
	svc service.LedgerService
}

// NewHandler constructs a new Handler around the given ledger service.
func NewHandler(svc service.LedgerService) *Handler {
	return &Handler{svc: svc}
}

// statusFor maps a ledger error to its HTTP status code.
// Unclassified errors fall through to 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation), errors.Is(err, apperr.ErrTimestamp):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// SubmitTrade handles POST /api/v1/trade requests.
//
// SubmitTrade godoc
// @Summary      Submit a trade
// @Description  Records a buy or sell event for a named item, creating the item on first use
// @Tags         trades
// @Accept       json
// @Produce      json
// @Param        trade  body      dto.TradeRequest  true  "Trade to record"
// @Success      201    {object}  dto.TradeCreatedResponse  "Created"
// @Failure      400    {object}  dto.ErrorResponse         "Bad Request"
// @Failure      500    {object}  dto.ErrorResponse         "Internal Error"
// @Router       /api/v1/trade [post]
func (h *Handler) SubmitTrade(c *gin.Context) {
	var req dto.TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	id, err := h.svc.Record(c.Request.Context(), req.ItemName, req.Quantity, req.TotalPrice, req.IsPurchase, req.Timestamp)
	if err != nil {
		c.JSON(statusFor(err), dto.NewErrorResponse("failed to record trade", err))
		return
	}

	c.JSON(http.StatusCreated, dto.TradeCreatedResponse{ID: id})
}

// ListTrades handles GET /api/v1/trade requests.
//
// ListTrades godoc
// @Summary      List trades
// @Description  Returns all trades ordered by id, optionally restricted to an exact item name
// @Tags         trades
// @Produce      json
// @Param        item_name  query     string  false  "Exact item name filter"  example(Dragon bones)
// @Success      200        {array}   models.Trade       "Success"
// @Failure      500        {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/trade [get]
func (h *Handler) ListTrades(c *gin.Context) {
	trades, err := h.svc.List(c.Request.Context(), c.Query("item_name"))
	if err != nil {
		c.JSON(statusFor(err), dto.NewErrorResponse("failed to list trades", err))
		return
	}
	if trades == nil {
		// Keep the contract: an empty ledger is an empty array, not null.
		trades = []models.Trade{}
	}
	c.JSON(http.StatusOK, trades)
}

// DeleteTrade handles DELETE /api/v1/trade requests.
//
// DeleteTrade godoc
// @Summary      Delete a trade
// @Description  Removes the trade with the given identifier
// @Tags         trades
// @Produce      json
// @Param        id  query  integer  true  "Trade identifier"  example(17)
// @Success      204  "No Content"
// @Failure      400  {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404  {object}  dto.ErrorResponse  "Not Found"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/trade [delete]
func (h *Handler) DeleteTrade(c *gin.Context) {
	raw := c.Query("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("id must be an integer", err))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(statusFor(err), dto.NewErrorResponse("failed to delete trade", err))
		return
	}

	c.Status(http.StatusNoContent)
}

// GetProfitLoss handles GET /api/v1/profit_loss requests.
//
// GetProfitLoss godoc
// @Summary      Get profit/loss
// @Description  Returns the signed sum of all trade considerations (sales positive, purchases negative)
// @Tags         trades
// @Produce      json
// @Success      200  {object}  dto.ProfitLossResponse  "Success"
// @Failure      500  {object}  dto.ErrorResponse       "Internal Error"
// @Router       /api/v1/profit_loss [get]
func (h *Handler) GetProfitLoss(c *gin.Context) {
	total, err := h.svc.ProfitLoss(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), dto.NewErrorResponse("failed to compute profit/loss", err))
		return
	}
	c.JSON(http.StatusOK, dto.ProfitLossResponse{ProfitLoss: total})
}
