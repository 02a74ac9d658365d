package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dexplorer/orderscan/internal/api/shared/dto"
	"github.com/dexplorer/orderscan/internal/api/shared/executor"
	"github.com/dexplorer/orderscan/internal/domain"
)

const (
	defaultOrdersLimit = 20
	maxOrdersLimit     = 100
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetNetworks lists the supported networks
	// GET /api/v1/networks
	GetNetworks(c *gin.Context)

	// GetOrder resolves an order by UID across networks
	// GET /api/v1/orders/:uid?network=<network>
	GetOrder(c *gin.Context)

	// GetOrderTrades lists the fills of an order
	// GET /api/v1/orders/:uid/trades?network=<network>
	GetOrderTrades(c *gin.Context)

	// GetAccountOrders lists an account's orders, newest first
	// GET /api/v1/accounts/:address/orders?network=<network>&limit=<limit>&offset=<offset>
	GetAccountOrders(c *gin.Context)

	// GetTransaction resolves a settlement transaction across networks
	// GET /api/v1/txs/:hash?network=<network>
	GetTransaction(c *gin.Context)

	// ResetCache drops all cached token metadata (requires authentication)
	// POST /api/v1/admin/cache/reset
	ResetCache(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{executor: exec}
}

// networkParam reads and validates the network query parameter, defaulting
// to the primary network when absent
func networkParam(c *gin.Context) (domain.Network, bool) {
	raw := c.DefaultQuery("network", string(domain.NetworkMainnet))
	network := domain.Network(raw)
	if !domain.IsValidNetwork(network) {
		respondBadRequest(c, "Unsupported network", raw)
		return "", false
	}
	return network, true
}

func (h *handler) GetNetworks(c *gin.Context) {
	c.JSON(http.StatusOK, h.executor.GetNetworks(c.Request.Context()))
}

func (h *handler) GetOrder(c *gin.Context) {
	uid, err := domain.ParseOrderUID(c.Param("uid"))
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	network, ok := networkParam(c)
	if !ok {
		return
	}

	result, execErr := h.executor.GetOrder(c.Request.Context(), uid, network)
	if execErr != nil {
		respondAPIError(c, execErr)
		return
	}

	// Tri-state: payload when found here, 404 otherwise; a hit on another
	// network keeps its found_on hint in the 404 body for redirects
	if result.Order == nil {
		c.JSON(http.StatusNotFound, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) GetOrderTrades(c *gin.Context) {
	uid, err := domain.ParseOrderUID(c.Param("uid"))
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	network, ok := networkParam(c)
	if !ok {
		return
	}

	trades, execErr := h.executor.GetOrderTrades(c.Request.Context(), uid, network)
	if execErr != nil {
		respondAPIError(c, execErr)
		return
	}
	c.JSON(http.StatusOK, trades)
}

func (h *handler) GetAccountOrders(c *gin.Context) {
	owner, err := domain.ParseAddress(c.Param("address"))
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	network, ok := networkParam(c)
	if !ok {
		return
	}

	limit, err := parseBoundedInt(c.DefaultQuery("limit", strconv.Itoa(defaultOrdersLimit)), 1, maxOrdersLimit)
	if err != nil {
		respondBadRequest(c, "Invalid limit", err.Error())
		return
	}
	offset, err := parseBoundedInt(c.DefaultQuery("offset", "0"), 0, 1<<30)
	if err != nil {
		respondBadRequest(c, "Invalid offset", err.Error())
		return
	}

	orders, execErr := h.executor.GetAccountOrders(c.Request.Context(), owner, network, limit, offset)
	if execErr != nil {
		respondAPIError(c, execErr)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *handler) GetTransaction(c *gin.Context) {
	txHash, err := domain.ParseTxHash(c.Param("hash"))
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	network, ok := networkParam(c)
	if !ok {
		return
	}

	result, execErr := h.executor.GetTransaction(c.Request.Context(), txHash, network)
	if execErr != nil {
		respondAPIError(c, execErr)
		return
	}

	// Same tri-state contract as GetOrder: a hit elsewhere 404s with the
	// found_on hint, payload withheld
	if len(result.Orders) == 0 {
		c.JSON(http.StatusNotFound, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) ResetCache(c *gin.Context) {
	h.executor.ResetTokenCache(c.Request.Context())
	c.JSON(http.StatusOK, dto.CacheResetResponse{Reset: true, At: time.Now().UTC()})
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

func parseBoundedInt(raw string, min, max int) (int, error) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if value < min {
		value = min
	}
	if value > max {
		value = max
	}
	return value, nil
}
