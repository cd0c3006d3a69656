package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/zestyzomato/zesty/internal/adapters/outbound/history"
	"github.com/zestyzomato/zesty/internal/adapters/outbound/storage"
	"github.com/zestyzomato/zesty/internal/application"
	"github.com/zestyzomato/zesty/internal/domain"
)

// handlers carries what every tool needs to open a session.
type handlers struct {
	cfg domain.Config
	log zerolog.Logger
}

// registerTools registers all Zesty MCP tools on the given server.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcplib.NewTool("zesty_add_dish",
			mcplib.WithDescription("Add a dish to the menu, replacing any dish with the same id"),
			mcplib.WithString("dish_id", mcplib.Required(), mcplib.Description("Unique dish identifier")),
			mcplib.WithString("name", mcplib.Required(), mcplib.Description("Display name")),
			mcplib.WithNumber("price", mcplib.Required(), mcplib.Description("Non-negative price")),
			mcplib.WithBoolean("available", mcplib.Description("Whether the dish can be ordered (default true)")),
		),
		h.addDish,
	)

	s.AddTool(
		mcplib.NewTool("zesty_remove_dish",
			mcplib.WithDescription("Remove a dish from the menu and strip it from every order"),
			mcplib.WithString("dish_id", mcplib.Required(), mcplib.Description("Dish to remove")),
		),
		h.removeDish,
	)

	s.AddTool(
		mcplib.NewTool("zesty_set_availability",
			mcplib.WithDescription("Set whether a dish can be ordered"),
			mcplib.WithString("dish_id", mcplib.Required(), mcplib.Description("Dish to update")),
			mcplib.WithBoolean("available", mcplib.Required(), mcplib.Description("New availability")),
		),
		h.setAvailability,
	)

	s.AddTool(
		mcplib.NewTool("zesty_list_menu",
			mcplib.WithDescription("Returns every dish on the menu as JSON"),
		),
		h.listMenu,
	)

	s.AddTool(
		mcplib.NewTool("zesty_take_order",
			mcplib.WithDescription("Create an order. Fails without creating anything if a dish is missing or unavailable."),
			mcplib.WithString("customer_name", mcplib.Required(), mcplib.Description("Customer name")),
			mcplib.WithString("dish_ids", mcplib.Required(), mcplib.Description("Comma-separated dish ids; repeats allowed")),
		),
		h.takeOrder,
	)

	s.AddTool(
		mcplib.NewTool("zesty_update_order_status",
			mcplib.WithDescription("Overwrite an order's status label"),
			mcplib.WithNumber("order_id", mcplib.Required(), mcplib.Description("Order id")),
			mcplib.WithString("status", mcplib.Required(), mcplib.Description("New status label")),
		),
		h.updateOrderStatus,
	)

	s.AddTool(
		mcplib.NewTool("zesty_review_orders",
			mcplib.WithDescription("List orders in id order, optionally only those with an exact status"),
			mcplib.WithString("status", mcplib.Description("Status filter; omit for all orders")),
		),
		h.reviewOrders,
	)

	s.AddTool(
		mcplib.NewTool("zesty_order_total",
			mcplib.WithDescription("Compute an order's total from current menu prices"),
			mcplib.WithNumber("order_id", mcplib.Required(), mcplib.Description("Order id")),
		),
		h.orderTotal,
	)
}

// session opens the configured store and loads the ordering state.
func (h *handlers) session() (*application.Session, error) {
	store, err := storage.Open(h.cfg)
	if err != nil {
		return nil, err
	}
	return application.OpenSession(store,
		application.WithLogger(h.log),
		application.WithStrictStatuses(h.cfg.StrictStatuses),
	)
}

func (h *handlers) addDish(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	id, err := request.RequireString("dish_id")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	name, err := request.RequireString("name")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	price, ok := request.GetArguments()["price"].(float64)
	if !ok {
		return errorResult("price must be a number"), nil
	}
	available := true
	if v, ok := request.GetArguments()["available"].(bool); ok {
		available = v
	}

	sess, err := h.session()
	if err != nil {
		return errorResult(fmt.Sprintf("loading state failed: %v", err)), nil
	}
	if err := sess.Service.AddDish(id, name, price, available); err != nil {
		return errorResult(err.Error()), nil
	}
	if err := sess.Commit(); err != nil {
		return errorResult(fmt.Sprintf("saving state failed: %v", err)), nil
	}
	return textResult(fmt.Sprintf("dish %s saved", id)), nil
}

func (h *handlers) removeDish(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	id, err := request.RequireString("dish_id")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	sess, err := h.session()
	if err != nil {
		return errorResult(fmt.Sprintf("loading state failed: %v", err)), nil
	}
	if !sess.Service.RemoveDish(id) {
		return textResult(fmt.Sprintf("dish %s is not on the menu", id)), nil
	}
	if err := sess.Commit(); err != nil {
		return errorResult(fmt.Sprintf("saving state failed: %v", err)), nil
	}
	return textResult(fmt.Sprintf("dish %s removed", id)), nil
}

func (h *handlers) setAvailability(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	id, err := request.RequireString("dish_id")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	available, ok := request.GetArguments()["available"].(bool)
	if !ok {
		return errorResult("available must be a boolean"), nil
	}

	sess, err := h.session()
	if err != nil {
		return errorResult(fmt.Sprintf("loading state failed: %v", err)), nil
	}
	if !sess.Service.UpdateAvailability(id, available) {
		return textResult(fmt.Sprintf("dish %s is not on the menu", id)), nil
	}
	if err := sess.Commit(); err != nil {
		return errorResult(fmt.Sprintf("saving state failed: %v", err)), nil
	}
	return textResult(fmt.Sprintf("dish %s available=%t", id, available)), nil
}

func (h *handlers) listMenu(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sess, err := h.session()
	if err != nil {
		return errorResult(fmt.Sprintf("loading state failed: %v", err)), nil
	}
	return jsonResult(sess.Service.Menu())
}

func (h *handlers) takeOrder(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	customer, err := request.RequireString("customer_name")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	raw, err := request.RequireString("dish_ids")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	ids := domain.ParseDishIDs(raw)

	sess, err := h.session()
	if err != nil {
		return errorResult(fmt.Sprintf("loading state failed: %v", err)), nil
	}
	order, err := sess.Service.TakeOrder(customer, ids)
	if err != nil {
		var due *domain.DishUnavailableError
		if errors.As(err, &due) {
			return errorResult(fmt.Sprintf("order rejected: dish %s: %v", due.DishID, due.Reason)), nil
		}
		return errorResult(err.Error()), nil
	}
	if err := sess.Commit(); err != nil {
		return errorResult(fmt.Sprintf("saving state failed: %v", err)), nil
	}
	return jsonResult(order)
}

func (h *handlers) updateOrderStatus(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	id, err := orderIDArg(request)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	status, err := request.RequireString("status")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	sess, err := h.session()
	if err != nil {
		return errorResult(fmt.Sprintf("loading state failed: %v", err)), nil
	}
	prev, err := sess.Service.Order(id)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	if err := sess.Service.UpdateOrderStatus(id, status); err != nil {
		return errorResult(err.Error()), nil
	}
	if err := sess.Commit(); err != nil {
		return errorResult(fmt.Sprintf("saving state failed: %v", err)), nil
	}
	if err := history.New().Save(h.cfg.DataFile, domain.StatusEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		OrderID:   id,
		From:      prev.Status,
		To:        status,
	}); err != nil {
		h.log.Warn().Err(err).Int("order_id", id).Msg("recording status history failed")
	}
	return textResult(fmt.Sprintf("order %d is now %s", id, status)), nil
}

func (h *handlers) reviewOrders(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	filter := domain.AnyStatus()
	if status, ok := request.GetArguments()["status"].(string); ok && status != "" {
		filter = domain.StatusIs(status)
	}

	sess, err := h.session()
	if err != nil {
		return errorResult(fmt.Sprintf("loading state failed: %v", err)), nil
	}
	orders := slices.Collect(sess.Service.ReviewOrders(filter))
	if orders == nil {
		orders = []domain.Order{}
	}
	return jsonResult(orders)
}

// orderTotal is the payload of zesty_order_total.
type orderTotal struct {
	OrderID int     `json:"order_id"`
	Total   float64 `json:"total"`
}

func (h *handlers) orderTotal(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	id, err := orderIDArg(request)
	if err != nil {
		return errorResult(err.Error()), nil
	}

	sess, err := h.session()
	if err != nil {
		return errorResult(fmt.Sprintf("loading state failed: %v", err)), nil
	}
	total, err := sess.Service.CalculateOrderTotal(id)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return jsonResult(orderTotal{OrderID: id, Total: total})
}

func orderIDArg(request mcplib.CallToolRequest) (int, error) {
	v, ok := request.GetArguments()["order_id"].(float64)
	if !ok || v != math.Trunc(v) {
		return 0, fmt.Errorf("order_id must be an integer")
	}
	// float64(math.MaxInt) rounds up to 2^63, which int cannot hold.
	if v < 1 || v >= float64(math.MaxInt) {
		return 0, fmt.Errorf("order_id must be a positive integer")
	}
	return int(v), nil
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
