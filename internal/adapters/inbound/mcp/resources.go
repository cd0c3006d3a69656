package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/zestyzomato/zesty/internal/domain"
)

// registerResources registers all Zesty MCP resources on the given server.
func registerResources(s *server.MCPServer, h *handlers) {
	// 1. zesty://menu - current menu
	s.AddResource(
		mcplib.NewResource(
			"zesty://menu",
			"Menu",
			mcplib.WithResourceDescription("Every dish on the menu"),
			mcplib.WithMIMEType("application/json"),
		),
		h.menuResource,
	)

	// 2. zesty://orders - all orders
	s.AddResource(
		mcplib.NewResource(
			"zesty://orders",
			"Orders",
			mcplib.WithResourceDescription("All orders in id order"),
			mcplib.WithMIMEType("application/json"),
		),
		h.ordersResource,
	)

	// 3. zesty://orders/{id} - single order (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"zesty://orders/{id}",
			"Order",
			mcplib.WithTemplateDescription("A single order with its current total"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		h.orderResource,
	)
}

func (h *handlers) menuResource(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	sess, err := h.session()
	if err != nil {
		return nil, fmt.Errorf("loading state failed: %w", err)
	}
	return jsonContents(request.Params.URI, sess.Service.Menu())
}

func (h *handlers) ordersResource(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	sess, err := h.session()
	if err != nil {
		return nil, fmt.Errorf("loading state failed: %w", err)
	}
	orders := slices.Collect(sess.Service.ReviewOrders(domain.AnyStatus()))
	if orders == nil {
		orders = []domain.Order{}
	}
	return jsonContents(request.Params.URI, orders)
}

// orderView is an order plus its total at current prices.
type orderView struct {
	domain.Order
	Total float64 `json:"total"`
}

func (h *handlers) orderResource(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	raw := templateArg(request.Params.Arguments["id"])
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("order id %q is not a number", raw)
	}

	sess, err := h.session()
	if err != nil {
		return nil, fmt.Errorf("loading state failed: %w", err)
	}
	order, err := sess.Service.Order(id)
	if err != nil {
		return nil, err
	}
	total, err := sess.Service.CalculateOrderTotal(id)
	if err != nil {
		return nil, err
	}
	return jsonContents(request.Params.URI, orderView{Order: order, Total: total})
}

// templateArg extracts a URI template variable, which the server may pass
// as a string or a single-element slice.
func templateArg(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	}
	return ""
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling resource: %w", err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
