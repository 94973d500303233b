// internal/solver/client.go
package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"go-hex-maze/internal/analyzer"
	"go-hex-maze/internal/config"
	"go-hex-maze/pkg/hexgrid"
)

// SolveRequest is the wire payload sent to the external solver: one
// simplified adjacency list per delegated component, in analyzer order,
// plus the maze dimensions.
type SolveRequest struct {
	LargeComponents []map[string][]string `json:"largeComponents"`
	Dimensions      hexgrid.Dimensions    `json:"dimensions"`
}

type errorResponse struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// Client exchanges one request/response pair with a solver endpoint per
// Solve call. Concurrent Solve calls are independent; each owns its own
// websocket connection.
type Client struct {
	url     string
	timeout time.Duration
	dialer  *websocket.Dialer
	logger  *zap.Logger
}

// NewClient creates a solve client for the given websocket endpoint.
func NewClient(url string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		url:     url,
		timeout: config.SolveTimeout,
		dialer:  websocket.DefaultDialer,
		logger:  logger,
	}
}

// WithTimeout overrides the response timeout. Mainly for tests.
func (c *Client) WithTimeout(d time.Duration) *Client {
	c.timeout = d
	return c
}

// Solve delegates the oversized components to the remote solver and
// reconciles the returned paths back onto them. Components below the
// threshold are never sent. The whole batch resolves or fails as one
// unit: any transport error, timeout, malformed payload or
// solver-signaled internal error fails the request, and no retry is
// attempted here.
func (c *Client) Solve(ctx context.Context, components []*analyzer.Component, dims hexgrid.Dimensions) error {
	large := analyzer.LargeComponents(components)
	if len(large) == 0 {
		c.logger.Debug("no components above threshold, nothing to delegate")
		return nil
	}

	request := SolveRequest{
		LargeComponents: make([]map[string][]string, 0, len(large)),
		Dimensions:      dims,
	}
	// Responses are matched by their first node, not by request order:
	// the solver's ordering guarantee is unspecified.
	owner := make(map[string]*analyzer.Component)
	for _, comp := range large {
		adjacency := comp.AdjacencyList()
		request.LargeComponents = append(request.LargeComponents, adjacency)
		for id := range adjacency {
			owner[id] = comp
		}
	}

	conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("dial solver %s: %w", c.url, err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(request); err != nil {
		return fmt.Errorf("send solve request: %w", err)
	}

	if err := conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
		return fmt.Errorf("arm solve timeout: %w", err)
	}
	_, message, err := conn.ReadMessage()
	if err != nil {
		if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
			return fmt.Errorf("solver did not answer within %s: %w", c.timeout, err)
		}
		return fmt.Errorf("read solver response: %w", err)
	}

	paths, err := parseResponse(message)
	if err != nil {
		return err
	}

	for _, path := range paths {
		if len(path) == 0 {
			c.logger.Warn("solver returned an empty path, dropping")
			continue
		}
		comp, ok := owner[path[0]]
		if !ok {
			c.logger.Warn("solved path starts at unknown node, dropping",
				zap.String("node", path[0]))
			continue
		}
		comp.Path = path
		comp.PathLength = len(path)
	}
	return nil
}

// parseResponse accepts exactly two shapes: a JSON array of string-array
// paths, or an internal_error envelope. Anything else fails the batch.
func parseResponse(message []byte) ([][]string, error) {
	trimmed := bytes.TrimSpace(message)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var paths [][]string
		if err := json.Unmarshal(trimmed, &paths); err != nil {
			return nil, fmt.Errorf("malformed solver response: %w", err)
		}
		return paths, nil
	}

	var fail errorResponse
	if err := json.Unmarshal(trimmed, &fail); err == nil && fail.Type == "internal_error" {
		return nil, fmt.Errorf("solver internal error: %s", fail.Error)
	}
	return nil, fmt.Errorf("solver response is not a path array: %.100s", trimmed)
}
