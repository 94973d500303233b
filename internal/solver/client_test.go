// internal/solver/client_test.go
package solver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"go-hex-maze/internal/analyzer"
	"go-hex-maze/internal/maze"
	"go-hex-maze/pkg/hexgrid"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// testComponents builds a 2x10 maze with one component of size 10
// (delegable) and one of size 5 (kept local), plus isolated cells.
func testComponents(t *testing.T) ([]*analyzer.Component, hexgrid.Dimensions) {
	t.Helper()
	grid, err := hexgrid.NewPresetGrid(2, 10)
	require.NoError(t, err)

	edges := maze.NewEdgeSet()
	for id := 1; id < 10; id++ {
		edges.Add(id, id+1)
	}
	for id := 11; id < 15; id++ {
		edges.Add(id, id+1)
	}
	pm := maze.AssemblePathMap(grid, edges)
	return analyzer.Analyze(pm, nil), pm.Dimensions
}

func componentBySize(t *testing.T, components []*analyzer.Component, size int) *analyzer.Component {
	t.Helper()
	for _, comp := range components {
		if comp.Size == size {
			return comp
		}
	}
	t.Fatalf("no component of size %d", size)
	return nil
}

// solverStub runs a websocket endpoint whose handler receives the parsed
// request and the raw connection. The done channel closes when the
// handler returns, so tests can wait out hijacked connections before
// goleak runs.
func solverStub(t *testing.T, handler func(conn *websocket.Conn, req SolveRequest)) (url string, done chan struct{}) {
	t.Helper()
	upgrader := websocket.Upgrader{}
	done = make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer close(done)
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		var req SolveRequest
		require.NoError(t, conn.ReadJSON(&req))
		handler(conn, req)
	}))
	t.Cleanup(srv.Close)

	return "ws" + strings.TrimPrefix(srv.URL, "http"), done
}

func TestSolveMatchesPathsToComponents(t *testing.T) {
	components, dims := testComponents(t)

	url, done := solverStub(t, func(conn *websocket.Conn, req SolveRequest) {
		assert.Len(t, req.LargeComponents, 1, "only the size-10 component is delegated")
		assert.Equal(t, dims, req.Dimensions)
		for _, adjacency := range req.LargeComponents {
			_, hasSmall := adjacency["11"]
			assert.False(t, hasSmall, "small component leaked into the payload")
		}
		require.NoError(t, conn.WriteJSON([][]string{{"3", "7", "10"}}))
	})

	client := NewClient(url, nil)
	require.NoError(t, client.Solve(context.Background(), components, dims))
	<-done

	solved := componentBySize(t, components, 10)
	assert.Equal(t, []string{"3", "7", "10"}, solved.Path)
	assert.Equal(t, 3, solved.PathLength)

	small := componentBySize(t, components, 5)
	assert.Nil(t, small.Path)
	assert.Zero(t, small.PathLength)
}

func TestSolveNothingToDelegate(t *testing.T) {
	grid, err := hexgrid.NewPresetGrid(1, 5)
	require.NoError(t, err)
	pm := maze.AssemblePathMap(grid, maze.NewEdgeSet())
	components := analyzer.Analyze(pm, nil)

	// The endpoint is unreachable on purpose: no dial may happen.
	client := NewClient("ws://127.0.0.1:1", nil).WithTimeout(time.Second)
	assert.NoError(t, client.Solve(context.Background(), components, pm.Dimensions))
}

func TestSolveUnknownPathDropped(t *testing.T) {
	components, dims := testComponents(t)

	url, done := solverStub(t, func(conn *websocket.Conn, req SolveRequest) {
		require.NoError(t, conn.WriteJSON([][]string{{"999", "1000"}, {}}))
	})

	client := NewClient(url, nil)
	require.NoError(t, client.Solve(context.Background(), components, dims))
	<-done

	for _, comp := range components {
		assert.Nil(t, comp.Path)
	}
}

func TestSolveServerSignaledError(t *testing.T) {
	components, dims := testComponents(t)

	url, done := solverStub(t, func(conn *websocket.Conn, req SolveRequest) {
		require.NoError(t, conn.WriteJSON(map[string]string{
			"type":  "internal_error",
			"error": "solver exploded",
		}))
	})

	client := NewClient(url, nil)
	err := client.Solve(context.Background(), components, dims)
	<-done
	require.Error(t, err)
	assert.Contains(t, err.Error(), "internal error")
}

func TestSolveMalformedResponses(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"not json", "certainly not json"},
		{"object without error tag", `{"paths": []}`},
		{"array of numbers", `[[3, 7, 10]]`},
		{"bare string", `"hello"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			components, dims := testComponents(t)
			url, done := solverStub(t, func(conn *websocket.Conn, req SolveRequest) {
				require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(tc.payload)))
			})

			client := NewClient(url, nil)
			err := client.Solve(context.Background(), components, dims)
			<-done
			assert.Error(t, err)
			for _, comp := range components {
				assert.Nil(t, comp.Path, "a failed batch must not attach paths")
			}
		})
	}
}

func TestSolveUncleanClose(t *testing.T) {
	components, dims := testComponents(t)

	url, done := solverStub(t, func(conn *websocket.Conn, req SolveRequest) {
		// Drop the connection without answering.
		conn.Close()
	})

	client := NewClient(url, nil)
	err := client.Solve(context.Background(), components, dims)
	<-done
	assert.Error(t, err)
}

func TestSolveTimeout(t *testing.T) {
	components, dims := testComponents(t)

	release := make(chan struct{})
	url, done := solverStub(t, func(conn *websocket.Conn, req SolveRequest) {
		<-release // never answer in time
	})

	client := NewClient(url, nil).WithTimeout(50 * time.Millisecond)
	err := client.Solve(context.Background(), components, dims)
	close(release)
	<-done

	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not answer within")
	for _, comp := range components {
		assert.Nil(t, comp.Path, "no component receives a path on timeout")
	}
}

func TestParseResponse(t *testing.T) {
	t.Run("valid paths", func(t *testing.T) {
		paths, err := parseResponse([]byte(` [["1","2"],["8","9","10"]] `))
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"1", "2"}, {"8", "9", "10"}}, paths)
	})

	t.Run("empty array", func(t *testing.T) {
		paths, err := parseResponse([]byte(`[]`))
		require.NoError(t, err)
		assert.Empty(t, paths)
	})

	t.Run("internal error envelope", func(t *testing.T) {
		_, err := parseResponse([]byte(`{"type":"internal_error","error":"boom"}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("null is not an array", func(t *testing.T) {
		_, err := parseResponse([]byte(`null`))
		assert.Error(t, err)
	})
}
