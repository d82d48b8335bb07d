package blockchain

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

type rpcHandler func(params []json.RawMessage) any

// fakeNode answers JSON-RPC calls from a method table and records every
// request it serves.
type fakeNode struct {
	mu       sync.Mutex
	handlers map[string]rpcHandler
	methods  []string
	proxied  int
}

func newFakeNode(t *testing.T, handlers map[string]rpcHandler) (*fakeNode, *httptest.Server) {
	t.Helper()
	node := &fakeNode{handlers: handlers}
	srv := httptest.NewServer(node)
	t.Cleanup(srv.Close)
	return node, srv
}

func (n *fakeNode) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	n.mu.Lock()
	n.methods = append(n.methods, req.Method)
	if r.URL.IsAbs() {
		n.proxied++
	}
	handler, ok := n.handlers[req.Method]
	n.mu.Unlock()

	resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
	if ok {
		resp["result"] = handler(req.Params)
	} else {
		resp["error"] = map[string]any{"code": -32601, "message": "method not found: " + req.Method}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (n *fakeNode) Methods() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.methods...)
}

func (n *fakeNode) Proxied() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.proxied
}

func constant(v any) rpcHandler {
	return func([]json.RawMessage) any { return v }
}
