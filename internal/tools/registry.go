// Package tools wraps the financial calculators as named, JSON-invocable
// tools for the LLM layer. The registry is the only path from a model's tool
// request to a calculator, so a specialist's allow-list fully constrains what
// it can execute.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/oakmund/finsight/internal/core"
)

// Tool is one invocable function with a name, a human/model readable
// description of its arguments, and a JSON-arguments handler.
type Tool struct {
	Name        string
	Description string
	Call        func(ctx context.Context, args json.RawMessage) (any, error)
}

// Registry holds the tool set, keyed by name, preserving registration order.
type Registry struct {
	tools map[string]Tool
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool. Registering a duplicate name is an error.
func (r *Registry) Register(t Tool) error {
	if t.Name == "" {
		return fmt.Errorf("tool name required")
	}
	if _, exists := r.tools[t.Name]; exists {
		return fmt.Errorf("tool %q already registered", t.Name)
	}
	r.tools[t.Name] = t
	r.order = append(r.order, t.Name)
	return nil
}

// Get returns a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Call invokes a registered tool with JSON arguments.
func (r *Registry) Call(ctx context.Context, name string, args json.RawMessage) (any, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, core.WrapError(core.ErrInvalidArgument, fmt.Errorf("unknown tool %q", name))
	}
	return t.Call(ctx, args)
}

// Describe renders a prompt fragment describing the named tools, used to
// advertise a specialist's tool set to the model.
func (r *Registry) Describe(names []string) string {
	var sb strings.Builder
	for _, name := range names {
		t, ok := r.tools[name]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("- %s: %s\n", t.Name, t.Description))
	}
	return sb.String()
}

// Names returns all registered tool names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
