package nodes

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Registry holds the nodes a host can look up and invoke. Input schemas are
// compiled once at registration.
type Registry struct {
	mu      sync.RWMutex
	nodes   map[string]Node
	schemas map[string]*jsonschema.Schema
}

func NewRegistry() *Registry {
	return &Registry{
		nodes:   map[string]Node{},
		schemas: map[string]*jsonschema.Schema{},
	}
}

func (r *Registry) Register(n Node) error {
	if n == nil {
		return fmt.Errorf("node is nil")
	}
	name := n.Name()
	if name == "" {
		return fmt.Errorf("node name is required")
	}

	schema, err := compileInputSchema(name, n.Inputs())
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.nodes[name]; exists {
		return fmt.Errorf("node %q already registered", name)
	}

	r.nodes[name] = n
	r.schemas[name] = schema
	return nil
}

func (r *Registry) Get(name string) (Node, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.nodes[name]
	return n, ok
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.nodes))
	for name := range r.nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke binds defaults for absent optional inputs, validates the bound
// inputs against the node's declaration, and calls the node.
func (r *Registry) Invoke(ctx context.Context, name string, in Values) (Values, error) {
	r.mu.RLock()
	n, ok := r.nodes[name]
	schema := r.schemas[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown node %q", name)
	}

	bound := applyDefaults(n.Inputs(), in)
	if err := validateInputs(n, schema, bound); err != nil {
		return nil, err
	}
	return n.Call(ctx, bound)
}

func applyDefaults(inputs []Slot, in Values) Values {
	bound := make(Values, len(in))
	for k, v := range in {
		bound[k] = v
	}
	for _, s := range inputs {
		if s.Default == nil {
			continue
		}
		if _, ok := bound[s.Name]; !ok {
			bound[s.Name] = s.Default
		}
	}
	return bound
}

var defaultRegistry = NewRegistry()

func init() {
	// The two nodes this module ships, registered at load time the way a host
	// discovers plugins.
	if err := Register(PadCalculatorNode{}); err != nil {
		panic(err)
	}
	if err := Register(GenerateNode{}); err != nil {
		panic(err)
	}
}

// Register adds a node to the default registry.
func Register(n Node) error {
	return defaultRegistry.Register(n)
}

// Get looks up a node in the default registry.
func Get(name string) (Node, bool) {
	return defaultRegistry.Get(name)
}

// Names lists the default registry's nodes.
func Names() []string {
	return defaultRegistry.Names()
}

// Invoke calls a node in the default registry.
func Invoke(ctx context.Context, name string, in Values) (Values, error) {
	return defaultRegistry.Invoke(ctx, name, in)
}
