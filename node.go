package nodes

import "context"

// Kind is the type of a node input or output slot.
type Kind int

const (
	KindImage Kind = iota + 1
	KindInt
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}

// Slot declares one typed input or output of a node. Default, when non-nil,
// is bound for an absent optional input before validation. Enum restricts
// string slots to a fixed set of values.
type Slot struct {
	Name     string
	Kind     Kind
	Required bool
	Default  any
	Enum     []string
}

// Values binds slot names to values. Image slots carry *ImageBuffer, int
// slots int, string slots string.
type Values map[string]any

// Node is one pure callable unit the host graph can wire. A node declares
// fixed input and output slots and exposes a single call; the host binds the
// declared inputs and consumes the declared outputs.
type Node interface {
	Name() string
	Inputs() []Slot
	Outputs() []Slot
	Call(ctx context.Context, in Values) (Values, error)
}

func stringInput(in Values, name string) string {
	v, _ := in[name].(string)
	return v
}

func imageInput(in Values, name string) *ImageBuffer {
	v, _ := in[name].(*ImageBuffer)
	return v
}
