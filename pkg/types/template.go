package types

// TemplateNode is one directory entry of a folder template. Name and every
// entry of Files may carry generator tokens ({{type:params}}) and
// placeholders ({key|filter(args)}).
type TemplateNode struct {
	Name  string         `json:"name" yaml:"name"`
	Dirs  []TemplateNode `json:"dirs,omitempty" yaml:"dirs,omitempty"`
	Files []string       `json:"files,omitempty" yaml:"files,omitempty"`
}

// Template is the root of a folder template. Roots are walked in order.
type Template struct {
	Dirs []TemplateNode `json:"dirs" yaml:"dirs"`
}

// Walk visits every node depth-first, pre-order.
func (t *Template) Walk(fn func(node *TemplateNode)) {
	for i := range t.Dirs {
		t.Dirs[i].walk(fn)
	}
}

func (n *TemplateNode) walk(fn func(node *TemplateNode)) {
	fn(n)
	for i := range n.Dirs {
		n.Dirs[i].walk(fn)
	}
}

// Context maps variable names to scalar values (string, number or bool).
type Context map[string]interface{}

// Keys returns the context keys.
func (c Context) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}
