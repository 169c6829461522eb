// Package ir is the host IR surface generated dialect code is built against:
// an in-memory store for operations, their operand/result/region/successor
// lists and their attribute sets. It verifies structure only; semantic
// verification, printing and serialization belong to a full IR library and
// are out of scope here.
package ir

// Context is the long-lived handle owning interned identifiers. Builders and
// generated wrappers hold it as a borrowed reference; its lifetime is the
// caller's responsibility. A Context is not safe for concurrent use.
type Context struct {
	interned map[string]string
}

// NewContext creates an empty context.
func NewContext() *Context {
	return &Context{interned: map[string]string{}}
}

func (c *Context) intern(s string) string {
	if v, ok := c.interned[s]; ok {
		return v
	}
	c.interned[s] = s
	return s
}

// Type returns the type with the given name, interned in this context.
func (c *Context) Type(name string) Type {
	return Type{name: c.intern(name)}
}
