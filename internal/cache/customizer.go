package cache

// Customizer mutates a cache manager of type T before it is published.
// A Customizer[Manager] applies to every manager type.
type Customizer[T Manager] interface {
	Customize(m T)
}

// CustomizerFunc adapts a function to Customizer.
type CustomizerFunc[T Manager] func(m T)

// Customize calls f(m).
func (f CustomizerFunc[T]) Customize(m T) {
	f(m)
}

// Customizers is an ordered list of customizers for any manager types.
type Customizers struct {
	customizers []interface{}
}

// NewCustomizers keeps customizers in the order given.
func NewCustomizers(customizers ...interface{}) *Customizers {
	cs := make([]interface{}, len(customizers))
	copy(cs, customizers)

	return &Customizers{customizers: cs}
}

// Len -.
func (c *Customizers) Len() int {
	if c == nil {
		return 0
	}

	return len(c.customizers)
}

// Customize applies, in registration order, every customizer that targets
// T or Manager, and returns m. Customizers for other types are skipped.
func Customize[T Manager](cs *Customizers, m T) T {
	if cs == nil {
		return m
	}

	for _, c := range cs.customizers {
		switch typed := c.(type) {
		case Customizer[T]:
			typed.Customize(m)
		case Customizer[Manager]:
			typed.Customize(m)
		}
	}

	return m
}
