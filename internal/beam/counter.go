package beam

import "sync"

// Counter numbers the elements of one model. Create one per problem and call
// Clear to start a new problem from scratch.
type Counter struct {
	mu sync.Mutex
	n  int
}

// New builds an element like the package-level New and assigns it the next
// number, starting at 1. Failed constructions are not counted.
func (c *Counter) New(n1, n2 Node, opts ...Option) (*Element, error) {
	e, err := New(n1, n2, opts...)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
	e.id = c.n
	return e, nil
}

// Count returns the number of elements created since the last Clear
func (c *Counter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

// Clear resets the count
func (c *Counter) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n = 0
}
