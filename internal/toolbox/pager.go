package toolbox

import "sync"

// Pager is a cursor over n items that wraps at both ends.
type Pager struct {
	mu    sync.Mutex
	index int
	n     int
}

// Reset sets the item count and moves to the first item.
func (p *Pager) Reset(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.n = n
	p.index = 0
}

// Next advances to (i+1) mod n.
func (p *Pager) Next() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.n > 0 {
		p.index = (p.index + 1) % p.n
	}
	return p.index
}

// Prev moves to (i-1+n) mod n.
func (p *Pager) Prev() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.n > 0 {
		p.index = (p.index - 1 + p.n) % p.n
	}
	return p.index
}

func (p *Pager) Index() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index
}

func (p *Pager) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.n
}
