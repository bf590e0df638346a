package query

import (
	"healthgrid/internal/ui/services/events"
)

// Pager tracks the current page of a grid
type Pager struct {
	state *State
	bus   events.EventBus
}

// NewPager creates a pager positioned on page 1
func NewPager(bus events.EventBus, pageSize int) *Pager {
	return &Pager{
		state: &State{Page: 1, PageSize: pageSize},
		bus:   bus,
	}
}

// Page returns the current 1-based page
func (p *Pager) Page() int {
	return p.state.Page
}

// PageSize returns the fixed page size
func (p *Pager) PageSize() int {
	return p.state.PageSize
}

// Set moves to page, clamped against total rows.
// Returns false when the page did not change.
func (p *Pager) Set(page, total int) bool {
	count := PageCount(total, p.state.PageSize)
	page = ClampPage(page, count)
	if page == p.state.Page {
		return false
	}

	old := p.state.Page
	p.state.Page = page

	p.bus.Publish(PageChangedEvent{OldPage: old, NewPage: page, PageCount: count})
	return true
}

// Next moves one page forward
func (p *Pager) Next(total int) bool {
	return p.Set(p.state.Page+1, total)
}

// Prev moves one page back
func (p *Pager) Prev(total int) bool {
	return p.Set(p.state.Page-1, total)
}

// Reset returns to page 1 without publishing
func (p *Pager) Reset() {
	p.state.Page = 1
}

// Clamp silently pulls the page back into range after the row count shrank
func (p *Pager) Clamp(total int) {
	p.state.Page = ClampPage(p.state.Page, PageCount(total, p.state.PageSize))
}
