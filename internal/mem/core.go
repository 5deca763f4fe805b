// Package mem implements lazily paged memory, used to back a Forth data space
// that may be declared far larger than the part a program actually touches.
package mem

import "fmt"

// PagedCore provides the page bookkeeping common to any paged memory model:
// sorted page base addresses and their sizes. It holds no page data itself.
type PagedCore struct {
	// PageSize specifies the length for newly allocated pages.
	PageSize uint

	// Limit specifies the first address past the end of memory; any access at
	// or beyond it results in a LimitError. Zero means no limit.
	Limit uint

	bases []uint
	sizes []uint
}

// LimitError indicates that a memory operation, like load or store, exceeded
// a limit.
type LimitError struct {
	Addr uint
	Op   string
}

func (lim LimitError) Error() string {
	return fmt.Sprintf("memory limit exceeded by %v @%v", lim.Op, lim.Addr)
}

// Pages returns the number of pages allocated so far.
func (m *PagedCore) Pages() int { return len(m.bases) }

func (m *PagedCore) findPage(addr uint) int {
	i, j := 0, len(m.bases)
	for i < j {
		h := int(uint(i+j)>>1) + 1
		if h < len(m.bases) && m.bases[h] <= addr {
			i = h
		} else {
			j = h - 1
		}
	}
	return i
}

func (m *PagedCore) allocPage(pageID int, addr uint) (base, size uint, isNew bool) {
	if pageID == len(m.bases) {
		base = addr / m.PageSize * m.PageSize
		size = m.PageSize
		if i := len(m.bases) - 1; i >= 0 {
			lastEnd := m.bases[i] + m.sizes[i]
			if base < lastEnd {
				size -= lastEnd - base
				base = lastEnd
			}
		}
		m.bases = append(m.bases, base)
		m.sizes = append(m.sizes, size)
		return base, size, true
	}

	base = m.bases[pageID]
	if addr < base {
		size = m.PageSize
		nextBase := base
		base = addr / m.PageSize * m.PageSize
		if gapSize := nextBase - base; size > gapSize {
			size = gapSize
		}
		m.bases = append(m.bases, 0)
		m.sizes = append(m.sizes, 0)
		copy(m.bases[pageID+1:], m.bases[pageID:])
		copy(m.sizes[pageID+1:], m.sizes[pageID:])
		m.bases[pageID] = base
		m.sizes[pageID] = size
		return base, size, true
	}

	return base, m.sizes[pageID], false
}

// checkLimit checks the half open range [addr, end).
func (m *PagedCore) checkLimit(addr, end uint, op string) error {
	if maxSize := m.Limit; maxSize != 0 && end > maxSize {
		if addr >= maxSize {
			return LimitError{addr, op}
		}
		return LimitError{end - 1, op}
	}
	return nil
}
