package puzzle

import (
	"reflect"
	"sync"
)

/*

Observer bus (spec 4.9)

Three event kinds (INIT, CHANGE, SOLVED, the same bitmask values the
original used) fan out to registered sinks in registration order.
Registration returns an integer token; unregistering by token or by
passing the zero token removes every sink of the given kind(s).
Re-registering an identical function value is a no-op — which, since
Go function values aren't comparable with ==, is detected via
reflect.Value.Pointer() the way the original compared C function
pointers.

The bus is single-threaded within one Solve call (spec 5): no
concurrent dispatch protection is needed because rules never
register new sinks during dispatch.  It is nonetheless guarded by a
mutex so that registration from another goroutine — e.g. a CLI
setting up sinks before calling Solve — can never race with a
dispatch in flight.
*/

// EventKind is a bitmask of grid-event kinds.
type EventKind int

const (
	EventInit   EventKind = 1
	EventChange EventKind = 2
	EventSolved EventKind = 4
)

// GridEvent is the payload delivered to grid-event sinks.
type GridEvent struct {
	GridID      uint64
	Kind        EventKind
	Candidates  [][][]int // [row][col][v-1] = v if present, else 0
	SolvedCount int
}

// Message carries a human-readable rule-trace string and a
// verbosity level.
type Message struct {
	Text      string
	Verbosity int
}

// GridEventSink receives grid events.
type GridEventSink func(GridEvent)

// MessageSink receives trace messages.
type MessageSink func(Message)

// Token identifies a registration so it can later be removed.  The
// zero Token is reserved as "remove all sinks of this kind."
type Token int

type gridReg struct {
	token Token
	kinds EventKind
	fn    GridEventSink
	fnPtr uintptr
}

type msgReg struct {
	token Token
	fn    MessageSink
	fnPtr uintptr
}

// Bus is an observer bus.  The zero value is an empty bus, the same
// as NewBus returns.
// DefaultBus is the process-wide bus Solve uses unless an explicit
// bus is supplied, matching spec 5's "the observer bus is global."
type Bus struct {
	mu       sync.Mutex
	nextTok  Token
	gridRegs []gridReg
	msgRegs  []msgReg
}

// NewBus returns an empty, independent observer bus — useful for
// tests that don't want to disturb DefaultBus.
func NewBus() *Bus {
	return &Bus{}
}

// DefaultBus is the bus used by the package-level Solve function.
var DefaultBus = NewBus()

func funcPointer(fn interface{}) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

// OnGridEvent registers sink for the given kinds bitmask and returns
// a token for later removal.  Registering the same function value
// for the same kinds again returns the existing token without
// adding a duplicate entry.
func (b *Bus) OnGridEvent(kinds EventKind, sink GridEventSink) Token {
	b.mu.Lock()
	defer b.mu.Unlock()
	ptr := funcPointer(sink)
	for _, r := range b.gridRegs {
		if r.kinds == kinds && r.fnPtr == ptr {
			return r.token
		}
	}
	b.nextTok++
	tok := b.nextTok
	b.gridRegs = append(b.gridRegs, gridReg{token: tok, kinds: kinds, fn: sink, fnPtr: ptr})
	return tok
}

// OffGridEvent removes the sink registered under token, or — if
// token is the zero Token — every grid-event sink registered for
// any of kinds.
func (b *Bus) OffGridEvent(kinds EventKind, token Token) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.gridRegs[:0]
	for _, r := range b.gridRegs {
		remove := false
		if token == 0 {
			remove = r.kinds&kinds != 0
		} else {
			remove = r.token == token
		}
		if !remove {
			out = append(out, r)
		}
	}
	b.gridRegs = out
}

// OnMessage registers a message sink and returns a token.
func (b *Bus) OnMessage(sink MessageSink) Token {
	b.mu.Lock()
	defer b.mu.Unlock()
	ptr := funcPointer(sink)
	for _, r := range b.msgRegs {
		if r.fnPtr == ptr {
			return r.token
		}
	}
	b.nextTok++
	tok := b.nextTok
	b.msgRegs = append(b.msgRegs, msgReg{token: tok, fn: sink, fnPtr: ptr})
	return tok
}

// OffMessage removes the message sink registered under token, or —
// if token is the zero Token — every message sink.
func (b *Bus) OffMessage(token Token) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if token == 0 {
		b.msgRegs = nil
		return
	}
	out := b.msgRegs[:0]
	for _, r := range b.msgRegs {
		if r.token != token {
			out = append(out, r)
		}
	}
	b.msgRegs = out
}

// ClearAll removes every grid-event and message sink.
func (b *Bus) ClearAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.gridRegs = nil
	b.msgRegs = nil
}

func (b *Bus) fireGridEvent(kind EventKind, ev GridEvent) {
	b.mu.Lock()
	regs := make([]gridReg, len(b.gridRegs))
	copy(regs, b.gridRegs)
	b.mu.Unlock()
	ev.Kind = kind
	for _, r := range regs {
		if r.kinds&kind != 0 {
			r.fn(ev)
		}
	}
}

func (b *Bus) fireMessage(m Message) {
	b.mu.Lock()
	regs := make([]msgReg, len(b.msgRegs))
	copy(regs, b.msgRegs)
	b.mu.Unlock()
	for _, r := range regs {
		r.fn(m)
	}
}

// candidatesCube builds the N*N*N payload cube spec 6 describes:
// cube[r][c][v-1] is v if v is still a candidate of cell (r,c), 0
// otherwise.
func (g *Grid) candidatesCube() [][][]int {
	n := g.N
	cube := make([][][]int, n)
	for r := 0; r < n; r++ {
		cube[r] = make([][]int, n)
		for c := 0; c < n; c++ {
			row := make([]int, n)
			mask := g.Cells[r*n+c].Mask
			for v := 1; v <= n; v++ {
				if mask&(1<<uint(v-1)) != 0 {
					row[v-1] = v
				}
			}
			cube[r][c] = row
		}
	}
	return cube
}

func (g *Grid) event() GridEvent {
	return GridEvent{GridID: g.ID, Candidates: g.candidatesCube(), SolvedCount: g.SolvedCount()}
}

func (b *Bus) fireInit(g *Grid) {
	b.fireGridEvent(EventInit, g.event())
}

func (b *Bus) fireChange(g *Grid) {
	b.fireGridEvent(EventChange, g.event())
}

func (b *Bus) fireSolved(g *Grid) {
	b.fireGridEvent(EventSolved, g.event())
}
