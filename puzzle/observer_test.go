package puzzle

import "testing"

func TestBusDispatchesRegisteredKindsOnly(t *testing.T) {
	bus := NewBus()
	var inits, changes, solves int
	bus.OnGridEvent(EventInit, func(GridEvent) { inits++ })
	bus.OnGridEvent(EventChange|EventSolved, func(GridEvent) { changes++; solves++ })

	g, err := BuildGrid(2, emptyGiven(4))
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	bus.fireInit(g)
	bus.fireChange(g)
	bus.fireSolved(g)

	if inits != 1 {
		t.Errorf("inits = %d, want 1", inits)
	}
	if changes != 1 {
		t.Errorf("changes (from the combined sink) = %d, want 1", changes)
	}
	if solves != 1 {
		t.Errorf("solves (from the combined sink) = %d, want 1", solves)
	}
}

func TestBusRegisteringSameFuncTwiceReturnsSameToken(t *testing.T) {
	bus := NewBus()
	sink := func(GridEvent) {}
	tok1 := bus.OnGridEvent(EventInit, sink)
	tok2 := bus.OnGridEvent(EventInit, sink)
	if tok1 != tok2 {
		t.Errorf("re-registering the same sink gave different tokens: %d vs %d", tok1, tok2)
	}
}

func TestBusOffGridEventRemovesOnlyThatToken(t *testing.T) {
	bus := NewBus()
	var aFired, bFired int
	tokA := bus.OnGridEvent(EventInit, func(GridEvent) { aFired++ })
	bus.OnGridEvent(EventInit, func(GridEvent) { bFired++ })

	bus.OffGridEvent(EventInit, tokA)

	g, _ := BuildGrid(2, emptyGiven(4))
	bus.fireInit(g)
	if aFired != 0 {
		t.Errorf("aFired = %d, want 0 (removed)", aFired)
	}
	if bFired != 1 {
		t.Errorf("bFired = %d, want 1 (still registered)", bFired)
	}
}

func TestBusOffGridEventZeroTokenClearsAllMatchingKinds(t *testing.T) {
	bus := NewBus()
	var fired int
	bus.OnGridEvent(EventInit, func(GridEvent) { fired++ })
	bus.OnGridEvent(EventInit|EventChange, func(GridEvent) { fired++ })

	bus.OffGridEvent(EventInit, 0)

	g, _ := BuildGrid(2, emptyGiven(4))
	bus.fireInit(g)
	if fired != 0 {
		t.Errorf("fired = %d, want 0 after clearing all EventInit sinks", fired)
	}
}

func TestBusMessageRegistrationAndRemoval(t *testing.T) {
	bus := NewBus()
	var got []string
	tok := bus.OnMessage(func(m Message) { got = append(got, m.Text) })
	bus.fireMessage(Message{Text: "first"})
	bus.OffMessage(tok)
	bus.fireMessage(Message{Text: "second"})
	if len(got) != 1 || got[0] != "first" {
		t.Errorf("got = %v, want exactly [\"first\"]", got)
	}
}

func TestBusClearAllRemovesEverything(t *testing.T) {
	bus := NewBus()
	var gridFired, msgFired int
	bus.OnGridEvent(EventInit, func(GridEvent) { gridFired++ })
	bus.OnMessage(func(Message) { msgFired++ })
	bus.ClearAll()

	g, _ := BuildGrid(2, emptyGiven(4))
	bus.fireInit(g)
	bus.fireMessage(Message{Text: "x"})
	if gridFired != 0 || msgFired != 0 {
		t.Errorf("gridFired=%d msgFired=%d, want 0, 0", gridFired, msgFired)
	}
}

func TestCandidatesCubeReflectsMask(t *testing.T) {
	g, err := BuildGrid(2, emptyGiven(4))
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	g.Cells[0].Mask = 0b0101 // candidates {1,3}
	cube := g.candidatesCube()
	row := cube[0][0]
	want := []int{1, 0, 3, 0}
	for i, v := range want {
		if row[i] != v {
			t.Errorf("cube[0][0][%d] = %d, want %d", i, row[i], v)
		}
	}
}
