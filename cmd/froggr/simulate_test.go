package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-froggr/internal/config"
	"github.com/vovakirdan/tui-froggr/internal/games/froggr"
)

func TestHopperPressesOnSchedule(t *testing.T) {
	h := newHopper(3, 4, 1)

	for i := 1; i <= 12; i++ {
		in := h.Input()
		pressed := false
		for _, b := range []froggr.Button{froggr.ButtonUp, froggr.ButtonDown, froggr.ButtonLeft, froggr.ButtonRight} {
			pressed = pressed || in.Pressed(b)
		}
		if want := i%4 == 0; pressed != want {
			t.Errorf("tick %d: pressed = %v, want %v", i, pressed, want)
		}
		in.Clear()
	}
}

func TestHopperDeterministic(t *testing.T) {
	a := newHopper(42, 1, 1)
	b := newHopper(42, 1, 1)
	for i := range 50 {
		if pa, pb := a.pick(), b.pick(); pa != pb {
			t.Fatalf("pick %d differs: %v vs %v", i, pa, pb)
		}
	}
}

func TestHopperDecisions(t *testing.T) {
	h := newHopper(1, 1, 2)

	if d := h.Decide(froggr.Outcome{Score: 10}); d != froggr.DecisionRestart {
		t.Errorf("first decision = %v, want restart", d)
	}
	if d := h.Decide(froggr.Outcome{Score: 20}); d != froggr.DecisionQuit {
		t.Errorf("second decision = %v, want quit", d)
	}
	if len(h.outcomes) != 2 {
		t.Errorf("recorded %d outcomes, want 2", len(h.outcomes))
	}
}

func TestHopperPlaysToTheEnd(t *testing.T) {
	cfg := config.DefaultFroggrConfig()
	cfg.Player.Lives = 1
	e := froggr.NewEngine(cfg, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	h := newHopper(7, 10, 1)
	d, err := froggr.Run(ctx, e, time.Microsecond, h)
	if errors.Is(err, context.DeadlineExceeded) {
		t.Skip("session did not end in time")
	}
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if d != froggr.DecisionQuit {
		t.Errorf("decision = %v, want quit", d)
	}
	if len(h.outcomes) != 1 {
		t.Fatalf("recorded %d outcomes, want 1", len(h.outcomes))
	}
	if o := h.outcomes[0]; !o.Won && o.Lives != 0 {
		t.Errorf("lost session should have no lives left, got %+v", o)
	}
}
