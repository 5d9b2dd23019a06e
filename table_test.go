package main

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// collectSink はテスト用に行を溜める
type collectSink struct {
	began bool
	ended bool
	cores []Core
	rows  []Row
}

func (c *collectSink) Begin(w Whip, cores []Core) error {
	c.began = true
	c.cores = cores
	return nil
}

func (c *collectSink) Row(r Row) error {
	c.rows = append(c.rows, r)
	return nil
}

func (c *collectSink) End() error {
	c.ended = true
	return nil
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"single", "multi", "inspect"} {
		if m, err := ParseMode(s); err != nil || string(m) != s {
			t.Errorf("ParseMode(%q) = %q, %v", s, m, err)
		}
	}
	if m, err := ParseMode(""); err != nil || m != ModeSingle {
		t.Errorf("ParseMode(\"\") = %q, %v", m, err)
	}
	if _, err := ParseMode("both"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ParseMode(both) err = %v", err)
	}
}

func TestNewGeneratorUnknownCore(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Core = 51
	if _, err := NewGenerator(cfg, nil); !errors.Is(err, ErrUnknownCore) {
		t.Fatalf("err = %v, want ErrUnknownCore", err)
	}

	cfg = DefaultConfig()
	cfg.Mode = string(ModeMulti)
	cfg.ReferenceCore = 7
	if _, err := NewGenerator(cfg, nil); !errors.Is(err, ErrUnknownCore) {
		t.Fatalf("err = %v, want ErrUnknownCore", err)
	}
}

func TestGeneratorSingleCore(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = string(ModeSingle)
	cfg.Core = 50
	gen, err := NewGenerator(cfg, nil)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	sink := &collectSink{}
	if err := gen.Run(context.Background(), newAX1Solver(t), ax1, sink); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !sink.began || !sink.ended {
		t.Fatalf("began=%v ended=%v", sink.began, sink.ended)
	}

	// 1 .. 150（151 は含まない）
	if len(sink.rows) != 150 {
		t.Fatalf("rows = %d, want 150", len(sink.rows))
	}
	for i, r := range sink.rows {
		if r.Turns != i+1 {
			t.Fatalf("rows[%d].Turns = %d", i, r.Turns)
		}
		if len(r.Cells) != 1 || r.Cells[0].Core != 50 {
			t.Fatalf("rows[%d].Cells = %+v", i, r.Cells)
		}
	}

	r12 := sink.rows[11].Cells[0]
	if got := fmt.Sprintf("%.3f, %.3f, %s", r12.Frequency, r12.Inductance, r12.Gauge); got != "40.139, 0.662, 16" {
		t.Fatalf("N=12 row = %q", got)
	}
	if g := sink.rows[21].Cells[0].Gauge; g != 20 {
		t.Fatalf("N=22 gauge = %v, want 20", g)
	}
	if g := sink.rows[149].Cells[0].Gauge; g != 36 {
		t.Fatalf("N=150 gauge = %v, want 36", g)
	}
}

func TestGeneratorMultiCore(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = string(ModeMulti)
	gen, err := NewGenerator(cfg, nil)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	if gen.ReferenceCore.Size != 200 {
		t.Fatalf("ReferenceCore = %d, want 200", gen.ReferenceCore.Size)
	}

	// 全コア x 657 行なので粗い格子で
	s, err := NewSolver(ax1, Band{Start: 0.1, Stop: 100, Step: 0.1}, nil)
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	sink := &collectSink{}
	if err := gen.Run(context.Background(), s, ax1, sink); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(sink.rows) != 657 {
		t.Fatalf("rows = %d, want 657", len(sink.rows))
	}
	if len(sink.cores) != len(coreCatalog) {
		t.Fatalf("cores = %d", len(sink.cores))
	}

	sizes := CoreSizes()
	for _, r := range sink.rows {
		if len(r.Cells) != len(sizes) {
			t.Fatalf("N=%d: %d cells", r.Turns, len(r.Cells))
		}
		for i, c := range r.Cells {
			if c.Core != sizes[i] {
				t.Fatalf("N=%d: cell %d is T-%d, want T-%d", r.Turns, i, c.Core, sizes[i])
			}
		}
	}

	last := len(sizes) - 1 // T-200
	if got := fmt.Sprintf("%.3f", sink.rows[0].Cells[last].Frequency); got != "59.800" {
		t.Fatalf("T-200 N=1 f = %s, want 59.800", got)
	}
	if got := fmt.Sprintf("%.3f", sink.rows[99].Cells[last].Frequency); got != "4.300" {
		t.Fatalf("T-200 N=100 f = %s, want 4.300", got)
	}
	// T-12 は 27 ターンから 36 AWG でも収まらない
	if g := sink.rows[25].Cells[0].Gauge; g != 36 {
		t.Fatalf("T-12 N=26 gauge = %v, want 36", g)
	}
	if g := sink.rows[26].Cells[0].Gauge; g != NoGauge {
		t.Fatalf("T-12 N=27 gauge = %v, want None", g)
	}
}

func TestGeneratorCancelled(t *testing.T) {
	gen, err := NewGenerator(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	s, err := NewSolver(ax1, Band{Start: 1, Stop: 30, Step: 0.1}, nil)
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink := &collectSink{}
	if err := gen.Run(ctx, s, ax1, sink); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(sink.rows) != 0 || !sink.ended {
		t.Fatalf("rows=%d ended=%v", len(sink.rows), sink.ended)
	}
}

func TestGeneratorNoSolutionAborts(t *testing.T) {
	gen, err := NewGenerator(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	s, err := newGridSolver(Band{Start: 1, Stop: 2, Step: 1}, func(float64) (float64, error) { return 0, ErrDomain }, nil)
	if err != nil {
		t.Fatalf("newGridSolver: %v", err)
	}
	sink := &collectSink{}
	if err := gen.Run(context.Background(), s, ax1, sink); !errors.Is(err, ErrNoSolution) {
		t.Fatalf("err = %v, want ErrNoSolution", err)
	}
	if len(sink.rows) != 0 || !sink.ended {
		t.Fatalf("rows=%d ended=%v", len(sink.rows), sink.ended)
	}
}

// failingSink は n 行目で書き込みに失敗する
type failingSink struct {
	collectSink
	failAt int
	endErr error
}

var errSinkFull = errors.New("sink full")

func (f *failingSink) Row(r Row) error {
	if len(f.rows)+1 == f.failAt {
		return errSinkFull
	}
	return f.collectSink.Row(r)
}

func (f *failingSink) End() error {
	f.collectSink.End()
	return f.endErr
}

func TestGeneratorRowErrorStillEnds(t *testing.T) {
	gen, err := NewGenerator(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	s := newAX1Solver(t)
	sink := &failingSink{failAt: 3, endErr: errors.New("close failed")}
	if err := gen.Run(context.Background(), s, ax1, sink); !errors.Is(err, errSinkFull) {
		t.Fatalf("err = %v, want the row error, not the End error", err)
	}
	if len(sink.rows) != 2 || !sink.ended {
		t.Fatalf("rows=%d ended=%v", len(sink.rows), sink.ended)
	}
}

func TestGeneratorEndErrorReported(t *testing.T) {
	gen, err := NewGenerator(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	s := newAX1Solver(t)
	endErr := errors.New("close failed")
	sink := &failingSink{endErr: endErr}
	if err := gen.Run(context.Background(), s, ax1, sink); !errors.Is(err, endErr) {
		t.Fatalf("err = %v, want End error", err)
	}
}
