// table.go
package main

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Mode はレポートの種類
type Mode string

const (
	ModeSingle  Mode = "single"  // 1 つのコアについてターン数ごと
	ModeMulti   Mode = "multi"   // カタログの全コアを横に並べる
	ModeInspect Mode = "inspect" // 周波数・タップ位置を振って必要ターン数を見る
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeSingle, ModeMulti, ModeInspect:
		return m, nil
	case "":
		return ModeSingle, nil
	}
	return "", fmt.Errorf("mode %q: %w", s, ErrInvalidInput)
}

// Cell は 1 コア分の計算結果
type Cell struct {
	Core       int
	Frequency  float64 // [MHz]
	Inductance float64 // [µH]
	Gauge      Gauge
}

// Row は 1 ターン数分の行。コアの並びは Generator.Cores と同じ。
type Row struct {
	Turns int
	Cells []Cell
}

// RowSink は行を 1 行ずつ受け取る（保持はしない）
type RowSink interface {
	Begin(w Whip, cores []Core) error
	Row(r Row) error
	End() error
}

// Generator はターン数をスイープして行を作る
type Generator struct {
	Mode          Mode
	Cores         []Core
	ReferenceCore Core // スイープ上限（MaxTurns、含まない）を決めるコア
	PrintEvery    int
	Metrics       *Metrics
}

// NewGenerator は設定からコア一覧と基準コアを決める。
func NewGenerator(cfg Config, m *Metrics) (*Generator, error) {
	mode, err := ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	g := &Generator{Mode: mode, PrintEvery: cfg.PrintEvery, Metrics: m}

	var refSize int
	switch mode {
	case ModeMulti:
		g.Cores = append(g.Cores, coreCatalog[:]...)
		refSize = cfg.ReferenceCore
		if refSize == 0 {
			refSize = 200
		}
	default:
		c, err := LookupCore(cfg.Core)
		if err != nil {
			return nil, err
		}
		g.Cores = []Core{c}
		refSize = cfg.ReferenceCore
		if refSize == 0 {
			refSize = c.Size
		}
	}
	if g.ReferenceCore, err = LookupCore(refSize); err != nil {
		return nil, err
	}
	return g, nil
}

// Run は N = 1 .. ReferenceCore.MaxTurns()-1 について行を作って sink に流す。
// ctx がキャンセルされたら、その時点までの行で打ち切る。
// 途中で失敗しても sink.End() は必ず呼ぶ（ファイルを閉じるため）。
func (g *Generator) Run(ctx context.Context, s *Solver, w Whip, sink RowSink) (err error) {
	if err := sink.Begin(w, g.Cores); err != nil {
		return err
	}
	defer func() {
		if endErr := sink.End(); err == nil {
			err = endErr
		}
	}()

	maxTurns := g.ReferenceCore.MaxTurns()
	for n := 1; n < maxTurns; n++ {
		select {
		case <-ctx.Done():
			log.WithField("turns", n).Warn("sweep interrupted")
			return ctx.Err()
		default:
		}

		row, err := g.row(s, n)
		if err != nil {
			return err
		}
		if err := sink.Row(row); err != nil {
			return err
		}
		g.Metrics.rowEmitted(g.Mode)

		if g.PrintEvery > 0 && n%g.PrintEvery == 0 {
			log.WithFields(log.Fields{"turns": n, "of": maxTurns - 1}).Info("progress")
		}
	}
	return nil
}

func (g *Generator) row(s *Solver, turns int) (Row, error) {
	row := Row{Turns: turns, Cells: make([]Cell, 0, len(g.Cores))}
	for _, c := range g.Cores {
		target := TargetInductance(turns, c.Al)
		f, err := s.Solve(target)
		if err != nil {
			return Row{}, fmt.Errorf("%s N=%d: %w", c.Name(), turns, err)
		}
		gauge, err := MaxWireGauge(c.Size, turns)
		if err != nil {
			return Row{}, err
		}
		log.WithFields(log.Fields{"core": c.Size, "turns": turns, "freq_mhz": f}).Debug("row cell")
		row.Cells = append(row.Cells, Cell{Core: c.Size, Frequency: f, Inductance: target, Gauge: gauge})
	}
	return row, nil
}
