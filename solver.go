// solver.go
package main

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Band は周波数の探索範囲 [MHz]。Start から Step 刻みで Stop まで（両端含む）。
type Band struct {
	Start float64 `mapstructure:"start"`
	Stop  float64 `mapstructure:"stop"`
	Step  float64 `mapstructure:"step"`
}

// DefaultBand: 1 kHz 刻みで 0.001〜100 MHz（約 10^5 点）
var DefaultBand = Band{Start: 0.001, Stop: 100.0, Step: 0.001}

func (b Band) Validate() error {
	if !(b.Start > 0) || !(b.Step > 0) || b.Stop < b.Start {
		return fmt.Errorf("band [%g, %g] step %g: %w", b.Start, b.Stop, b.Step, ErrInvalidInput)
	}
	return nil
}

// Samples は格子点の数
func (b Band) Samples() int {
	return int((b.Stop-b.Start)/b.Step) + 1
}

// At は i 番目の格子点。float64() で積を丸めてから足す（FMA にさせない）。
func (b Band) At(i int) float64 {
	return b.Start + float64(float64(i)*b.Step)
}

// inductanceModel は周波数 → 必要インダクタンス
type inductanceModel func(f float64) (float64, error)

// Solver は格子上のモデル値を 1 回だけ計算して持っておき、
// 目標インダクタンスごとに一番近い格子点を探す。
// モデルは形状だけで決まるので、ターン数やコアが変わっても使い回せる。
type Solver struct {
	band    Band
	freqs   []float64
	values  []float64
	skipped int
	metrics *Metrics
}

// NewSolver は w の形状でグリッドを作る。
func NewSolver(w Whip, band Band, m *Metrics) (*Solver, error) {
	return newGridSolver(band, func(f float64) (float64, error) {
		return RequiredInductance(f, w)
	}, m)
}

func newGridSolver(band Band, model inductanceModel, m *Metrics) (*Solver, error) {
	if err := band.Validate(); err != nil {
		return nil, err
	}
	n := band.Samples()
	s := &Solver{
		band:    band,
		freqs:   make([]float64, 0, n),
		values:  make([]float64, 0, n),
		metrics: m,
	}
	for i := 0; i < n; i++ {
		f := band.At(i)
		L, err := model(f)
		if err != nil {
			if errors.Is(err, ErrDomain) {
				// 定義域外の点は候補から外すだけ
				s.skipped++
				continue
			}
			return nil, err
		}
		s.freqs = append(s.freqs, f)
		s.values = append(s.values, L)
	}
	m.observeGrid(n, s.skipped)
	return s, nil
}

// Skipped は定義域外で除外した格子点の数
func (s *Solver) Skipped() int { return s.skipped }

// Valid は候補として残った格子点の数
func (s *Solver) Valid() int { return len(s.freqs) }

// Solve は |target - L(f)| が最小になる格子点 f を返す。
// 同じ誤差なら先に見つかった方（低い周波数）を採る。
func (s *Solver) Solve(target float64) (float64, error) {
	defer s.metrics.observeSolve(time.Now())

	if len(s.freqs) == 0 {
		return 0, fmt.Errorf("band [%g, %g]: %w", s.band.Start, s.band.Stop, ErrNoSolution)
	}
	best := -1
	lowest := math.Inf(1)
	for i, L := range s.values {
		if e := math.Abs(target - L); e < lowest {
			lowest = e
			best = i
		}
	}
	if best < 0 {
		// target が NaN のときだけ
		return 0, fmt.Errorf("target %g: %w", target, ErrNoSolution)
	}
	return s.freqs[best], nil
}
