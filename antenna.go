// antenna.go
package main

import (
	"fmt"
	"math"
)

// Whip はホイップアンテナの形状。
// A: 全長 [ft], B: 根元からローディングコイルまでの距離 [ft], D: 直径 [in]
type Whip struct {
	A float64
	B float64
	D float64
}

// Validate: 計算前にまとめてチェックする（B < D は元の CLI の制約をそのまま残している）
func (w Whip) Validate() error {
	switch {
	case math.IsInf(w.A, 0) || math.IsInf(w.B, 0) || math.IsInf(w.D, 0):
		return fmt.Errorf("A=%g B=%g D=%g: whip dimensions must be finite: %w", w.A, w.B, w.D, ErrInvalidInput)
	case !(w.A > 0):
		return fmt.Errorf("A=%g: whip length must be > 0: %w", w.A, ErrInvalidInput)
	case !(w.D > 0):
		return fmt.Errorf("D=%g: whip diameter must be > 0: %w", w.D, ErrInvalidInput)
	case !(w.B >= 0):
		return fmt.Errorf("B=%g: coil distance must be >= 0: %w", w.B, ErrInvalidInput)
	case w.B >= w.D:
		return fmt.Errorf("B=%g D=%g: B cannot be greater than or equal to D: %w", w.B, w.D, ErrInvalidInput)
	case w.B >= w.A:
		return fmt.Errorf("A=%g B=%g: coil must sit below the top of the whip: %w", w.A, w.B, ErrInvalidInput)
	}
	return nil
}

// quarterWaveFeet は周波数 f [MHz] の 1/4 波長 [ft]
func quarterWaveFeet(f float64) float64 { return 234 / f }

// RequiredInductance は周波数 f [MHz] で共振させるのに必要なローディングコイルの
// インダクタンス [µH]。短縮モノポールを折り返し線路とみなす近似式。
// 定義域外（0 除算、log の引数 <= 0、非有限の結果）は ErrDomain。
func RequiredInductance(f float64, w Whip) (float64, error) {
	A, B, D := w.A, w.B, w.D
	if !(f > 0) || !(D > 0) {
		return 0, fmt.Errorf("f=%g D=%g: %w", f, D, ErrDomain)
	}

	c4 := quarterWaveFeet(f) - B
	c7 := A - B
	arg2 := 24 * c4 / D
	arg5 := 24 * c7 / D
	if c4 == 0 || c7 == 0 || !(arg2 > 0) || !(arg5 > 0) {
		return 0, fmt.Errorf("f=%g A=%g B=%g D=%g: %w", f, A, B, D, ErrDomain)
	}

	c1 := 1e6 / (68 * sq(math.Pi) * sq(f))
	c2 := math.Log(arg2) - 1
	// float64() で 2 乗を丸めてから引く（FMA にさせない）
	c3 := float64(sq(1-f*B/234)) - 1
	c5 := math.Log(arg5) - 1
	c6 := float64(sq(f*c7/234)) - 1

	L := c1 * ((c2 * c3 / c4) - (c5 * c6 / c7))
	if math.IsNaN(L) || math.IsInf(L, 0) {
		return 0, fmt.Errorf("f=%g: non-finite inductance: %w", f, ErrDomain)
	}
	return L, nil
}

func sq(x float64) float64 { return x * x }
