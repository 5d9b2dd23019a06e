// inspect.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// InspectConfig: 周波数を振る表と、タップ位置（B）を振る表の設定
type InspectConfig struct {
	Band         Band    `mapstructure:"band"`          // 周波数の振り幅 [MHz]
	TapFrequency float64 `mapstructure:"tap_frequency"` // タップ位置の表で使う周波数 [MHz]
	TapStep      float64 `mapstructure:"tap_step"`      // A に対する割合（0.01 = 1%）
	TapStop      float64 `mapstructure:"tap_stop"`      // A に対する割合（0.99 = 99%）
}

func DefaultInspectConfig() InspectConfig {
	return InspectConfig{
		Band:         Band{Start: 20.0, Stop: 21.4, Step: 0.01},
		TapFrequency: 14.0,
		TapStep:      0.01,
		TapStop:      0.99,
	}
}

// Inspect は core を使う前提で
//   - 周波数ごとの必要インダクタンスとターン数
//   - タップ位置ごとの必要インダクタンスとターン数
//
// を w に書き出す。定義域外の点はログに出して飛ばす。
func Inspect(ctx context.Context, w io.Writer, whip Whip, core Core, ic InspectConfig) error {
	if err := ic.Band.Validate(); err != nil {
		return err
	}
	if !(ic.TapFrequency > 0) || !(ic.TapStep > 0) || ic.TapStop < 0 || ic.TapStop >= 1 {
		return fmt.Errorf("tap inspection f=%g step=%g stop=%g: %w", ic.TapFrequency, ic.TapStep, ic.TapStop, ErrInvalidInput)
	}
	if err := writeInputs(w, whip); err != nil {
		return err
	}

	// 周波数を振る（コア名は見出しとは別の行。列数を行と揃える）
	if _, err := fmt.Fprintf(w, "%s\nFrequency, L(uH), N, Max AWG\n", core.Name()); err != nil {
		return err
	}
	for i := 0; i < ic.Band.Samples(); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		f := ic.Band.At(i)
		L, n, gauge, err := inspectPoint(core, f, whip)
		if errors.Is(err, ErrDomain) {
			log.WithField("freq_mhz", f).WithError(err).Warn("skipping sample")
			continue
		} else if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%.3f, %.2f, %d, %s\n", f, L, n, gauge); err != nil {
			return err
		}
	}

	// タップ位置を振る（B 以外は whip のまま）
	if _, err := fmt.Fprintf(w, "\n%s @ %g MHz\nPercentage Up Whip, Distance Up Whip, L(uH), N, Max AWG\n", core.Name(), ic.TapFrequency); err != nil {
		return err
	}
	step := ic.TapStep * whip.A
	tap := Band{Start: 0, Stop: ic.TapStop * whip.A, Step: step}
	for i := 0; i < tap.Samples(); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		b := tap.At(i)
		at := Whip{A: whip.A, B: b, D: whip.D}
		L, n, gauge, err := inspectPoint(core, ic.TapFrequency, at)
		if errors.Is(err, ErrDomain) {
			log.WithField("tap_ft", b).WithError(err).Warn("skipping tap position")
			continue
		} else if err != nil {
			return err
		}
		percent := b * 100 / whip.A
		if _, err := fmt.Fprintf(w, "%.0f%%, %.3f, %.2f, %d, %s\n", percent, b, L, n, gauge); err != nil {
			return err
		}
	}
	return nil
}

// inspectPoint: L <= 0（1/4 波長より長い側）はコイルでは合わせられないので定義域外扱い
func inspectPoint(core Core, f float64, whip Whip) (float64, int, Gauge, error) {
	L, err := RequiredInductance(f, whip)
	if err != nil {
		return 0, 0, NoGauge, err
	}
	if !(L > 0) {
		return 0, 0, NoGauge, fmt.Errorf("f=%g: L=%g uH: %w", f, L, ErrDomain)
	}
	n := TurnsForInductance(L, core.Al)
	gauge, err := MaxWireGauge(core.Size, n)
	return L, n, gauge, err
}
