// gauge.go
package main

import "strconv"

// Gauge は AWG 番号。NoGauge は「どの線でも巻けない」。
type Gauge int

const NoGauge Gauge = 0

func (g Gauge) String() string {
	if g == NoGauge {
		return "None"
	}
	return strconv.Itoa(int(g))
}

// MaxWireGauge: 太い方（14 AWG）から順に見て、turns 回巻ける最初のゲージを返す。
// 36 AWG でも収まらなければ NoGauge。
func MaxWireGauge(coreSize, turns int) (Gauge, error) {
	core, err := LookupCore(coreSize)
	if err != nil {
		return NoGauge, err
	}
	for _, g := range WireGauges {
		n, err := core.TurnsFor(g)
		if err != nil {
			return NoGauge, err
		}
		if n >= turns {
			return Gauge(g), nil
		}
	}
	return NoGauge, nil
}
