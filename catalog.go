// catalog.go
package main

import "fmt"

// WireGauges は扱う AWG（小さいほど太い）。Core.Capacity の添字と対応する。
var WireGauges = [...]int{14, 16, 18, 20, 22, 24, 26, 28, 30, 32, 34, 36}

// Core は -6 材トロイダルコア 1 種類分の定数。
// Al は 100 ターンあたりのインダクタンス [µH]。
// Capacity[i] は WireGauges[i] の線で巻線角 300° 以内に収まる最大ターン数。
type Core struct {
	Size     int
	Al       float64
	Capacity [len(WireGauges)]int
}

var coreCatalog = [...]Core{
	{Size: 12, Al: 17, Capacity: [12]int{0, 0, 0, 0, 1, 3, 5, 8, 11, 15, 20, 26}},
	{Size: 16, Al: 19, Capacity: [12]int{0, 0, 0, 1, 2, 4, 6, 9, 13, 17, 22, 29}},
	{Size: 25, Al: 27, Capacity: [12]int{0, 1, 3, 5, 7, 10, 14, 18, 24, 31, 41, 52}},
	{Size: 37, Al: 30, Capacity: [12]int{4, 6, 9, 12, 17, 22, 29, 37, 48, 60, 78, 98}},
	{Size: 50, Al: 46, Capacity: [12]int{8, 12, 16, 22, 28, 37, 47, 59, 76, 94, 121, 151}},
	{Size: 68, Al: 47, Capacity: [12]int{12, 16, 21, 28, 36, 46, 59, 74, 94, 117, 150, 187}},
	{Size: 80, Al: 45, Capacity: [12]int{17, 23, 30, 39, 51, 64, 82, 103, 129, 161, 204, 255}},
	{Size: 94, Al: 70, Capacity: [12]int{21, 27, 35, 45, 58, 74, 94, 117, 148, 183, 233, 290}},
	{Size: 106, Al: 116, Capacity: [12]int{21, 27, 36, 46, 59, 74, 95, 118, 149, 185, 235, 293}},
	{Size: 130, Al: 96, Capacity: [12]int{31, 40, 51, 65, 83, 105, 133, 165, 208, 257, 326, 406}},
	{Size: 157, Al: 115, Capacity: [12]int{39, 50, 64, 81, 103, 129, 164, 204, 256, 316, 401, 499}},
	{Size: 184, Al: 195, Capacity: [12]int{38, 50, 63, 81, 102, 129, 163, 202, 254, 314, 398, 496}},
	{Size: 200, Al: 104, Capacity: [12]int{53, 67, 86, 108, 137, 172, 217, 270, 338, 418, 529, 658}},
}

// CoreSizes はカタログ順のコアサイズ一覧。
func CoreSizes() []int {
	sizes := make([]int, len(coreCatalog))
	for i, c := range coreCatalog {
		sizes[i] = c.Size
	}
	return sizes
}

// LookupCore: カタログにないサイズは ErrUnknownCore
func LookupCore(size int) (Core, error) {
	for _, c := range coreCatalog {
		if c.Size == size {
			return c, nil
		}
	}
	return Core{}, fmt.Errorf("T-%d (catalog has %v): %w", size, CoreSizes(), ErrUnknownCore)
}

// MaxTurns は最も細い線（36 AWG）で巻ける最大ターン数。
func (c Core) MaxTurns() int {
	return c.Capacity[len(c.Capacity)-1]
}

// TurnsFor は指定ゲージでの最大ターン数。
func (c Core) TurnsFor(gauge int) (int, error) {
	for i, g := range WireGauges {
		if g == gauge {
			return c.Capacity[i], nil
		}
	}
	return 0, fmt.Errorf("T-%d: %d AWG: %w", c.Size, gauge, ErrUnknownGauge)
}

// Name は表示用の型番（例: T-50）
func (c Core) Name() string { return fmt.Sprintf("T-%d", c.Size) }
