// errors.go
package main

import "errors"

// 呼び出し側は errors.Is で判定する。詳細は fmt.Errorf("...: %w") で付ける。
var (
	// 引数・設定の誤り（usage を出して終了）
	ErrInvalidInput = errors.New("invalid input")
	// アンテナモデルの定義域外（グリッドの 1 点なら読み飛ばす）
	ErrDomain = errors.New("outside model domain")
	// グリッドに有効な点が 1 つもない
	ErrNoSolution = errors.New("no valid frequency sample")
	// カタログにないコア / ゲージ
	ErrUnknownCore  = errors.New("unknown core size")
	ErrUnknownGauge = errors.New("unknown wire gauge")
)
