// config.go を直接さわらずにここで差し替え

package main

func init() {
	LocalOverride = func(cfg *Config) {

		// コメントアウトでデフォルト値が使われる。
		// loadcoil.toml / LOADCOIL_* 環境変数があればそちらが優先。

		// single / multi / inspect
		// cfg.Mode = "multi"

		// Amidon T-50-6
		cfg.Core = 50

		// 探索範囲 [MHz]（狭くすると速い）
		// cfg.Band = Band{Start: 1.0, Stop: 30.0, Step: 0.001}

		// 進行状況の表示間隔（行数）
		cfg.PrintEvery = 50

		// xlsx / tsv 出力のファイル名（"" なら保存しない）
		cfg.XLSXFile = ""
		cfg.TSVFile = ""
	}
}
