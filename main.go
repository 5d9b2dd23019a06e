// main.go
// Copyright (c) 2026 Ichijo Hodaka
// Toroid Loading Coil（短縮ホイップ用ローディングコイルの設計表）
// - ホイップの長さ A [ft]、コイル位置 B [ft]、直径 D [in] を引数で受け取る
// - ターン数ごとに共振周波数 [MHz]、インダクタンス [µH]、巻ける最も太い線 [AWG] を出す
// - 共振周波数は 0.001〜100 MHz を 1 kHz 刻みで総当たり
// - 巻線は 300° 以内に収まること
// - 終了条件：全ターン数の計算終了 or Ctrl-C
//
// 使い方: loadcoil A B D > table.csv

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run は終了コードを返す（0: 正常, 1: 計算・出力エラー, 2: 引数エラー）
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(stderr, "config error:", err)
		return 2
	}
	setupLogging(stderr, cfg.LogLevel)

	// 引数エラーは何も出力する前に止める
	whip, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		printUsage(stderr)
		return 2
	}

	// Ctrl-C 対応
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("[Ctrl-C] interrupt received. stopping...")
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := generate(ctx, cfg, whip, stdout, prometheus.NewRegistry()); err != nil {
		if errors.Is(err, context.Canceled) {
			return 1
		}
		if errors.Is(err, ErrInvalidInput) {
			fmt.Fprintln(stderr, err)
			printUsage(stderr)
			return 2
		}
		log.WithError(err).Error("table generation failed")
		return 1
	}
	return 0
}

// generate は cfg.Mode に従って表を stdout（と xlsx / tsv）に書く。
func generate(ctx context.Context, cfg Config, whip Whip, stdout io.Writer, reg prometheus.Registerer) error {
	mode, err := ParseMode(cfg.Mode)
	if err != nil {
		return err
	}
	metrics, err := NewMetrics(reg)
	if err != nil {
		return err
	}
	if cfg.MetricsAddr != "" {
		metrics.Serve(ctx, cfg.MetricsAddr)
	}

	if mode == ModeInspect {
		core, err := LookupCore(cfg.Core)
		if err != nil {
			return err
		}
		if cfg.XLSXFile != "" || cfg.TSVFile != "" {
			log.WithFields(log.Fields{"xlsx_file": cfg.XLSXFile, "tsv_file": cfg.TSVFile}).
				Warn("inspect mode writes to stdout only; xlsx/tsv export is ignored")
		}
		return Inspect(ctx, stdout, whip, core, cfg.Inspect)
	}

	gen, err := NewGenerator(cfg, metrics)
	if err != nil {
		return err
	}

	start := time.Now()
	solver, err := NewSolver(whip, cfg.Band, metrics)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"samples": cfg.Band.Samples(),
		"skipped": solver.Skipped(),
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Debug("frequency grid ready")

	// 有効な格子点がなければ見出しも出さずに止める
	if solver.Valid() == 0 {
		return fmt.Errorf("A=%g B=%g D=%g: every frequency sample is outside the model domain: %w",
			whip.A, whip.B, whip.D, ErrNoSolution)
	}

	if err := gen.Run(ctx, solver, whip, NewSinks(stdout, cfg)); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"mode":    mode,
		"cores":   len(gen.Cores),
		"rows":    gen.ReferenceCore.MaxTurns() - 1,
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Info("done")
	if cfg.XLSXFile != "" {
		log.WithField("file", cfg.XLSXFile).Info("xlsx saved")
	}
	if cfg.TSVFile != "" {
		log.WithField("file", cfg.TSVFile).Info("tsv saved")
	}
	return nil
}
