// output.go
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// 区切りは「, 」。> file.csv でそのまま表計算ソフトに読める。
const sep = ", "

func fmt3(x float64) string { return fmt.Sprintf("%.3f", x) }

func fmtInput(x float64) string { return strconv.FormatFloat(x, 'f', -1, 64) }

// 入力値のヘッダ（ラベルと単位）
func inputLines(w Whip) [][]string {
	return [][]string{
		{"A", fmtInput(w.A), "Radiator Length (ft)"},
		{"B", fmtInput(w.B), "Loading Coil Distance from Bottom (ft)"},
		{"D", fmtInput(w.D), "Radiator Diameter (in)"},
	}
}

func writeInputs(out io.Writer, w Whip) error {
	for _, line := range inputLines(w) {
		if _, err := fmt.Fprintln(out, strings.Join(line, sep)); err != nil {
			return err
		}
	}
	return nil
}

// 表の列見出し。コア 1 個なら単体表、複数なら T-xx ごとに 3 列。
func columnHeaders(cores []Core) []string {
	if len(cores) == 1 {
		return []string{"Turns", "Frequency (MHz)", "L (uH)", "Max Wire Dia. (AWG)"}
	}
	headers := make([]string, 0, 1+3*len(cores))
	headers = append(headers, "# Turns")
	for _, c := range cores {
		headers = append(headers,
			c.Name()+" Freq (MHz)",
			c.Name()+" L(uH)",
			c.Name()+" Max AWG",
		)
	}
	return headers
}

// 表示用の 1 行
func rowFields(r Row) []string {
	fields := make([]string, 0, 1+3*len(r.Cells))
	fields = append(fields, strconv.Itoa(r.Turns))
	for _, c := range r.Cells {
		fields = append(fields, fmt3(c.Frequency), fmt3(c.Inductance), c.Gauge.String())
	}
	return fields
}

// ============================================================
// コンソール（標準出力）
// ============================================================

type textSink struct {
	w io.Writer
}

func NewTextSink(w io.Writer) RowSink { return &textSink{w: w} }

func (s *textSink) Begin(w Whip, cores []Core) error {
	if err := writeInputs(s.w, w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.w, strings.Join(columnHeaders(cores), sep))
	return err
}

func (s *textSink) Row(r Row) error {
	_, err := fmt.Fprintln(s.w, strings.Join(rowFields(r), sep))
	return err
}

func (s *textSink) End() error { return nil }

// ============================================================
// xlsx（StreamWriter で 1 行ずつ書く）
// ============================================================

type xlsxSink struct {
	filename string
	f        *excelize.File
	sw       *excelize.StreamWriter
	next     int
}

// NewXLSXSink: "Table" シートに表、"Inputs" シートに入力値を保存する
func NewXLSXSink(filename string) RowSink { return &xlsxSink{filename: filename} }

func (s *xlsxSink) Begin(w Whip, cores []Core) error {
	s.f = excelize.NewFile()

	table := "Table"
	if err := s.f.SetSheetName("Sheet1", table); err != nil {
		return err
	}

	// Inputs シートは普通のセル書き込み
	inputs := "Inputs"
	if _, err := s.f.NewSheet(inputs); err != nil {
		return err
	}
	vals := []float64{w.A, w.B, w.D}
	for i, line := range inputLines(w) {
		row := i + 1
		cell, _ := excelize.CoordinatesToCellName(1, row)
		s.f.SetCellValue(inputs, cell, line[0])
		cell, _ = excelize.CoordinatesToCellName(2, row)
		s.f.SetCellValue(inputs, cell, vals[i]) // xlsx は数値のまま
		cell, _ = excelize.CoordinatesToCellName(3, row)
		s.f.SetCellValue(inputs, cell, line[2])
	}

	sw, err := s.f.NewStreamWriter(table)
	if err != nil {
		return err
	}
	s.sw = sw

	headers := columnHeaders(cores)
	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	s.next = 1
	return s.writeRow(header)
}

func (s *xlsxSink) writeRow(values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, s.next)
	if err != nil {
		return err
	}
	s.next++
	return s.sw.SetRow(cell, values)
}

func (s *xlsxSink) Row(r Row) error {
	values := make([]interface{}, 0, 1+3*len(r.Cells))
	values = append(values, r.Turns)
	for _, c := range r.Cells {
		values = append(values, c.Frequency, c.Inductance)
		if c.Gauge == NoGauge {
			values = append(values, nil) // 空セル
		} else {
			values = append(values, int(c.Gauge))
		}
	}
	return s.writeRow(values)
}

func (s *xlsxSink) End() error {
	if s.f == nil {
		return nil
	}
	defer s.f.Close()
	if err := s.sw.Flush(); err != nil {
		return err
	}
	return s.f.SaveAs(s.filename)
}

// ============================================================
// tsv
// ============================================================

type tsvSink struct {
	filename string
	fp       *os.File
	w        *csv.Writer
}

func NewTSVSink(filename string) RowSink { return &tsvSink{filename: filename} }

func (s *tsvSink) Begin(w Whip, cores []Core) error {
	fp, err := os.Create(s.filename)
	if err != nil {
		return err
	}
	s.fp = fp
	s.w = csv.NewWriter(fp)
	s.w.Comma = '\t'
	return s.w.Write(columnHeaders(cores))
}

func (s *tsvSink) Row(r Row) error {
	return s.w.Write(rowFields(r))
}

func (s *tsvSink) End() error {
	if s.fp == nil {
		return nil
	}
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		s.fp.Close()
		return err
	}
	return s.fp.Close()
}

// ============================================================
// 複数の出力先にまとめて流す
// ============================================================

type multiSink []RowSink

func (m multiSink) Begin(w Whip, cores []Core) error {
	for _, s := range m {
		if err := s.Begin(w, cores); err != nil {
			return err
		}
	}
	return nil
}

func (m multiSink) Row(r Row) error {
	for _, s := range m {
		if err := s.Row(r); err != nil {
			return err
		}
	}
	return nil
}

func (m multiSink) End() error {
	var first error
	for _, s := range m {
		if err := s.End(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// NewSinks: stdout は必ず、xlsx / tsv はファイル名が "" でなければ追加する
func NewSinks(stdout io.Writer, cfg Config) RowSink {
	sinks := multiSink{NewTextSink(stdout)}
	if cfg.XLSXFile != "" {
		sinks = append(sinks, NewXLSXSink(cfg.XLSXFile))
	}
	if cfg.TSVFile != "" {
		sinks = append(sinks, NewTSVSink(cfg.TSVFile))
	}
	return sinks
}
