package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"text/template"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/plus3/blockfall/tetris"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	MaxFrames int64
	FrameStep time.Duration
	Seed      uint64

	// Results
	TotalFrames    int64
	TotalTime      time.Duration
	FrameTime      Stats
	Totals         tetris.Totals
	Scheduler      *tetris.SchedulerStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Stats keeps running frame time figures without storing samples.
type Stats struct {
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
	Count int64
	Total time.Duration
}

func (s *Stats) Add(sample time.Duration) {
	if s.Count == 0 {
		s.Min = sample
		s.Max = sample
	}
	s.Min = min(s.Min, sample)
	s.Max = max(s.Max, sample)
	s.Total += sample
	s.Count++
}

func (s *Stats) Finalize() {
	if s.Count == 0 {
		return
	}
	s.Avg = s.Total / time.Duration(s.Count)
}

// systemTable renders per-system timings as a plain text table.
func systemTable(stats *tetris.SchedulerStats) string {
	if stats == nil {
		return ""
	}

	var sb strings.Builder
	table := tablewriter.NewWriter(&sb)
	table.SetHeader([]string{"System", "Runs", "Avg", "Min", "Max", "Total"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetAutoWrapText(false)

	for _, s := range stats.Systems {
		table.Append([]string{
			s.Name,
			humanize.Comma(s.ExecutionCount),
			s.AvgDuration.String(),
			s.MinDuration.String(),
			s.MaxDuration.String(),
			s.TotalDuration.String(),
		})
	}
	table.Render()
	return sb.String()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Engine Bench Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Frame Limit:** {{if .MaxFrames}}{{comma .MaxFrames}}{{else}}none{{end}}
- **Simulated Frame Step:** {{.FrameStep}}
- **Seed:** {{.Seed}}

## Results
- **Frames:** {{comma .TotalFrames}}
- **Wall Time:** {{.TotalTime}}
- **Games:** {{.Totals.Games}}
- **Pieces Locked:** {{comma .Totals.Pieces}}
- **Lines Cleared:** {{comma .Totals.Lines}}
- **Frame Time:**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}

## Systems
{{systems .Scheduler}}
## Memory Usage
- Heap Alloc:     {{bytes .MemStatsStart.HeapAlloc}} (start) -> {{bytes .MemStatsEnd.HeapAlloc}} (end) -> delta: {{bdelta .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{bytes .MemStatsStart.TotalAlloc}} (start) -> {{bytes .MemStatsEnd.TotalAlloc}} (end) -> delta: {{bdelta .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{bytes .MemStatsStart.Sys}} (start) -> {{bytes .MemStatsEnd.Sys}} (end) -> delta: {{bdelta .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}`

	fm := template.FuncMap{
		"bytes": humanize.Bytes,
		"comma": humanize.Comma,
		"bdelta": func(a, b uint64) string {
			if a >= b {
				return "+" + humanize.Bytes(a-b)
			}
			return "-" + humanize.Bytes(b-a)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
		"systems": systemTable,
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
