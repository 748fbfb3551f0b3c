// Package monitor counts candidate eliminations per strategy so a
// session can report which deductions carried the solve. Counters are
// Prometheus metrics on a private registry; the package also offers a
// trace observer that logs every elimination.
package monitor

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ms1963/SudokuSolverAndGenerator/internal/board"
)

// Monitor aggregates elimination counts keyed by reason (the strategy
// or operation that caused the elimination).
type Monitor struct {
	registry     *prometheus.Registry
	eliminations *prometheus.CounterVec
	byReason     map[string]int
}

func New() *Monitor {
	m := &Monitor{
		registry: prometheus.NewRegistry(),
		eliminations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sudoku",
			Name:      "eliminations_total",
			Help:      "Candidate eliminations, partitioned by the strategy that caused them.",
		}, []string{"reason"}),
		byReason: make(map[string]int),
	}
	m.registry.MustRegister(m.eliminations)
	return m
}

// Registry exposes the private registry, e.g. for scraping in tests.
func (m *Monitor) Registry() *prometheus.Registry { return m.registry }

// Observer returns a board observer that feeds this monitor. Install it
// with Board.SetObserver.
func (m *Monitor) Observer() board.Observer {
	return func(cell board.Coord, digit int, reason string) {
		m.eliminations.WithLabelValues(reason).Inc()
		m.byReason[reason]++
	}
}

// Summary renders the per-reason counts, most frequent first.
func (m *Monitor) Summary() string {
	type entry struct {
		reason string
		count  int
	}
	entries := make([]entry, 0, len(m.byReason))
	for reason, count := range m.byReason {
		entries = append(entries, entry{reason, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].reason < entries[j].reason
	})
	var sb strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&sb, "%-24s %d\n", e.reason, e.count)
	}
	return sb.String()
}

// Count returns the eliminations recorded under reason.
func (m *Monitor) Count(reason string) int { return m.byReason[reason] }

// TraceObserver logs every elimination at debug level, independent of
// metric collection. Chain combines observers when both are wanted.
func TraceObserver(logger *slog.Logger) board.Observer {
	return func(cell board.Coord, digit int, reason string) {
		logger.Debug("eliminated", "row", cell.Row, "col", cell.Col, "digit", digit, "reason", reason)
	}
}

// Chain fans one board event out to several observers.
func Chain(observers ...board.Observer) board.Observer {
	return func(cell board.Coord, digit int, reason string) {
		for _, o := range observers {
			o(cell, digit, reason)
		}
	}
}
