package commands

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// RenderMetrics prints the request counters gathered from g, one row per
// endpoint, method and status code.
func RenderMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	var rows [][]string

	for _, family := range families {
		if family.GetType() != dto.MetricType_COUNTER {
			continue
		}

		for _, metric := range family.GetMetric() {
			rows = append(rows, []string{
				labelValue(metric, "endpoint"),
				labelValue(metric, "method"),
				labelValue(metric, "code"),
				strconv.FormatFloat(metric.GetCounter().GetValue(), 'f', 0, 64),
			})
		}
	}

	if len(rows) == 0 {
		_, _ = io.WriteString(w, "No API calls recorded\n")

		return nil
	}

	sort.Slice(rows, func(i, j int) bool {
		return strings.Join(rows[i], " ") < strings.Join(rows[j], " ")
	})

	return renderTable(w, []string{"Endpoint", "Method", "Code", "Calls"}, rows)
}

func labelValue(metric *dto.Metric, name string) string {
	for _, label := range metric.GetLabel() {
		if label.GetName() == name {
			return label.GetValue()
		}
	}

	return ""
}
