//go:build unix

package main

import (
	"github.com/buildbarn/bb-pathname/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
)

// writeMetricsTextfile stores all metrics collected by the gatherer in
// a file, using the text format that is read by the textfile collector
// of node_exporter. The file is replaced atomically.
func writeMetricsTextfile(filename string, gatherer prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(filename, gatherer); err != nil {
		return util.StatusWrapf(err, "Failed to write metrics to %#v", filename)
	}
	return nil
}
