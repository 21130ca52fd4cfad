package main

import (
	"fmt"
	"io"
	"time"

	"github.com/Cloud-Foundations/tricorder/go/tricorder"
	"github.com/Cloud-Foundations/tricorder/go/tricorder/units"
)

const metricsDirectory = "/list"

var commandTimeDistribution *tricorder.CumulativeDistribution

func setupMetrics() error {
	dir, err := tricorder.RegisterDirectory(metricsDirectory)
	if err != nil {
		return err
	}
	err = dir.RegisterMetric("length",
		func() uint {
			if currentList == nil {
				return 0
			}
			return currentList.Length()
		},
		units.None, "number of values in the list")
	if err != nil {
		return err
	}
	err = dir.RegisterMetric("state-file", stateFile, units.None,
		"name of the state file")
	if err != nil {
		return err
	}
	bucketer := tricorder.NewGeometricBucketer(0.001, 1e3)
	commandTimeDistribution = bucketer.NewCumulativeDistribution()
	return dir.RegisterMetric("command-time", commandTimeDistribution,
		units.Millisecond, "time taken to load, update and save the list")
}

func recordCommandTime(startTime time.Time) {
	if commandTimeDistribution != nil {
		commandTimeDistribution.Add(time.Since(startTime))
	}
}

func writeMetrics(writer io.Writer) error {
	for _, metric := range tricorder.ReadMyMetrics(metricsDirectory) {
		_, err := fmt.Fprintf(writer, "%s %v\n", metric.Path, metric.Value)
		if err != nil {
			return err
		}
	}
	return nil
}
