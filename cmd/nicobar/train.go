package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fwojciec/nicobar"
)

// Run executes the train departures command.
func (c *TrainDeparturesCmd) Run(deps *Dependencies) error {
	table, err := deps.Trains.Departures(deps.Ctx, c.PlaceID)
	if err != nil {
		return reportError(deps, err)
	}
	return printTrainTable(deps.Stdout, table, "TO")
}

// Run executes the train arrivals command.
func (c *TrainArrivalsCmd) Run(deps *Dependencies) error {
	table, err := deps.Trains.Arrivals(deps.Ctx, c.PlaceID)
	if err != nil {
		return reportError(deps, err)
	}
	return printTrainTable(deps.Stdout, table, "FROM")
}

func printTrainTable(w io.Writer, table *nicobar.TrainTable, direction string) error {
	fmt.Fprintf(w, "%s (%s)\n", table.Place, table.PlaceID)
	if len(table.Lines) == 0 {
		fmt.Fprintln(w, "No trains listed.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "TIME\tTRAIN\tCATEGORY\t%s\tDELAY\tBINARY\n", direction)
	for _, l := range table.Lines {
		delay := "-"
		if l.Delay > 0 {
			delay = fmt.Sprintf("+%d'", l.Delay)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", l.DepartureTime, l.TrainID, l.Category, l.Destination, delay, l.Binary)
	}
	return tw.Flush()
}
