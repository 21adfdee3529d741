package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/reusee/bytetape/histories"
	"github.com/reusee/bytetape/reports"
	"github.com/reusee/dscope"
)

func showHistory(ctx context.Context, scope dscope.Scope) (code int) {
	scope.Call(func(
		open histories.Open,
	) {
		store, err := open(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "history: %v\n", err)
			code = reports.ExitOther
			return
		}
		defer store.Close()

		runs, err := store.Recent(ctx, historyLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "history: %v\n", err)
			code = reports.ExitOther
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, run := range runs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				run.Started.Format(time.DateTime),
				run.Source,
				run.Hash[:12],
				run.Duration.Round(time.Microsecond),
				run.Outcome(),
			)
		}
		w.Flush()
	})
	return
}
