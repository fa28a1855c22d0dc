package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/solidgo/reactive/reactive"
)

func benchCmd() *cobra.Command {
	var writes int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Drives a signal a fixed number of times and reports recorded metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := prometheus.NewRegistry()
			rec := reactive.NewPrometheusRecorder(reg)

			dispose := reactive.CreateRoot(func(s *reactive.Scope) {
				count := reactive.CreateSignal(s, 0)
				reactive.CreateEffect(s, func() {
					count.Get()
				})
				for i := 0; i < writes; i++ {
					count.Set(i)
				}
			}, reactive.WithMetrics(rec))
			dispose()

			families, err := reg.Gather()
			if err != nil {
				return err
			}
			for _, fam := range families {
				for _, m := range fam.Metric {
					switch {
					case m.GetCounter() != nil:
						fmt.Printf("%s %v\n", fam.GetName(), m.GetCounter().GetValue())
					case m.GetHistogram() != nil:
						fmt.Printf("%s count=%d sum=%f\n", fam.GetName(), m.GetHistogram().GetSampleCount(), m.GetHistogram().GetSampleSum())
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&writes, "writes", 1000, "number of signal writes to perform")

	return cmd
}
