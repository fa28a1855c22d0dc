package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/solidgo/reactive/reactive"
)

func nestedEffectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nested-effect",
		Short: "An outer effect that recreates an inner effect on every run",
		RunE: func(cmd *cobra.Command, args []string) error {
			reactive.CreateScopeImmediate(func(s *reactive.Scope) {
				a := reactive.CreateSignal(s, 0)
				outerRuns, innerRuns := 0, 0

				reactive.CreateEffectScoped(s, func(inner *reactive.Scope) {
					a.Get()
					outerRuns++
					reactive.CreateEffect(inner, func() {
						innerRuns++
					})
				})

				outerRuns, innerRuns = 0, 0
				a.Set(1)
				fmt.Printf("outer runs=%d inner runs=%d (expect 1 and 1)\n", outerRuns, innerRuns)
			})
			return nil
		},
	}
}
