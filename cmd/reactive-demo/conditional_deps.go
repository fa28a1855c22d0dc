package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/solidgo/reactive/reactive"
)

func conditionalDepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conditional-deps",
		Short: "An effect that switches which signal it depends on",
		RunE: func(cmd *cobra.Command, args []string) error {
			reactive.CreateScopeImmediate(func(s *reactive.Scope) {
				cond := reactive.CreateSignal(s, true)
				x := reactive.CreateSignal(s, 0)
				y := reactive.CreateSignal(s, 100)
				runs := 0

				reactive.CreateEffect(s, func() {
					if cond.Get() {
						x.Get()
					} else {
						y.Get()
					}
					runs++
				})

				runs = 0
				y.Set(200)
				fmt.Printf("write to y while cond=true: runs=%d (expect 0)\n", runs)

				cond.Set(false)
				runs = 0
				y.Set(300)
				fmt.Printf("write to y after cond=false: runs=%d (expect 1)\n", runs)
			})
			return nil
		},
	}
}
