package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/solidgo/reactive/reactive"
)

func counterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "counter",
		Short: "A signal feeding an effect that writes a derived signal",
		RunE: func(cmd *cobra.Command, args []string) error {
			reactive.CreateScopeImmediate(func(s *reactive.Scope) {
				in := reactive.CreateSignal(s, 0)
				out := reactive.CreateSignal(s, 0)

				reactive.CreateEffect(s, func() {
					out.Set(in.Get() * 2)
				})

				fmt.Printf("initial: out=%d\n", out.Get())
				in.Set(3)
				fmt.Printf("after in.Set(3): out=%d\n", out.Get())
			})
			return nil
		},
	}
}
