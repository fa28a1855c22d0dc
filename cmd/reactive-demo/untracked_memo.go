package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/solidgo/reactive/reactive"
)

func untrackedMemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "untracked-memo",
		Short: "A memo that reads its source through Untrack and never updates",
		RunE: func(cmd *cobra.Command, args []string) error {
			reactive.CreateScopeImmediate(func(s *reactive.Scope) {
				sig := reactive.CreateSignal(s, 1)
				m := reactive.Memo(s, func() int {
					return reactive.Untrack(func() int { return sig.Get() }) * 2
				})

				fmt.Printf("initial: m=%d\n", m.Get())
				sig.Set(5)
				fmt.Printf("after sig.Set(5): m=%d (still frozen)\n", m.Get())
			})
			return nil
		},
	}
}
