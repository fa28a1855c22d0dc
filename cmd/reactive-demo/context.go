package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/solidgo/reactive/reactive"
)

func contextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "context",
		Short: "A context value provided at the root, read from a nested child",
		RunE: func(cmd *cobra.Command, args []string) error {
			reactive.CreateScopeImmediate(func(s *reactive.Scope) {
				reactive.ProvideContext(s, 42)

				s.CreateChildScope(func(child *reactive.Scope) {
					child.CreateChildScope(func(grandchild *reactive.Scope) {
						fmt.Println("value seen from grandchild:", reactive.UseContext[int](grandchild))
					})
				})
			})
			return nil
		},
	}
}
