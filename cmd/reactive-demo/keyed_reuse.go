package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/solidgo/reactive/reactive"
)

type demoItem struct {
	key   int
	value string
}

func keyedReuseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keyed-reuse",
		Short: "A keyed list mapper that reorders without reallocating",
		RunE: func(cmd *cobra.Command, args []string) error {
			reactive.CreateScopeImmediate(func(s *reactive.Scope) {
				items := reactive.CreateSignal(s, []demoItem{{1, "A"}, {2, "B"}})

				mapped := reactive.MapKeyed(s, items.AsReadSignal(),
					func(it demoItem) int { return it.key },
					func(child *reactive.Scope, it demoItem) string {
						fmt.Printf("  allocating %s\n", it.value)
						child.OnCleanup(func() { fmt.Printf("  disposing %s\n", it.value) })
						return "v" + it.value
					},
				)

				fmt.Println("initial:", mapped.Get())

				fmt.Println("reorder to [B, A]:")
				items.Set([]demoItem{{2, "B"}, {1, "A"}})
				fmt.Println(mapped.Get())

				fmt.Println("replace A with C:")
				items.Set([]demoItem{{2, "B"}, {3, "C"}})
				fmt.Println(mapped.Get())
			})
			return nil
		},
	}
}
