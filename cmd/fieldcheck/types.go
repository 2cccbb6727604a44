package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/pkg/attribute"
)

func newTypesCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "types [type...]",
		Short: "List field types and the constraints they accept",
		Long: `List field types with the attribute kinds each one accepts.

Examples:
  fieldcheck types               # every type with its own constraints
  fieldcheck types money date    # selected types only
  fieldcheck types --all         # include the kinds shared by all types`,
		RunE: func(cmd *cobra.Command, args []string) error {
			types := args
			if len(types) == 0 {
				types = a.registry.Types()
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tCONSTRAINTS")
			for _, typ := range types {
				kinds, err := a.kinds(typ, all)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\n", typ, joinKinds(kinds))
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "include the attribute kinds shared by every type")
	return cmd
}

func (a *app) kinds(typ string, all bool) ([]attribute.Kind, error) {
	if all {
		return a.registry.Allowed(typ)
	}
	if _, err := a.registry.Allowed(typ); err != nil {
		return nil, err
	}
	s, _ := a.registry.Schema(typ)
	return s.Allowed, nil
}

func joinKinds(kinds []attribute.Kind) string {
	if len(kinds) == 0 {
		return "-"
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
