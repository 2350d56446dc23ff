package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// buy: price the selection and submit it upstream as an order.
func buyCmd(a *app) *cobra.Command {
	var (
		sf  selectionFlags
		yes bool
	)
	cmd := &cobra.Command{
		Use:   "buy",
		Short: "Buy a selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sid, err := sf.apply(cmd.Context(), a)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !yes {
				q, err := a.svc.Quote(cmd.Context(), sid)
				if err != nil {
					return err
				}
				printPriced(out, q.Priced)
				return fmt.Errorf("not submitted: rerun with --yes to buy")
			}

			r, err := a.svc.Checkout(cmd.Context(), sid)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "order %s: %s\n", r.ID, r.StatusCode)
			for _, l := range r.Lines {
				fmt.Fprintf(out, "  %-12s %s\n", l.Code, l.Cost)
			}
			fmt.Fprintf(out, "  %-12s %s\n", "total", r.Total)
			if r.Message != "" {
				fmt.Fprintln(out, r.Message)
			}
			return nil
		},
	}
	sf.register(cmd)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "submit without asking")
	return cmd
}
