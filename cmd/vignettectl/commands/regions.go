package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// regions [--region ID...]: list purchasable regions. With --region the
// listed regions are selected first and the SELECTABLE column reflects them.
func regionsCmd(a *app) *cobra.Command {
	var ids []string
	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List regions with a yearly pass for the vehicle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := a.svc.CreateSession()
			if err := selectRegions(cmd.Context(), a, sess.ID, ids); err != nil {
				return err
			}
			opts, err := a.svc.Regions(cmd.Context(), sess.ID)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCOST\tSELECTED\tSELECTABLE")
			for _, o := range opts {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%t\n", o.Region.ID, o.Region.DisplayName, o.Cost, o.Selected, o.Selectable)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringSliceVar(&ids, "region", nil, "region to select first (repeatable)")
	return cmd
}
