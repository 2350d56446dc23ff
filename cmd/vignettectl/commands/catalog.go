package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/android-4dsoft/yettel/internal/wire"
)

// catalog: print every tier, category and region the upstream offers.
func catalogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the vignette catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.svc.Catalog(cmd.Context(), false)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "CATEGORY\tCODES\tCOST\tFEE")
			for _, t := range cat.Tiers {
				codes := make([]string, 0, len(t.Types))
				for _, c := range t.Types {
					codes = append(codes, wire.EncodeTierCode(c))
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.VehicleCategory, joinCodes(codes), t.UnitCost, t.TransactionFee)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			for _, vc := range cat.Categories {
				fmt.Fprintf(out, "%s (%s): %s\n", vc.Code, vc.DisplayCategory, vc.Name.Primary)
			}
			fmt.Fprintf(out, "%d regions\n", len(cat.Regions))
			return nil
		},
	}
}

func joinCodes(codes []string) string {
	const shown = 4
	if len(codes) <= shown {
		return fmt.Sprint(codes)
	}
	return fmt.Sprintf("%v +%d", codes[:shown], len(codes)-shown)
}
