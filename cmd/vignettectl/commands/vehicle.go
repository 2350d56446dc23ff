package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func vehicleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "vehicle",
		Short: "Print the registered vehicle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := a.svc.CreateSession()
			v, err := a.svc.Vehicle(cmd.Context(), sess.ID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "plate:    %s\n", v.Plate)
			fmt.Fprintf(out, "owner:    %s\n", v.OwnerName)
			fmt.Fprintf(out, "category: %s (%s)\n", v.Category, v.VignetteType)
			fmt.Fprintf(out, "country:  %s (%s)\n", v.Country.Primary, v.InternationalCode)
			return nil
		},
	}
}
