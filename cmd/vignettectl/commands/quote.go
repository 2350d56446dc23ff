package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/android-4dsoft/yettel/internal/domain"
	"github.com/android-4dsoft/yettel/internal/wire"
)

// selectionFlags are shared by quote and buy. Exactly one of regions and pass
// must be set.
type selectionFlags struct {
	regions []string
	pass    string
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.regions, "region", nil, "region to buy a yearly pass for (repeatable, in selection order)")
	cmd.Flags().StringVar(&f.pass, "pass", "", "nationwide pass: DAY, WEEK, MONTH or YEAR")
	cmd.MarkFlagsMutuallyExclusive("region", "pass")
	cmd.MarkFlagsOneRequired("region", "pass")
}

// apply builds the selection in a fresh session and returns its ID.
func (f *selectionFlags) apply(ctx context.Context, a *app) (uuid.UUID, error) {
	sess := a.svc.CreateSession()
	if f.pass != "" {
		kind, err := wire.ParseTierKind(f.pass)
		if err != nil {
			return uuid.Nil, err
		}
		if _, err := a.svc.SelectPass(ctx, sess.ID, kind); err != nil {
			return uuid.Nil, err
		}
		return sess.ID, nil
	}
	return sess.ID, selectRegions(ctx, a, sess.ID, f.regions)
}

func selectRegions(ctx context.Context, a *app, sid uuid.UUID, ids []string) error {
	for _, id := range ids {
		if _, err := a.svc.SelectRegion(ctx, sid, domain.RegionID(id)); err != nil {
			if errors.Is(err, domain.ErrNotAdjacent) {
				return fmt.Errorf("%s does not border the regions before it; list regions in an order that keeps them connected", id)
			}
			return err
		}
	}
	return nil
}

func quoteCmd(a *app) *cobra.Command {
	var sf selectionFlags
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a selection without buying it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sid, err := sf.apply(cmd.Context(), a)
			if err != nil {
				return err
			}
			q, err := a.svc.Quote(cmd.Context(), sid)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "vehicle: %s (%s)\n", q.Vehicle.Plate, q.Priced.Category)
			printPriced(cmd.OutOrStdout(), q.Priced)
			return nil
		},
	}
	sf.register(cmd)
	return cmd
}

func printPriced(w io.Writer, p domain.PricedSelection) {
	for _, l := range p.Lines {
		fmt.Fprintf(w, "  %-12s %-16s %s\n", wire.EncodeTierCode(l.Code), l.Label, l.Cost)
	}
	fmt.Fprintf(w, "  %-29s %s\n", "transaction fee", p.TransactionFee)
	fmt.Fprintf(w, "  %-29s %s\n", "total", p.Total)
}
