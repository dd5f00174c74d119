package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Adda-Baaj/placeholder-client/internal/app"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show comment files saved recently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return rt.withJournal(cmd, func(a *app.App) error {
				recs, err := a.Store().Exports()
				if err != nil {
					return fmt.Errorf("read export journal: %w", err)
				}
				out := cmd.OutOrStdout()
				if len(recs) == 0 {
					fmt.Fprintln(out, "No saved comments.")
					return nil
				}

				table := tablewriter.NewWriter(out)
				table.SetHeader([]string{"User", "Post", "File", "Bytes", "Saved At"})
				table.SetAutoWrapText(false)
				for _, rec := range recs {
					table.Append([]string{
						rec.UserID,
						strconv.Itoa(rec.PostID),
						rec.Path,
						strconv.Itoa(rec.Bytes),
						rec.SavedAt.Local().Format(time.DateTime),
					})
				}
				table.Render()
				return nil
			})
		},
	}
}
