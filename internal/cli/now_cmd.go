package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/chime/internal/cli/formatter"
	"github.com/alexanderramin/chime/internal/contract"
	"github.com/spf13/cobra"
)

func newNowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Show the current period and remaining time",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Status.GetStatus(context.Background(), contract.StatusRequest{})
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatStatus(resp))
			return nil
		},
	}
}
