package cmd

import (
	"encoding/json"
	"fmt"

	"GodSignal/internal/di"
	"GodSignal/internal/domain/models"
	xhttp "GodSignal/pkg/http"

	"github.com/spf13/cobra"
)

var snapshotOpts struct {
	page   string
	search string
	typ    string
	chain  string
	pretty bool
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Acquire one page snapshot and print it as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		live := models.LiveRequest{Page: snapshotOpts.page}
		if err := xhttp.ValidateStruct(&live); err != nil {
			return fmt.Errorf("invalid --page: %w", err)
		}

		cfg, err := loadCLIConfig()
		if err != nil {
			return err
		}
		pages, cleanup, err := di.InitializePages(cfg)
		if err != nil {
			return fmt.Errorf("initialization failed: %w", err)
		}
		defer cleanup()

		ctx := cmd.Context()
		var data interface{}
		switch live.Page {
		case models.PageSignals:
			req := models.SignalsRequest{Search: snapshotOpts.search, Type: snapshotOpts.typ}
			if err := xhttp.ValidateStruct(&req); err != nil {
				return fmt.Errorf("invalid signals filter: %w", err)
			}
			data = pages.Signals(ctx, req)
		case models.PageWhales:
			req := models.WhalesRequest{Chain: snapshotOpts.chain}
			if err := xhttp.ValidateStruct(&req); err != nil {
				return fmt.Errorf("invalid --chain: %w", err)
			}
			data = pages.Whales(ctx, req)
		default:
			data = pages.Page(ctx, live.Page)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		if snapshotOpts.pretty {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(data)
	},
}

func init() {
	f := snapshotCmd.Flags()
	f.StringVar(&snapshotOpts.page, "page", models.PageDashboard, "page to acquire: dashboard, signals, whales or analytics")
	f.StringVar(&snapshotOpts.search, "search", "", "token substring filter (signals page)")
	f.StringVar(&snapshotOpts.typ, "type", "ALL", "alert type filter (signals page)")
	f.StringVar(&snapshotOpts.chain, "chain", "ALL", "chain filter (whales page)")
	f.BoolVar(&snapshotOpts.pretty, "pretty", false, "indent JSON output")
}
