package cmd

import (
	"fmt"
	"io"
	"os"

	"GodSignal/internal/di"
	"GodSignal/internal/domain/models"
	"GodSignal/internal/usecase"
	xhttp "GodSignal/pkg/http"

	"github.com/spf13/cobra"
)

var exportOpts struct {
	out    string
	search string
	typ    string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the filtered signals list as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := models.SignalsRequest{Search: exportOpts.search, Type: exportOpts.typ}
		if err := xhttp.ValidateStruct(&req); err != nil {
			return fmt.Errorf("invalid filter: %w", err)
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

		var w io.Writer = cmd.OutOrStdout()
		if exportOpts.out != "-" {
			f, err := os.Create(exportOpts.out)
			if err != nil {
				return fmt.Errorf("create %s: %w", exportOpts.out, err)
			}
			defer f.Close()
			w = f
		}

		n, err := pages.ExportSignals(cmd.Context(), req, w)
		if err != nil {
			return fmt.Errorf("export signals: %w", err)
		}
		if exportOpts.out != "-" {
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d signals to %s\n", n, exportOpts.out)
		}
		return nil
	},
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&exportOpts.out, "out", usecase.ExportFilename, "output file, - for stdout")
	f.StringVar(&exportOpts.search, "search", "", "token substring filter")
	f.StringVar(&exportOpts.typ, "type", "ALL", "alert type filter")
}
