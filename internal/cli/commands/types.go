package commands

import (
	"github.com/spf13/cobra"

	"github.com/akfite/dirlist/internal/cli/ui"
	"github.com/akfite/dirlist/internal/core/lister"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Show the entry type code table",
	Long: `Show the numeric type codes used by every dirlist interface.

The codes are a stable contract: adapters and scripts may rely on them
never changing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Handle JSON output
		if ui.GlobalFormatter.IsJSON() {
			table := make(map[string]uint8)
			for code := lister.TypeNone; code <= lister.TypeUnknown; code++ {
				table[code.String()] = uint8(code)
			}
			return ui.GlobalFormatter.Output(table)
		}

		ui.PrintTypeTable()
		return nil
	},
}
