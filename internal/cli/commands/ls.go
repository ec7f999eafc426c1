package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/akfite/dirlist/internal/cli/ui"
	"github.com/akfite/dirlist/internal/core/lister"
)

var lsCmd = &cobra.Command{
	Use:     "ls <directory>",
	Aliases: []string{"list"},
	Short:   "List the immediate contents of a directory",
	Long: `List the immediate (non-recursive) contents of a directory and classify
every entry by type.

Examples:
  # List the current directory
  dirlist ls .

  # Resolve every entry to its canonical absolute path
  dirlist ls --canonical /var/log

  # Report symlinks as symlinks instead of their target's type
  dirlist ls --symlinks report /etc

  # One line per entry for fzf and other scripting
  dirlist ls --oneline . | fzf | cut -f3

  # Machine-readable output
  dirlist ls --format json /tmp`,
	Args: cobra.ExactArgs(1),
	RunE: runLs,
}

var (
	lsCanonical bool
	lsSymlinks  string
	lsStrict    bool
	lsOneline   bool
)

func init() {
	lsCmd.Flags().BoolVarP(&lsCanonical, "canonical", "c", false, "Canonicalize entry paths (absolute, symlinks resolved)")
	lsCmd.Flags().StringVar(&lsSymlinks, "symlinks", "", "Symlink classification: follow (target type) or report (symlink type)")
	lsCmd.Flags().BoolVar(&lsStrict, "strict", false, "Fail the whole listing if any entry cannot be classified")
	lsCmd.Flags().BoolVar(&lsOneline, "oneline", false, "One tab-separated line per entry for scripting")
}

// listingResponse is the JSON shape shared with the MCP fs_list tool:
// three index-aligned arrays of equal length.
type listingResponse struct {
	Paths []string `json:"paths"`
	Names []string `json:"names"`
	Types []uint8  `json:"types"`
}

func runLs(cmd *cobra.Command, args []string) error {
	opts := cfg.Defaults
	if cmd.Flags().Changed("canonical") {
		opts.Canonicalize = lsCanonical
	}
	if cmd.Flags().Changed("strict") {
		opts.Strict = lsStrict
	}
	switch lsSymlinks {
	case "":
		// Keep the configured default.
	case "follow":
		opts.ReportSymlinks = false
	case "report":
		opts.ReportSymlinks = true
	default:
		return fmt.Errorf("invalid --symlinks value %q (expected follow or report)", lsSymlinks)
	}

	dir := args[0]
	listing, err := lister.New().List(cmd.Context(), dir, opts)
	if err != nil {
		return err
	}

	// Handle JSON output
	if ui.GlobalFormatter.IsJSON() {
		return ui.GlobalFormatter.Output(listingResponse{
			Paths: listing.Paths(),
			Names: listing.Names(),
			Types: listing.TypeCodes(),
		})
	}

	if lsOneline {
		// Format: name<tab>type-code<tab>path
		for _, e := range listing.Entries {
			ui.PrintTSV([][]string{{e.Name, strconv.Itoa(int(e.Type)), e.Path}})
		}
		return nil
	}

	ui.PrintListing(dir, listing)
	return nil
}
