package review

import (
	"fmt"
	"io"
	"strings"

	"github.com/guialves/fallow/internal/core"
	"github.com/guialves/fallow/internal/scan"
)

// PrintStatic writes a plain-text listing of scan candidates to out.
// Used as a fallback when stdout is not a terminal and the interactive
// picker cannot run.
func PrintStatic(out io.Writer, result *scan.Result) {
	if len(result.Deleted) == 0 {
		fmt.Fprintln(out, "Nothing stale found.")
		return
	}

	fmt.Fprintf(out, "Stale files under %s:\n", result.Root)
	fmt.Fprintln(out, strings.Repeat("-", 58))
	for _, rec := range result.Deleted {
		fmt.Fprintf(out, "%10s  %s\n", core.FormatSize(rec.Size), rec.Path)
	}
	fmt.Fprintln(out, strings.Repeat("-", 58))
	fmt.Fprintf(out, "%d file(s), %s reclaimable. Run 'fallow purge' to delete.\n",
		len(result.Deleted), core.FormatSize(result.FreedBytes))
}
