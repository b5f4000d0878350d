// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/ik5/audtrim/batch"
	"github.com/ik5/audtrim/vad"
)

// PrintSummary writes one line per file followed by the totals.
func PrintSummary(w io.Writer, sum batch.Summary) {
	for _, r := range sum.Results {
		switch r.Status {
		case batch.StatusTrimmed, batch.StatusPlaceholder:
			icon := OKStyle.Render("✓")
			if r.Status == batch.StatusPlaceholder {
				icon = WarnStyle.Render("○")
			}
			fmt.Fprintf(w, " %s %s → %s %s\n", icon, r.Rel, filepath.Base(r.Output),
				KeyStyle.Render(fmt.Sprintf("(%d samples, fade %d)", r.Report.Length, r.Report.FadeLength)))
		case batch.StatusSkipped:
			fmt.Fprintf(w, " %s %s %s\n", WarnStyle.Render("–"), r.Rel, KeyStyle.Render(errText(r.Err)))
		case batch.StatusFailed:
			fmt.Fprintf(w, " %s %s %s\n", ErrorStyle.Render("✗"), r.Rel, errText(r.Err))
		default:
			fmt.Fprintf(w, " %s %s %s\n", KeyStyle.Render("·"), r.Rel, KeyStyle.Render("canceled"))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s  %s %s  %s %s  %s %s\n",
		KeyStyle.Render("Trimmed:"), ValueStyle.Render(fmt.Sprint(sum.Trimmed)),
		KeyStyle.Render("Placeholders:"), ValueStyle.Render(fmt.Sprint(sum.Placeholders)),
		KeyStyle.Render("Skipped:"), ValueStyle.Render(fmt.Sprint(sum.Skipped)),
		KeyStyle.Render("Failed:"), ValueStyle.Render(fmt.Sprint(sum.Failed)),
	)
}

// PrintRegions lists the speech regions of one file in seconds.
func PrintRegions(w io.Writer, name string, res vad.Result) {
	fmt.Fprintf(w, "%s %s\n", ValueStyle.Render(name),
		KeyStyle.Render(fmt.Sprintf("(%d speech, %d silence)", len(res.Speech), len(res.Silence))))

	for _, r := range res.Speech {
		fmt.Fprintf(w, "  %8.3fs - %8.3fs  %s\n",
			r.StartSeconds(res.SampleRate), r.EndSeconds(res.SampleRate),
			KeyStyle.Render(fmt.Sprintf("%.3fs", r.Seconds(res.SampleRate))))
	}
}

func errText(err error) string {
	if err == nil {
		return ""
	}

	return err.Error()
}
