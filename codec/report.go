// SPDX-License-Identifier: MIT

package codec

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/katalvlaran/hopnet/pattern"
	"github.com/katalvlaran/hopnet/recall"
)

// ReportOptions configures WriteReport.
type ReportOptions struct {
	Shape  pattern.Shape     // grid layout for recovered patterns
	Glyphs pattern.Glyphs    // zero value ⇒ pattern.DefaultGlyphs()
	Stored []pattern.Pattern // optional; enables the "Match:" line
}

// WriteReport writes one block per probe:
//
//	Probe 1
//	Epochs: 2
//	Match: pattern 3 (inverted)
//	<recovered grid>
//	<blank>
//
// "Converged: false" is added for probes that hit the epoch guard; probes
// that failed validation get an "Error:" line and no grid. When Stored is set
// a final line counts probes that settled on a stored memory or its inverse.
func WriteReport(w io.Writer, results []recall.BatchResult, opts ReportOptions) error {
	g := opts.Glyphs
	if g == (pattern.Glyphs{}) {
		g = pattern.DefaultGlyphs()
	}

	bw := bufio.NewWriter(w)
	matched := 0
	for _, r := range results {
		fmt.Fprintf(bw, "Probe %d\n", r.Index+1)
		if r.Err != nil && !stderrors.Is(r.Err, recall.ErrNonConvergence) {
			fmt.Fprintf(bw, "Error: %v\n\n", r.Err)
			continue
		}
		fmt.Fprintf(bw, "Epochs: %d\n", r.Result.Epochs)
		if !r.Result.Converged {
			bw.WriteString("Converged: false\n")
		}
		if opts.Stored != nil {
			idx, inverted, ok := pattern.Match(opts.Stored, r.Result.Pattern)
			switch {
			case !ok:
				bw.WriteString("Match: none\n")
			case inverted:
				matched++
				fmt.Fprintf(bw, "Match: pattern %d (inverted)\n", idx+1)
			default:
				matched++
				fmt.Fprintf(bw, "Match: pattern %d\n", idx+1)
			}
		}

		rows, err := r.Result.Pattern.Grid(opts.Shape, g)
		if err != nil {
			return errors.Wrapf(err, "codec: WriteReport: probe %d", r.Index+1)
		}
		for _, row := range rows {
			bw.WriteString(row)
			bw.WriteByte('\n')
		}
		bw.WriteByte('\n')
	}
	if opts.Stored != nil {
		fmt.Fprintf(bw, "Recovered stored patterns: %d of %d probes\n", matched, len(results))
	}

	return errors.Wrap(bw.Flush(), "codec: WriteReport")
}
