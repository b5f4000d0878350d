// SPDX-License-Identifier: EPL-2.0

package ui

import "github.com/ik5/audtrim/viewer"

// refreshMsg asks the model to re-run the analysis for the current state.
type refreshMsg struct{}

// AnalysisMsg carries a finished analysis, or the error that stopped it.
type AnalysisMsg struct {
	Analysis viewer.Analysis
	Err      error
}
