// SPDX-License-Identifier: MIT
// Package: energyflow/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the failure site.
//   • Build never panics; option constructors panic on nil arguments.

package builder

import "errors"

// ErrUnsortedLevels indicates a hierarchy whose i-th level does not have
// order i. Obtain levels from hierarchy.Sort before calling Build.
var ErrUnsortedLevels = errors.New("builder: levels are not sorted and dense")
