// SPDX-License-Identifier: MIT

package milp

import "errors"

// Sentinel errors returned by the branch-and-cut driver.
var (
	// ErrNilTableau indicates that a nil *tableau.Tableau was passed in.
	ErrNilTableau = errors.New("milp: tableau is nil")

	// ErrNodeLimit indicates that Options.NodeLimit branches were processed
	// before the frontier emptied. The best incumbent so far is still returned.
	ErrNodeLimit = errors.New("milp: node limit reached")

	// ErrTimeLimit indicates that Options.TimeLimit elapsed before the frontier
	// emptied. The best incumbent so far is still returned.
	ErrTimeLimit = errors.New("milp: time limit reached")

	// ErrBadOptions indicates an out-of-range Options field
	// (negative Workers, NodeLimit, TimeLimit or Gap, unknown Branching).
	ErrBadOptions = errors.New("milp: invalid options")
)
