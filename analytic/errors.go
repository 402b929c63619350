// SPDX-License-Identifier: MIT

package analytic

import "errors"

var (
	// ErrUnknownKind indicates a Kind without a definition or singularity rule.
	ErrUnknownKind = errors.New("analytic: unknown function kind")

	// ErrSingularPoint indicates evaluation at (or within Eps of) a pole.
	ErrSingularPoint = errors.New("analytic: function undefined at pole")

	// ErrNaNInf indicates a NaN or ±Inf argument or result.
	ErrNaNInf = errors.New("analytic: NaN or Inf encountered")
)
