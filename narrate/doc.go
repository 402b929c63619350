// SPDX-License-Identifier: MIT

// Package narrate turns the numeric results of one integration pass into the
// short statements shown next to the plots: the singularity banner, the
// theorem explanation, the numeric verdict and the surface warning.
//
// Statements are localized through a golang.org/x/text catalog. English is
// the default; Indonesian is also available. Numbers are printed with the
// locale's decimal separator.
package narrate
