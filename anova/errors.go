// SPDX-License-Identifier: MIT

package anova

import (
	"errors"
	"fmt"
)

// Sentinels matched via errors.Is. The typed errors below carry the details.
var (
	// ErrRankDeficient is returned when the design matrix is not of full column rank.
	ErrRankDeficient = errors.New("anova: design matrix is rank deficient")

	// ErrInsufficientData is returned when residual degrees of freedom are ≤ 0.
	ErrInsufficientData = errors.New("anova: insufficient data")
)

// RankDeficiencyError names the first design column found to be dependent.
type RankDeficiencyError struct {
	Column string
	Reason string
}

func (e *RankDeficiencyError) Error() string {
	return fmt.Sprintf("%v at column %q: %s", ErrRankDeficient, e.Column, e.Reason)
}

// Is reports whether target is ErrRankDeficient.
func (e *RankDeficiencyError) Is(target error) bool { return target == ErrRankDeficient }

// InsufficientDataError reports n observations against p model parameters.
type InsufficientDataError struct {
	N      int
	Params int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%v: %d observations for %d parameters (residual df %d)",
		ErrInsufficientData, e.N, e.Params, e.N-e.Params)
}

// Is reports whether target is ErrInsufficientData.
func (e *InsufficientDataError) Is(target error) bool { return target == ErrInsufficientData }
