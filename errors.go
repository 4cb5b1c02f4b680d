// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package phfwd

import "errors"

var (
	// ErrNilForwarder is returned by Add on a nil *Forwarder.
	ErrNilForwarder = errors.New("phfwd: nil forwarder")

	// ErrInvalidNumber is returned by Add if a number is empty or
	// contains symbols other than 0-9, * and #.
	ErrInvalidNumber = errors.New("phfwd: invalid number")

	// ErrSameNumber is returned by Add if source and target are equal.
	ErrSameNumber = errors.New("phfwd: source and target are equal")
)
