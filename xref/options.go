/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package xref

// Options configures xref loading. The zero value is the strict default.
type Options struct {
	// MaxPrevChainLength bounds how many /Prev-linked sections Load will
	// walk before giving up even without a literal offset repeat, guarding
	// against pathological chains that don't strictly cycle. Zero means no
	// additional bound beyond cycle detection.
	MaxPrevChainLength int
}
