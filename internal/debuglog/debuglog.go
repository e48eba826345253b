// SPDX-License-Identifier: Unlicense OR MIT

// Package debuglog provides the discard logger used by layout
// algorithms that were not given one.
package debuglog

import (
	"io"

	"github.com/charmbracelet/log"
)

var discard = log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})

// Or returns l, or a logger that drops every entry if l is nil.
func Or(l *log.Logger) *log.Logger {
	if l != nil {
		return l
	}
	return discard
}
