// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements a minimal element tree for the layout
// algorithms: fixed size boxes, wrapping text labels and panels that
// lay out their children. Widgets hold no drawing state; tools walk
// the tree and paint the bounds the algorithms assigned.
package widget
