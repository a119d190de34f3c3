// Package layout holds the pure geometry used by boxflow: rectangles,
// four-sided edges, length values, and the flexbox and grid distribution
// algorithms.
//
// Nothing in this package knows about the property document or about items.
// Callers translate their properties into a [FlexBox] or [GridBox] and call
// PerformLayout, which returns one [Rect] per item in input order.
// Types are re-exported through the root boxflow package for public consumption.
package layout
