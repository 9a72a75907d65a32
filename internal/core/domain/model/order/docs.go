// Package order provides the Order aggregate and its two independent state axes.
//
// Tracking status (Pending, Processing, Shipped, Delivered, Cancelled) and
// payment status (Pending, Paid) move separately: an order may be Processing
// while still unpaid. Every order starts at (Pending, Pending).
//
// Tracking writes are unconstrained. An administrator may set any status at
// any time, including moving a Delivered order back to Pending. What the
// machine does track is the edge: SetTrackingStatus returns a Transition whose
// Events report entry into Processing or Delivered, and nothing for a write of
// the current value.
//
// Line items are owned snapshots (reference, display name, unit price) taken at
// creation. Later catalog edits or deletions never reach an existing order, and
// the total is fixed at creation.
package order
