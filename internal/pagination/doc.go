// Package pagination computes the page indicators of a paginated view and tracks its active page.
//
// This package contains the page bar logic shared by the pagebar CLI and terminal UI, including:
//   - Model: active page state, the derived Range, and the SetPage/Next/Prev/First/Last mutators
//   - Item: a page number or the Ellipsis marker
//   - Params: item-count driven input that derives the total page count
//   - Meta: a serializable snapshot of a Model for structured output
//   - Step: parsed navigation scripts applied through the mutators
//
// Nothing in this package returns an error for out-of-range numbers: totals are normalized
// and pages are clamped. Rendering and key handling live in the callers.
package pagination
