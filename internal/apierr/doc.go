// Package apierr translates transport and HTTP failures from the metadata
// API into a closed set of sentinel categories.
//
// Translation is lossy on purpose: the wrapped chain keeps the full
// diagnostic detail for operator logs, while Localizer resolves the short
// user-facing message that crosses the boundary to the end user.
package apierr
