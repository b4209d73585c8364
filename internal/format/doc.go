// Package format renders heterogeneous metadata collections (plain strings
// or name+id entities) into capped, sanitized string slices ready for
// template substitution.
//
// A Mode selects the rendering: bare sanitized values, quoted prose, raw
// URLs, or one of three wiki-link styles. Rendering never fails; malformed
// or blank entries are dropped rather than aborting the batch.
package format
