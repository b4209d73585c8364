// Package transform flattens one full metadata API record into the
// template-ready field set.
//
// Every textual output field is a string slice (possibly empty, possibly
// one element) so template substitution can apply uniform join semantics;
// numeric and boolean fields are scalars defaulted to zero values. The
// transformation never fails: missing or malformed optional data degrades
// to empty output instead of aborting the record.
package transform
