// Package validate holds the pure input predicates used as guards before
// any network call: API token shape, search query non-emptiness, and
// movie identifier positivity.
package validate
