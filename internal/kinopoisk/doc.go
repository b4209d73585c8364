// Package kinopoisk provides the metadata API client used for title lookup.
//
// It exposes search-by-query and fetch-by-id over the versioned HTTP API,
// authenticating via the X-API-KEY header. Inputs are validated before any
// network I/O and every transport or HTTP failure leaves the package
// already translated into an apierr category. Options allow tests to
// supply custom HTTP clients without modifying production code.
package kinopoisk
