// Package note renders a flat record into a markdown note using a
// user-authored template.
//
// Placeholders take the {{field}} form. Array fields are joined with a
// comma, scalars use their natural string form, and unknown placeholders
// are left intact so template typos stay visible.
package note
