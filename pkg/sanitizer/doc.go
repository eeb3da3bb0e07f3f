// Package sanitizer normalizes customer-supplied contact data before
// validation and storage.
//
// All functions are idempotent - applying them twice produces the same
// result - and handle invalid input by returning an empty string rather
// than an error.
//
// Normalization includes:
//   - Phone numbers: converted to E.164 format (+[country][number])
//   - Names and addresses: whitespace collapsed, leading/trailing spaces
//     trimmed
package sanitizer
