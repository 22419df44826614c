// Package diagnostic provides structured errors, warnings and infos
// collected while converting or loading properties.
//
// Key capabilities:
//   - Failed conversions tagged with the source and destination type pair
//   - Missing property reports with "did you mean" suggestions
//   - Invalid property files and values that could not be decoded
package diagnostic
