// Package analytics computes the dashboard aggregates over a filtered record set.
//
// Every function is pure: the same records give the same result, and an empty
// input yields neutral values (zero counts and sums, invalid NullDecimals for
// statistics that are undefined without data) instead of panicking.
package analytics
