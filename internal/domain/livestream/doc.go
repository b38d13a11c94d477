// Package livestream contains the live broadcast domain: streams,
// their comments and viewer tracking.
package livestream
