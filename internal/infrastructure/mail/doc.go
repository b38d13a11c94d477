// Package mail delivers account emails.
package mail
