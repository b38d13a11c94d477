// Package accounts contains the user account domain: users and their
// profile sub-resources, friendships, one-time codes and extra
// contact points.
package accounts
