// Package app contains the service implementations behind the domain
// contracts. Services enforce visibility and ownership rules and
// orchestrate repositories, notifications and providers.
package app
