// Package streaming provides ingest channel provisioning for live
// broadcasts.
package streaming
