// Package github fetches per-repository language byte counts from the
// GitHub GraphQL API.
//
// The client handles response caching, automatic retries for transient
// failures, and authentication. It is the only component performing network
// I/O: everything downstream (aggregation, layout, rendering) is a pure
// transformation of the records returned here.
//
// Failures are typed through pkg/errors: USER_NOT_FOUND when the login does
// not exist, RATE_LIMITED on 429/secondary limits, UPSTREAM_ERROR for error
// payloads, NETWORK_ERROR for transport failures. Callers must not attempt
// aggregation on an error result; no partial data is ever returned.
package github
