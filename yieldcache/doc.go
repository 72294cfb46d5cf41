// Package yieldcache keeps finished search yields across evaluations.
//
// A search is a pure function of a blueprint's prices and the horizon, so
// its yield can be reused whenever the same price list is evaluated again,
// e.g. by a long-lived handler serving repeated requests. Entries are keyed
// by an xxhash fingerprint of the prices and horizon (the blueprint id is
// not part of the key) and stored in an expiring go-cache store.
//
// This cache never holds search internals: memo tables and incumbents stay
// private to each search.
package yieldcache
