// Package builtin provides the static data compiled into the binary:
// the default service catalog, the region latency table and the
// migration guidance tables.
package builtin
