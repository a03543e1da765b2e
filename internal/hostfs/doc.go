// Package hostfs provides access helpers for host files.
//
// Account files are resolved relative to a root directory so the helper can
// run against a mounted host (e.g. root=/host):
//
//	/etc/passwd  -> /host/etc/passwd
//	/etc/shadow  -> /host/etc/shadow
//	/etc/group   -> /host/etc/group
//
// The audit log is written with a single append per invocation; several
// helper processes may append to the same file concurrently.
package hostfs
