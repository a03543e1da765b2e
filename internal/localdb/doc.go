// Package localdb reads the host's local account database.
//
// Files are resolved under a configurable root (see hostfs):
//
//	<root>/etc/passwd
//	<root>/etc/shadow
//	<root>/etc/group
//
// The package is read-only: the helper authenticates accounts, it never
// creates or modifies them.
package localdb
