// Package auth implements the authentication decision for a VPN login.
//
// A login passes two gates. The credential pair is validated against the
// host's local account authority; when a required group is configured, the
// account must additionally be a member of that local group. Both gates fail
// closed: any error from the host is treated as the gate rejecting.
//
// Host access goes through the Authority interface so the decision can be
// exercised without a real account database.
package auth
