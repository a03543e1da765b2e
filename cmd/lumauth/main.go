// Command lumauth authenticates OpenVPN clients against the host's local
// user accounts.
//
// Configure it in the OpenVPN server config:
//
//	script-security 3
//	auth-user-pass-verify "/usr/local/bin/lumauth 'VPN Users' true /var/log/lumauth" via-env
//
// Arguments starting with "-" go after "--":
//
//	auth-user-pass-verify "/usr/local/bin/lumauth -- -vpn-admins true /var/log/lumauth" via-env
//
// Exit status 0 accepts the client, 1 rejects it.
package main

import (
	"os"

	"github.com/hnrobert/lumauth/internal/openvpn"
)

func main() {
	cmd, code := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(openvpn.ExitReject)
	}
	os.Exit(*code)
}
