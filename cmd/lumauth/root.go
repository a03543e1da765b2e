package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hnrobert/lumauth/internal/app"
	"github.com/hnrobert/lumauth/internal/authority"
	"github.com/hnrobert/lumauth/internal/config"
	"github.com/hnrobert/lumauth/internal/logger"
	"github.com/hnrobert/lumauth/internal/openvpn"
)

// Version is set at build time
var Version = "dev"

// newRootCmd returns the command and the exit code it settles on. Every
// error path leaves the code at openvpn.ExitReject.
func newRootCmd() (*cobra.Command, *int) {
	code := openvpn.ExitReject

	cmd := &cobra.Command{
		Use:   "lumauth [group] [logging] [log-dir]",
		Short: "Authenticate OpenVPN clients against local user accounts",
		Long: `lumauth is an OpenVPN auth-user-pass-verify script (via-env method).

It reads the client's credentials from the "username" and "password"
environment variables, validates them against the local account database
and, unless group is "", requires membership in that local group.

  group     required local group (default "VPN Users", "" disables the check)
  logging   any value but "false" writes a per-day log file
  log-dir   directory for DD-MM-YYYY.log files (default ".")

A group or log-dir starting with "-" must follow "--", otherwise it is
parsed as a flag:

  lumauth --backend shadow -- -vpn-admins true /var/log/lumauth

Exit status 0 accepts the client, 1 rejects it.`,
		Version:      Version,
		Args:         cobra.MaximumNArgs(3),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd.Flags(), args)
			if err != nil {
				return err
			}
			log := logger.Stderr(cfg.LogLevel)
			a, err := app.New(cfg, log)
			if err != nil {
				code = app.BackendFailed(cfg, log, err)
				return nil
			}
			code = a.Run(cmd.Context())
			return nil
		},
	}

	bindFlags(cmd.Flags())
	return cmd, &code
}

func bindFlags(fl *pflag.FlagSet) {
	fl.String("config", os.Getenv(config.EnvConfigPath), "YAML configuration file (env "+config.EnvConfigPath+")")
	fl.String("backend", "", "account backend: shadow, pam or sam (default depends on the OS)")
	fl.String("host-root", "", "root directory of etc/passwd, etc/shadow and etc/group")
	fl.String("pam-service", "", "PAM service name for the pam backend")
	fl.Bool("no-su-fallback", false, "do not verify yescrypt hashes through su(1)")
	fl.Bool("redact-passwords", false, "do not write attempted passwords to the log")
	fl.String("log-level", "", "stderr diagnostics level: debug, info, warn or error")
	fl.Bool("debug", false, "shorthand for --log-level=debug")
}

// buildConfig layers defaults, the config file, the positional arguments
// and the flags that were set explicitly.
func buildConfig(fl *pflag.FlagSet, args []string) (config.Config, error) {
	cfg := config.Default()
	if path, _ := fl.GetString("config"); path != "" {
		file, err := config.LoadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		if cfg, err = cfg.Apply(file); err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
	}
	cfg = cfg.WithArgs(args)

	if fl.Changed("backend") {
		s, _ := fl.GetString("backend")
		k, err := authority.ParseKind(s)
		if err != nil {
			return cfg, err
		}
		cfg.Backend = k
	}
	if fl.Changed("host-root") {
		cfg.HostRoot, _ = fl.GetString("host-root")
	}
	if fl.Changed("pam-service") {
		cfg.PAMService, _ = fl.GetString("pam-service")
	}
	if v, _ := fl.GetBool("no-su-fallback"); v {
		cfg.SuFallback = false
	}
	if v, _ := fl.GetBool("redact-passwords"); v {
		cfg.RedactPasswords = true
	}
	if fl.Changed("log-level") {
		s, _ := fl.GetString("log-level")
		lvl, err := logger.ParseLevel(s)
		if err != nil {
			return cfg, err
		}
		cfg.LogLevel = lvl
	}
	if v, _ := fl.GetBool("debug"); v {
		cfg.LogLevel = logger.LevelDebug
	}
	return cfg, nil
}
