// Package app wires configuration, the host authority and the audit log
// into one login check.
package app

import (
	"context"
	"errors"

	"github.com/hnrobert/lumauth/internal/audit"
	"github.com/hnrobert/lumauth/internal/auth"
	"github.com/hnrobert/lumauth/internal/authority"
	"github.com/hnrobert/lumauth/internal/config"
	"github.com/hnrobert/lumauth/internal/hostfs"
	"github.com/hnrobert/lumauth/internal/logger"
	"github.com/hnrobert/lumauth/internal/openvpn"
)

type App struct {
	Config    config.Config
	Authority auth.Authority
	Audit     *audit.Logger
	Log       *logger.Logger
	// Lookup reads the environment; nil means os.LookupEnv.
	Lookup openvpn.LookupFunc
}

// New builds an App with the backend selected by cfg.
func New(cfg config.Config, log *logger.Logger) (*App, error) {
	a, err := authority.New(cfg.Backend, authority.Options{
		HostRoot:   cfg.HostRoot,
		PAMService: cfg.PAMService,
		SuFallback: cfg.SuFallback,
		Log:        log,
	})
	if err != nil {
		return nil, err
	}
	return &App{Config: cfg, Authority: a, Audit: auditLogger(cfg), Log: log}, nil
}

// BackendFailed reports that New failed for cfg: the error goes to the
// diagnostics log, a record goes to the audit log when logging is enabled,
// and the login is rejected.
func BackendFailed(cfg config.Config, log *logger.Logger, err error) int {
	a := &App{Config: cfg, Audit: auditLogger(cfg), Log: log}
	a.prepareLogDir()
	a.Log.Error("backend %s: %v", cfg.Backend, err)
	a.audit(audit.BackendFailure(string(cfg.Backend), auth.CodeOf(err)))
	return openvpn.ExitReject
}

func auditLogger(cfg config.Config) *audit.Logger {
	return &audit.Logger{
		Dir:             cfg.LogDirectory,
		Enabled:         cfg.LoggingEnabled,
		RedactPasswords: cfg.RedactPasswords,
	}
}

// Run checks the login found in the environment and returns the process
// exit code: openvpn.ExitAccept or openvpn.ExitReject.
func (a *App) Run(ctx context.Context) int {
	a.prepareLogDir()

	req, err := openvpn.ReadCredentials(a.Lookup)
	if err != nil {
		code := auth.CodeInternalError
		var envErr *openvpn.EnvError
		if errors.As(err, &envErr) {
			code = envErr.Code
		}
		a.Log.Error("%v", err)
		a.audit(audit.EnvironmentFailure(code))
		return openvpn.ExitReject
	}

	if !a.Config.GroupCheckEnabled() {
		a.Log.Debug("group check disabled, any valid account is accepted")
	}
	res := auth.Authenticate(ctx, a.Authority, req, a.Config.RequiredGroup)
	switch res.Decision {
	case auth.Accept:
		a.Log.Info("accepted %s", req.Username)
		a.audit(audit.Authenticated(req.Username))
	case auth.RejectGroup:
		a.Log.Info("rejected %s: not a member of %q", req.Username, a.Config.RequiredGroup)
		a.audit(audit.MissingGroup(req.Username, req.Password, a.Config.RequiredGroup))
	default:
		a.Log.Info("rejected %s: %v", req.Username, res.Validation.Err)
		a.audit(audit.InvalidCredentials(req.Username, req.Password, res.Validation.Code))
	}
	return openvpn.ExitCode(res.Decision)
}

// prepareLogDir creates the log directory when one was given explicitly.
func (a *App) prepareLogDir() {
	if a.Config.LoggingEnabled && a.Config.CreateLogDirectory {
		if err := hostfs.EnsureDir(a.Config.LogDirectory, 0o755); err != nil {
			a.Log.Warn("create log directory %s: %v", a.Config.LogDirectory, err)
		}
	}
}

// audit failures are reported but never change the verdict.
func (a *App) audit(m audit.Message) {
	if err := a.Audit.Log(m); err != nil {
		a.Log.Error("write audit log: %v", err)
	}
}
