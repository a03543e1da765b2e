//go:build windows

package authority

import (
	"context"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/hnrobert/lumauth/internal/auth"
)

var (
	modadvapi32 = windows.NewLazySystemDLL("advapi32.dll")
	modnetapi32 = windows.NewLazySystemDLL("netapi32.dll")

	procLogonUserW            = modadvapi32.NewProc("LogonUserW")
	procNetUserGetLocalGroups = modnetapi32.NewProc("NetUserGetLocalGroups")
)

const (
	logon32LogonNetwork    = 3
	logon32ProviderDefault = 0
	maxPreferredLength     = 0xFFFFFFFF
	nerrSuccess            = 0
)

// LOCALGROUP_USERS_INFO_0
type localGroupUsersInfo0 struct {
	name *uint16
}

// SAM authenticates against the local Security Account Manager database.
// Domain controllers and Active Directory are never consulted: the domain
// passed to LogonUser is always ".".
type SAM struct{}

func NewSAM(Options) (*SAM, error) {
	return &SAM{}, nil
}

func (SAM) ValidateCredentials(_ context.Context, username, password string) error {
	user, err := windows.UTF16PtrFromString(username)
	if err != nil {
		return auth.ErrInvalidCredentials
	}
	pass, err := windows.UTF16PtrFromString(password)
	if err != nil {
		return auth.ErrInvalidCredentials
	}
	domain, _ := windows.UTF16PtrFromString(".")

	var token windows.Token
	r1, _, e1 := procLogonUserW.Call(
		uintptr(unsafe.Pointer(user)),
		uintptr(unsafe.Pointer(domain)),
		uintptr(unsafe.Pointer(pass)),
		logon32LogonNetwork,
		logon32ProviderDefault,
		uintptr(unsafe.Pointer(&token)),
	)
	if r1 == 0 {
		code := auth.CodeLogonFailure
		if errno, ok := e1.(syscall.Errno); ok && errno != 0 {
			code = uint32(errno)
		}
		return &auth.HostError{Op: "LogonUserW", Code: code, Err: auth.ErrInvalidCredentials}
	}
	defer token.Close()
	return nil
}

func (SAM) ListGroups(username string) ([]string, error) {
	user, err := windows.UTF16PtrFromString(username)
	if err != nil {
		return nil, auth.ErrUnknownAccount
	}

	var (
		buf          *byte
		entriesRead  uint32
		totalEntries uint32
	)
	r1, _, _ := procNetUserGetLocalGroups.Call(
		0, // local computer
		uintptr(unsafe.Pointer(user)),
		0, // level 0: LOCALGROUP_USERS_INFO_0
		0, // direct memberships only
		uintptr(unsafe.Pointer(&buf)),
		maxPreferredLength,
		uintptr(unsafe.Pointer(&entriesRead)),
		uintptr(unsafe.Pointer(&totalEntries)),
	)
	if buf != nil {
		defer windows.NetApiBufferFree(buf)
	}
	if r1 != nerrSuccess {
		return nil, &auth.HostError{Op: "NetUserGetLocalGroups", Code: uint32(r1)}
	}
	if buf == nil || entriesRead == 0 {
		return nil, nil
	}

	entries := unsafe.Slice((*localGroupUsersInfo0)(unsafe.Pointer(buf)), entriesRead)
	groups := make([]string, 0, len(entries))
	for _, e := range entries {
		groups = append(groups, windows.UTF16PtrToString(e.name))
	}
	return groups, nil
}
