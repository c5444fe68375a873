package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const authorityKey = "authority"

// SaveAuthority stores the program authority account in contract storage.
// It is called once from _deploy and never again.
func SaveAuthority(ctx storage.Context, authority interop.Hash160) {
	if len(authority) != interop.Hash160Len {
		panic("invalid authority account")
	}
	storage.Put(ctx, authorityKey, authority)
}

// Authority returns the program authority account stored in contract storage.
func Authority(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, authorityKey).(interop.Hash160)
}

// CheckAuthority checks witness of the program authority stored in the
// contract storage. It panics with ErrAuthorityWitnessFailed message on fail.
// The check is performed on every call, there is no cached session state.
func CheckAuthority(ctx storage.Context) {
	CheckAuthorityWitness(Authority(ctx))
}

// HasUpdateAccess returns true if contract can be updated.
func HasUpdateAccess(ctx storage.Context) bool {
	return runtime.CheckWitness(Authority(ctx))
}
