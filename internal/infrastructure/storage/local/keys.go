// Package local keeps accounts, profiles and the session as JSON documents in a
// ports.KVStore, under the same keys the browser client used.
package local

const (
	KeyUser     = "user"
	KeyToken    = "token"
	KeyAccounts = "accounts"
	KeyProfiles = "profiles"
)
