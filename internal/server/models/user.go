// Package models contains the row types persisted by the server.
package models

import "database/sql"

// User is an account that may authenticate against the API. Accounts are
// created by the seed step only; there is no registration endpoint.
//
// AccessToken caches the last issued token. It is advisory: token
// verification relies on the JWT signature, never on this column.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	FullName     string
	AccessToken  sql.NullString
}
