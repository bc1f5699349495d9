// Package account models the parties that interact with the platform.
// An Account is the identity aggregate carrying the role tag; role-specific
// data lives in separate profile entities (DriverProfile) that hold a
// non-owning back-reference to the account. This composition replaces the
// table-inheritance identity tricks some account systems use: an account is
// exactly one row, and its role decides which profile is consulted.
package account
