// Package session is the single source of truth for the client's authentication state.
//
// A [Session] is the triple (token, user id, role); it is authenticated only
// when all three fields are simultaneously present. Sessions persist across
// invocations through a [Store], whose file-backed implementation writes the
// whole triple in one atomic file replacement so no partially written state
// is ever observable.
//
// [Bootstrap] restores a persisted session at startup and revalidates it
// against the backend's current-user endpoint. Revalidation refreshes the
// user id and role from the authoritative response without touching the
// token; any failure clears the store and demotes the caller to
// unauthenticated. Commands never write session fields directly, only
// through [Store.Set] and [Store.Clear].
package session
