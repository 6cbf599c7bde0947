// Package auth provides optional local authentication for the study server.
//
// Two modes are supported, selected via AUTH_MODE:
//
//   - "none" (default): every request acts as the default user. Suitable for
//     a single-reader instance on a trusted network.
//   - "local": username/password accounts with server-side sessions (scs
//     backed by SQLite) plus Bearer API tokens for non-browser clients.
//
// Mutating browser requests are CSRF-protected; requests carrying a valid
// Bearer token bypass the CSRF check.
package auth
