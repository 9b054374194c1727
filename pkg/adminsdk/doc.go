// Package adminsdk holds the JSON wire types of the dialisis admin API and a
// small HTTP client for them. The server handlers and the client share these
// types so the two cannot drift apart.
package adminsdk
