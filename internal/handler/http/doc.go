// Package http implements the reference blob server.
//
// The server stores and returns opaque ciphertext addressed by owner and
// object id. It never receives plaintext, file keys or nonces. Requests pass
// through trace id, access logging, metrics and gzip middleware; blob routes
// additionally require a JWT bearer token whose subject owns the addressed
// blobs.
package http
