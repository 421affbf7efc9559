// Package server runs the blob server's HTTP listener with signal driven
// graceful shutdown.
package server
