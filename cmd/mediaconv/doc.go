// Package main hosts the mediaconv CLI.
//
// The Cobra command tree starts and stops the daemon, forwards picker, opener,
// window, and conversion commands to it over the JSON-RPC socket, and offers a
// few local utilities (status snapshots, name classification, configuration
// scaffolding) that work without a running daemon.
package main
