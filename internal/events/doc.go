// Package events fans out window and job lifecycle notifications to UI
// clients connected over websockets.
//
// The Hub holds a mutex-protected client set. Publish never blocks: a client
// whose send buffer is full is dropped and must reconnect.
package events
