// Package queue builds conversion queue entries from user selections.
//
// A Builder asks a dialog.Picker for paths and turns each into an Item with a
// fresh identity, a display name, a display path and a media kind. Nothing is
// stored here: every call returns a new slice and ownership passes to the
// caller, which keeps the running queue on its side.
//
// Folder selection intentionally yields a single placeholder Item for the
// chosen folder rather than enumerating its contents; downstream consumers rely
// on that one-item shape.
package queue
