// Package api implements the UI command surface and its wire-format types.
//
// # Commands
//
// Service exposes one method per UI command: pick_files, pick_folder,
// pick_output, open_output, open_settings_window, pick_ffmpeg, check_ffmpeg,
// start_conversion, stop_conversion. Invoke dispatches a command by name with
// a JSON argument object, which is how the HTTP and IPC transports call in.
//
// # Failure model
//
// Commands absorb their own failures. A cancelled or failed dialog yields an
// empty result, a handler that cannot start is logged and ignored, and a
// window that cannot be built is logged and ignored. Only transport problems
// (unknown command names, malformed arguments) surface as errors.
//
// # Design Notes
//
// DTOs use camelCase JSON tags for JavaScript/TypeScript consumers. Queue
// items pass through as queue.Item, whose wire shape is {id, name, path, kind}.
package api
