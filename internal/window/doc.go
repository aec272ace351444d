// Package window tracks secondary UI surfaces by label and keeps the settings
// window a singleton.
//
// A Registry owns live Window handles and resolves lookup-or-create requests
// under a mutex. Surfaces are rendered by a Host: the events host notifies
// connected UI clients, the browser host additionally opens the route in the
// default browser, and the headless host renders nothing.
package window
