package dialog

func autoBackend() backend { return osascript{} }
