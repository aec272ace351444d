package dialog

func autoBackend() backend { return powershell{} }
