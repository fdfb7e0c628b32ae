// golang.design/x/clipboard panics without cgo on most platforms,
// even though Init returns an error.
// Clipboard hotkeys do nothing here.

//go:build js || (!windows && !cgo)

package main

var TheClipboardManager struct {
	Initialized bool
}

func InitClipboardManager() {
	InfoLogger.Print("initializing clipboard")
	ErrorLogger.Printf("clipboard is disabled")
}

func ClipboardWriteText(str string) {
}

func ClipboardReadText() string {
	return ""
}
