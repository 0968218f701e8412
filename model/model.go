package model

// Document is a handle to the file a command produced or targeted.
type Document struct {
	Path    string // absolute, platform-normalized path
	Existed bool   // the target already existed before the command ran
	Opened  bool   // the file was opened as the active editor document
}

// Result holds the outcome of one command run for display.
type Result struct {
	Command string
	Doc     *Document
	Message string
}
