package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/okanri/fman/model"
)

var (
	SuccessColor = color.New(color.FgGreen)
	WarningColor = color.New(color.FgYellow)
	ErrorColor   = color.New(color.FgRed)
)

func Success(format string, a ...interface{}) {
	SuccessColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Warning(format string, a ...interface{}) {
	WarningColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Error(format string, a ...interface{}) {
	ErrorColor.Fprintf(os.Stderr, format+"\n", a...)
}

// PrintResult reports one command's outcome. A nil document means the
// command settled quietly (cancelled, or no active file).
func PrintResult(res model.Result) {
	if res.Doc == nil {
		return
	}
	if res.Message != "" {
		Success("%s", res.Message)
	}
	fmt.Println(res.Doc.Path)
}
