package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/image-converter/internal/config"
	"github.com/ytget/image-converter/internal/convert"
	"github.com/ytget/image-converter/internal/platform"
	"github.com/ytget/image-converter/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.image-converter"
	AppName = "Image Converter"

	WindowWidth  = 720
	WindowHeight = 640
)

func main() {
	fmt.Printf("Image Converter v%s starting...\n", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	outputDir := settings.GetOutputDirectory()
	if err := platform.CreateDirectoryIfNotExists(outputDir); err != nil {
		fmt.Printf("failed to ensure output dir: %v\n", err)
	}

	converter := convert.NewService()

	ui.NewRootUI(myWindow, myApp, converter)

	myWindow.ShowAndRun()
}
