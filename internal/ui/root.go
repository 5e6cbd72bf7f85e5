package ui

import (
	"errors"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/image-converter/internal/config"
	"github.com/ytget/image-converter/internal/convert"
	"github.com/ytget/image-converter/internal/model"
	"github.com/ytget/image-converter/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	converter    convert.Converter
	settings     *config.Settings
	localization *Localization
	files        *model.FileList
	gesture      *ReorderGesture
	openFile     func(path string) error

	// File section
	headerLabel     *widget.Label
	countLabel      *widget.Label
	fileList        *widget.List
	selectFilesBtn  *widget.Button
	addFilesBtn     *widget.Button
	selectFolderBtn *widget.Button
	removeBtn       *widget.Button
	clearBtn        *widget.Button
	upBtn           *widget.Button
	downBtn         *widget.Button

	// Options and progress
	formatLabel  *widget.Label
	formatRadio  *widget.RadioGroup
	combineCheck *widget.Check
	progressBar  *widget.ProgressBar
	statusLabel  *widget.Label
	convertBtn   *widget.Button
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, converter convert.Converter) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		converter:    converter,
		settings:     settings,
		localization: localization,
		files:        model.NewFileList(),
		openFile:     platform.OpenFileWithDefaultApp,
	}
	ui.gesture = NewReorderGesture(RowMinHeight, ui.files.Len, ui.onMoveFile)

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.files.SetOnChanged(ui.refreshFiles)
	ui.converter.SetUpdateCallback(ui.onProgress)

	ui.setupUI()
	window.SetOnDropped(ui.onDropped)

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()
	l := ui.localization

	// File buttons
	ui.selectFilesBtn = widget.NewButtonWithIcon(l.GetText(KeySelectFiles), theme.FileImageIcon(), ui.onSelectFiles)
	ui.addFilesBtn = widget.NewButtonWithIcon(l.GetText(KeyAddFiles), theme.ContentAddIcon(), ui.onAddFiles)
	ui.addFilesBtn.Disable()
	ui.selectFolderBtn = widget.NewButtonWithIcon(l.GetText(KeySelectFolder), theme.FolderOpenIcon(), ui.onSelectFolder)
	ui.removeBtn = widget.NewButtonWithIcon(l.GetText(KeyRemove), theme.ContentRemoveIcon(), ui.onRemoveSelected)
	ui.clearBtn = widget.NewButtonWithIcon(l.GetText(KeyClear), theme.ContentClearIcon(), ui.onClear)
	ui.upBtn = widget.NewButtonWithIcon(l.GetText(KeyMoveUp), theme.MoveUpIcon(), ui.onMoveUp)
	ui.downBtn = widget.NewButtonWithIcon(l.GetText(KeyMoveDown), theme.MoveDownIcon(), ui.onMoveDown)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	toolbar := container.NewBorder(nil, nil,
		container.NewHBox(ui.selectFilesBtn, ui.addFilesBtn, ui.selectFolderBtn),
		settingsBtn,
	)
	listTools := container.NewHBox(ui.removeBtn, ui.clearBtn, widget.NewSeparator(), ui.upBtn, ui.downBtn)

	// File list
	ui.headerLabel = widget.NewLabel(l.GetText(KeyFilesHeader))
	ui.headerLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.countLabel = widget.NewLabel("")
	ui.countLabel.Alignment = fyne.TextAlignTrailing

	ui.fileList = widget.NewList(
		ui.files.Len,
		func() fyne.CanvasObject { return NewFileRow(ui.gesture, ui.onRowTapped) },
		ui.updateFileItem,
	)

	listHeader := container.NewBorder(nil, nil, ui.headerLabel, ui.countLabel)
	listArea := canvas.NewRectangle(color.Transparent)
	listArea.SetMinSize(fyne.NewSize(RowMinWidth, ListMinHeight))
	listBox := container.NewBorder(listHeader, listTools, nil, nil, container.NewStack(listArea, ui.fileList))

	// Output options
	ui.formatLabel = widget.NewLabel(l.GetText(KeyOutputFormat) + ":")
	ui.formatRadio = widget.NewRadioGroup(formatOptions(), ui.onFormatChanged)
	ui.formatRadio.Horizontal = true
	ui.formatRadio.Required = true

	ui.combineCheck = widget.NewCheck(l.GetText(KeyCombinePDF), func(checked bool) {
		ui.settings.SetCombinePDF(checked)
	})
	ui.combineCheck.SetChecked(ui.settings.GetCombinePDF())
	ui.formatRadio.SetSelected(formatLabel(ui.settings.GetOutputFormat()))

	// Progress
	ui.progressBar = widget.NewProgressBar()
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignCenter

	ui.convertBtn = widget.NewButtonWithIcon(l.GetText(KeyConvert), theme.DocumentSaveIcon(), ui.onConvertClick)
	ui.convertBtn.Importance = widget.HighImportance

	bottom := container.NewVBox(
		widget.NewSeparator(),
		container.NewHBox(ui.formatLabel, ui.formatRadio),
		ui.combineCheck,
		ui.progressBar,
		ui.statusLabel,
		ui.convertBtn,
	)

	content := container.NewBorder(toolbar, bottom, nil, nil, listBox)
	ui.window.SetContent(container.NewPadded(content))

	ui.applyProgress(ui.converter.Progress())
	ui.refreshFiles()

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(KeyAppTitle))

	ui.selectFilesBtn.SetText(l.GetText(KeySelectFiles))
	ui.addFilesBtn.SetText(l.GetText(KeyAddFiles))
	ui.selectFolderBtn.SetText(l.GetText(KeySelectFolder))
	ui.removeBtn.SetText(l.GetText(KeyRemove))
	ui.clearBtn.SetText(l.GetText(KeyClear))
	ui.upBtn.SetText(l.GetText(KeyMoveUp))
	ui.downBtn.SetText(l.GetText(KeyMoveDown))
	ui.headerLabel.SetText(l.GetText(KeyFilesHeader))
	ui.formatLabel.SetText(l.GetText(KeyOutputFormat) + ":")
	ui.combineCheck.Text = l.GetText(KeyCombinePDF)
	ui.combineCheck.Refresh()
	ui.convertBtn.SetText(l.GetText(KeyConvert))

	ui.applyProgress(ui.converter.Progress())
	ui.refreshFiles()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		if ui.localization.GetCurrentLanguage() != ui.settings.GetLanguage() {
			ui.localization.SetLanguage(ui.settings.GetLanguage())
			ui.refreshUITexts()
			ui.createMenu()
		}
	}).Show()
}

// File list handling

func (ui *RootUI) updateFileItem(id widget.ListItemID, item fyne.CanvasObject) {
	row, ok := item.(*FileRow)
	if !ok {
		return
	}
	path, ok := ui.files.At(id)
	if !ok {
		return
	}
	row.Bind(id, path, ui.files.Selected() == id)
}

// refreshFiles re-renders the list after the file set changed
func (ui *RootUI) refreshFiles() {
	n := ui.files.Len()
	ui.countLabel.SetText(ui.localization.Format(KeyFileCount, n))

	if ui.files.CanAdd() {
		ui.addFilesBtn.Enable()
	}
	ui.updateListButtons()
	ui.fileList.Refresh()
}

func (ui *RootUI) updateListButtons() {
	n := ui.files.Len()
	selected := ui.files.Selected()

	setEnabled(ui.clearBtn, n > 0)
	setEnabled(ui.removeBtn, selected >= 0)
	setEnabled(ui.upBtn, selected > 0)
	setEnabled(ui.downBtn, selected >= 0 && selected < n-1)
}

func (ui *RootUI) onRowTapped(index int) {
	ui.files.Select(index)
	ui.updateListButtons()
	ui.fileList.Refresh()
}

func (ui *RootUI) onMoveFile(from, to int) {
	if ui.files.Move(from, to) {
		log.Printf("Moved file from position %d to %d", from+1, to+1)
	}
}

func (ui *RootUI) onMoveUp() {
	if i := ui.files.Selected(); i > 0 {
		ui.onMoveFile(i, i-1)
	}
}

func (ui *RootUI) onMoveDown() {
	if i := ui.files.Selected(); i >= 0 && i < ui.files.Len()-1 {
		ui.onMoveFile(i, i+1)
	}
}

func (ui *RootUI) onRemoveSelected() {
	ui.files.RemoveAt(ui.files.Selected())
}

func (ui *RootUI) onClear() {
	ui.files.Clear()
}

// onSelectFiles replaces the list with the chosen file
func (ui *RootUI) onSelectFiles() {
	ui.showImageOpenDialog(func(path string) {
		ui.files.SelectInitial([]string{path})
	})
}

// onAddFiles appends the chosen file to the list
func (ui *RootUI) onAddFiles() {
	ui.showImageOpenDialog(func(path string) {
		ui.files.AddFiles([]string{path})
	})
}

// onSelectFolder replaces the list with every image in a folder
func (ui *RootUI) onSelectFolder() {
	fd := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.showError(err)
			return
		}
		if uri == nil {
			return
		}

		paths, err := platform.ListImageFiles(uri.Path())
		if err != nil {
			ui.showError(err)
			return
		}
		if len(paths) == 0 {
			dialog.ShowInformation(ui.localization.GetText(KeyWarning), ui.localization.GetText(KeyNoImagesInFolder), ui.window)
			return
		}

		ui.settings.SetLastInputDirectory(uri.Path())
		ui.files.SelectInitial(paths)
	}, ui.window)
	ui.setDialogLocation(fd, ui.settings.GetLastInputDirectory())
	fd.Show()
}

func (ui *RootUI) showImageOpenDialog(onChosen func(path string)) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			ui.showError(err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		ui.settings.SetLastInputDirectory(filepath.Dir(path))
		onChosen(path)
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter(platform.AcceptedImageExtensions))
	ui.setDialogLocation(fd, ui.settings.GetLastInputDirectory())
	fd.Show()
}

// onDropped adds image files and folders dropped onto the window
func (ui *RootUI) onDropped(_ fyne.Position, uris []fyne.URI) {
	var paths []string
	for _, uri := range uris {
		path := uri.Path()
		info, err := os.Stat(path)
		if err != nil {
			log.Printf("Ignoring dropped item %s: %v", path, err)
			continue
		}
		if info.IsDir() {
			dirFiles, err := platform.ListImageFiles(path)
			if err != nil {
				log.Printf("Failed to list dropped folder %s: %v", path, err)
				continue
			}
			paths = append(paths, dirFiles...)
			continue
		}
		if platform.IsImageFile(path) {
			paths = append(paths, path)
		}
	}
	ui.addPaths(paths)
}

// addPaths appends to a non-empty list and starts a new one otherwise
func (ui *RootUI) addPaths(paths []string) {
	if len(paths) == 0 {
		return
	}
	if ui.files.Len() == 0 {
		ui.files.SelectInitial(paths)
		return
	}
	ui.files.AddFiles(paths)
}

// Output options

func (ui *RootUI) selectedFormat() model.Format {
	format, err := model.ParseFormat(ui.formatRadio.Selected)
	if err != nil {
		return config.DefaultOutputFormat
	}
	return format
}

func (ui *RootUI) onFormatChanged(string) {
	format := ui.selectedFormat()
	ui.settings.SetOutputFormat(format)
	setEnabled(ui.combineCheck, format == model.FormatPDF)
}

// buildRequest snapshots the current selection into a conversion request
func (ui *RootUI) buildRequest(destination string) model.ConversionRequest {
	format := ui.selectedFormat()
	return model.ConversionRequest{
		Files:       ui.files.Paths(),
		Format:      format,
		Combine:     format == model.FormatPDF && ui.combineCheck.Checked,
		Destination: destination,
	}
}

// Conversion

func (ui *RootUI) onConvertClick() {
	if ui.files.Len() == 0 {
		dialog.ShowInformation(ui.localization.GetText(KeyWarning), ui.localization.GetText(KeySelectFilesFirst), ui.window)
		return
	}
	if ui.converter.IsRunning() {
		dialog.ShowInformation(ui.localization.GetText(KeyWarning), ui.localization.GetText(KeyConversionRunning), ui.window)
		return
	}

	if req := ui.buildRequest(""); req.IsCombined() {
		ui.chooseCombinedDestination(ui.startConversion)
	} else {
		ui.chooseOutputDirectory(ui.startConversion)
	}
}

// chooseCombinedDestination asks where to save the combined PDF
func (ui *RootUI) chooseCombinedDestination(onChosen func(dest string)) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			ui.showError(err)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		ui.onCombinedDestination(path, onChosen)
	}, ui.window)
	fd.SetFileName(DefaultCombinedFileName)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{PDFExtension}))
	ui.setDialogLocation(fd, ui.settings.GetOutputDirectory())
	fd.Show()
}

// onCombinedDestination accepts the file picked in the save dialog. The
// dialog has already opened it, so the name is used as chosen even without
// a .pdf extension.
func (ui *RootUI) onCombinedDestination(path string, onChosen func(dest string)) {
	if !strings.EqualFold(filepath.Ext(path), PDFExtension) {
		log.Printf("Combined PDF destination %s has no %s extension", path, PDFExtension)
	}
	ui.settings.SetOutputDirectory(filepath.Dir(path))
	onChosen(path)
}

// chooseOutputDirectory asks for the directory per-file outputs go to
func (ui *RootUI) chooseOutputDirectory(onChosen func(dir string)) {
	fd := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.showError(err)
			return
		}
		if uri == nil {
			return
		}
		ui.settings.SetOutputDirectory(uri.Path())
		onChosen(uri.Path())
	}, ui.window)
	ui.setDialogLocation(fd, ui.settings.GetOutputDirectory())
	fd.Show()
}

// startConversion hands the request to the converter
func (ui *RootUI) startConversion(destination string) {
	req := ui.buildRequest(destination)

	run, err := ui.converter.Start(req, ui.onRunDone)
	if err != nil {
		if convert.IsUserInputError(err) {
			dialog.ShowInformation(ui.localization.GetText(KeyWarning), ui.localization.GetText(KeySelectFilesFirst), ui.window)
			return
		}
		ui.showError(err)
		return
	}

	log.Printf("Started conversion %s", run.ID)
	ui.convertBtn.Disable()
}

// onProgress receives progress from the conversion goroutine
func (ui *RootUI) onProgress(p model.Progress) {
	fyne.Do(func() {
		ui.applyProgress(p)
	})
}

func (ui *RootUI) applyProgress(p model.Progress) {
	ui.progressBar.SetValue(p.Fraction())
	ui.statusLabel.SetText(ui.statusText(p))
}

// statusText returns the localized status line for p
func (ui *RootUI) statusText(p model.Progress) string {
	l := ui.localization
	switch p.Phase {
	case model.PhaseCombining:
		return l.GetText(KeyStatusCombining)
	case model.PhaseConverting:
		return l.Format(KeyStatusConverting, p.File, p.Total)
	case model.PhaseCompleted:
		return l.GetText(KeyStatusCompleted)
	default:
		return l.GetText(KeyStatusReady)
	}
}

// onRunDone is called by the converter once a run has finished
func (ui *RootUI) onRunDone(run *model.ConversionRun) {
	fyne.Do(func() {
		ui.finishRun(run)
	})
}

func (ui *RootUI) finishRun(run *model.ConversionRun) {
	if !run.State.IsFinished() {
		log.Printf("Conversion %s reported done in state %s", run.ID, run.State)
		return
	}
	ui.convertBtn.Enable()

	if run.State != model.RunStateCompleted {
		ui.showError(errors.New(run.LastError))
		return
	}

	if ui.settings.GetRevealOnComplete() && len(run.Outputs) > 0 {
		ui.revealOutput(run)
	}
	if run.Request.IsCombined() && len(run.Outputs) == 1 {
		ui.showOpenResult(run.Outputs[0])
		return
	}
	dialog.ShowInformation(ui.localization.GetText(KeySuccess), ui.localization.GetText(KeyConvertSuccess), ui.window)
}

// showOpenResult reports success and offers to open the combined PDF
func (ui *RootUI) showOpenResult(path string) {
	l := ui.localization
	message := widget.NewLabel(l.GetText(KeyConvertSuccess) + "\n" + filepath.Base(path))
	confirm := dialog.NewCustomConfirm(l.GetText(KeySuccess), l.GetText(KeyOpenPDF), l.GetText(KeyClose), message, func(open bool) {
		if !open {
			return
		}
		if err := ui.openFile(path); err != nil {
			log.Printf("Error opening %s: %v", path, err)
			dialog.ShowInformation(l.GetText(KeyError), l.GetText(KeyErrorOpeningFile)+": "+err.Error(), ui.window)
		}
	}, ui.window)
	confirm.Show()
}

func (ui *RootUI) revealOutput(run *model.ConversionRun) {
	target := run.Request.Destination
	if run.Request.IsCombined() {
		target = run.Outputs[0]
	}
	if err := platform.OpenFileInManager(target); err != nil {
		log.Printf("Error revealing %s: %v", target, err)
		dialog.ShowInformation(ui.localization.GetText(KeyError), ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error(), ui.window)
	}
}

func (ui *RootUI) showError(err error) {
	log.Printf("Error: %v", err)
	dialog.ShowError(errors.New(ui.localization.Format(KeyErrorOccurred, err.Error())), ui.window)
}

// setDialogLocation opens a file dialog in dir when it exists
func (ui *RootUI) setDialogLocation(fd interface{ SetLocation(fyne.ListableURI) }, dir string) {
	if dir == "" {
		return
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		return
	}
	fd.SetLocation(lister)
}

// Helpers

func formatOptions() []string {
	formats := model.Formats()
	options := make([]string, 0, len(formats))
	for _, f := range formats {
		options = append(options, formatLabel(f))
	}
	return options
}

func formatLabel(f model.Format) string {
	return strings.ToUpper(string(f))
}

type disableable interface {
	Enable()
	Disable()
}

func setEnabled(w disableable, enabled bool) {
	if enabled {
		w.Enable()
	} else {
		w.Disable()
	}
}
