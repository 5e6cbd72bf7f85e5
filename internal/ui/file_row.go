package ui

import (
	"fmt"
	"image/color"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// FileRow is a list row showing one selected file. It can be tapped to
// select it and dragged vertically to reorder it.
type FileRow struct {
	widget.BaseWidget

	index    int
	path     string
	selected bool
	dragging bool

	// UI components
	background *canvas.Rectangle
	handle     *widget.Label
	indexLabel *widget.Label
	nameLabel  *widget.Label
	dirLabel   *widget.Label

	gesture  *ReorderGesture
	onTapped func(index int)
}

// NewFileRow creates a new file row. gesture is shared by all rows of a list.
func NewFileRow(gesture *ReorderGesture, onTapped func(index int)) *FileRow {
	fr := &FileRow{
		index:    -1,
		gesture:  gesture,
		onTapped: onTapped,
	}
	fr.ExtendBaseWidget(fr)
	fr.createUI()
	return fr
}

// Bind points the row at the file at index
func (fr *FileRow) Bind(index int, path string, selected bool) {
	fr.index = index
	fr.path = path
	fr.selected = selected
	fr.updateFromFile()
}

// Index returns the list position the row currently shows
func (fr *FileRow) Index() int {
	return fr.index
}

func (fr *FileRow) createUI() {
	fr.background = canvas.NewRectangle(color.Transparent)

	fr.handle = widget.NewLabel(IconDrag)
	fr.indexLabel = widget.NewLabel("")
	fr.indexLabel.Alignment = fyne.TextAlignTrailing

	fr.nameLabel = widget.NewLabel("")
	fr.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	fr.nameLabel.Truncation = fyne.TextTruncateEllipsis

	fr.dirLabel = widget.NewLabel("")
	fr.dirLabel.Truncation = fyne.TextTruncateEllipsis
	fr.dirLabel.Importance = widget.LowImportance
}

func (fr *FileRow) updateFromFile() {
	if fr.index < 0 {
		fr.indexLabel.SetText("")
		fr.nameLabel.SetText("")
		fr.dirLabel.SetText("")
	} else {
		fr.indexLabel.SetText(fmt.Sprintf(RowIndexFormat, fr.index+1))
		fr.nameLabel.SetText(filepath.Base(fr.path))
		fr.dirLabel.SetText(filepath.Dir(fr.path))
	}
	fr.updateBackground()
}

func (fr *FileRow) updateBackground() {
	switch {
	case fr.dragging:
		fr.background.FillColor = theme.Color(theme.ColorNameHover)
	case fr.selected:
		fr.background.FillColor = theme.Color(theme.ColorNameSelection)
	default:
		fr.background.FillColor = color.Transparent
	}
	fr.background.Refresh()
}

// Tapped selects the row
func (fr *FileRow) Tapped(*fyne.PointEvent) {
	if fr.index >= 0 && fr.onTapped != nil {
		fr.onTapped(fr.index)
	}
}

// Dragged tracks vertical movement of the row
func (fr *FileRow) Dragged(e *fyne.DragEvent) {
	if fr.index < 0 || fr.gesture == nil {
		return
	}
	if !fr.gesture.Active() {
		fr.gesture.SetRowHeight(fr.Size().Height + theme.Padding())
		fr.gesture.Begin(fr.index)
		fr.dragging = true
		fr.updateBackground()
	}
	fr.gesture.Drag(e.Dragged.DY)
}

// DragEnd moves the file to the row it was dropped on
func (fr *FileRow) DragEnd() {
	if fr.gesture == nil {
		return
	}
	fr.dragging = false
	fr.updateBackground()
	fr.gesture.End()
}

// MinSize keeps rows readable in narrow windows
func (fr *FileRow) MinSize() fyne.Size {
	size := fr.BaseWidget.MinSize()
	return fyne.NewSize(fyne.Max(size.Width, RowMinWidth), fyne.Max(size.Height, RowMinHeight))
}

// CreateRenderer creates the widget renderer
func (fr *FileRow) CreateRenderer() fyne.WidgetRenderer {
	indexCell := container.NewStack(fixedWidth(IndexLabelWidth), fr.indexLabel)
	left := container.NewHBox(fr.handle, indexCell)
	text := container.NewGridWithColumns(2, fr.nameLabel, fr.dirLabel)
	content := container.NewBorder(nil, nil, left, nil, text)
	return widget.NewSimpleRenderer(container.NewStack(fr.background, content))
}

// fixedWidth returns a transparent spacer of width w
func fixedWidth(w float32) fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(w, 0))
	return spacer
}
