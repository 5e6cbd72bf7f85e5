package model

import "sync"

// NoSelection is the cursor value when nothing is selected
const NoSelection = -1

// FileList is the ordered set of source image paths selected by the user.
// Order drives output order and combined PDF page order. Writers are expected
// to be the UI thread; the lock only makes snapshot reads from a worker safe.
type FileList struct {
	mu        sync.RWMutex
	paths     []string
	selected  int
	canAdd    bool
	onChanged func()
}

// NewFileList creates an empty file list
func NewFileList() *FileList {
	return &FileList{
		paths:    make([]string, 0),
		selected: NoSelection,
	}
}

// SetOnChanged sets the listener invoked after every mutation
func (l *FileList) SetOnChanged(callback func()) {
	l.mu.Lock()
	l.onChanged = callback
	l.mu.Unlock()
}

// SelectInitial replaces the whole list with paths, preserving their order
func (l *FileList) SelectInitial(paths []string) {
	l.mu.Lock()
	l.paths = append(make([]string, 0, len(paths)), paths...)
	l.selected = NoSelection
	l.canAdd = true
	l.mu.Unlock()

	l.notifyChanged()
}

// AddFiles appends paths to the end of the list
func (l *FileList) AddFiles(paths []string) {
	if len(paths) == 0 {
		return
	}

	l.mu.Lock()
	l.paths = append(l.paths, paths...)
	l.canAdd = true
	l.mu.Unlock()

	l.notifyChanged()
}

// CanAdd reports whether an initial selection has been made
func (l *FileList) CanAdd() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.canAdd
}

// RemoveAt removes the entry at index. It returns false and leaves the list
// untouched when index is out of range.
func (l *FileList) RemoveAt(index int) bool {
	l.mu.Lock()
	if index < 0 || index >= len(l.paths) {
		l.mu.Unlock()
		return false
	}

	l.paths = append(l.paths[:index], l.paths[index+1:]...)
	if len(l.paths) == 0 {
		l.selected = NoSelection
	} else {
		l.selected = min(index, len(l.paths)-1)
	}
	l.mu.Unlock()

	l.notifyChanged()
	return true
}

// Move removes the entry at oldIndex and reinserts it at newIndex of the
// shortened list. Equal or out-of-range indices are a no-op.
func (l *FileList) Move(oldIndex, newIndex int) bool {
	l.mu.Lock()
	n := len(l.paths)
	if oldIndex == newIndex || oldIndex < 0 || oldIndex >= n || newIndex < 0 || newIndex >= n {
		l.mu.Unlock()
		return false
	}

	item := l.paths[oldIndex]
	rest := append(l.paths[:oldIndex:oldIndex], l.paths[oldIndex+1:]...)

	moved := make([]string, 0, n)
	moved = append(moved, rest[:newIndex]...)
	moved = append(moved, item)
	moved = append(moved, rest[newIndex:]...)
	l.paths = moved

	l.selected = shiftedIndex(l.selected, oldIndex, newIndex)
	l.mu.Unlock()

	l.notifyChanged()
	return true
}

// shiftedIndex returns where the entry at index ends up after moving the
// entry at oldIndex to newIndex
func shiftedIndex(index, oldIndex, newIndex int) int {
	switch {
	case index == NoSelection:
		return NoSelection
	case index == oldIndex:
		return newIndex
	case oldIndex < index && index <= newIndex:
		return index - 1
	case newIndex <= index && index < oldIndex:
		return index + 1
	}
	return index
}

// Clear removes every entry
func (l *FileList) Clear() {
	l.mu.Lock()
	l.paths = l.paths[:0]
	l.selected = NoSelection
	l.mu.Unlock()

	l.notifyChanged()
}

// Len returns the number of entries
func (l *FileList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.paths)
}

// At returns the path at index and whether the index was valid
func (l *FileList) At(index int) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if index < 0 || index >= len(l.paths) {
		return "", false
	}
	return l.paths[index], true
}

// Paths returns a copy of the ordered paths
func (l *FileList) Paths() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append(make([]string, 0, len(l.paths)), l.paths...)
}

// Select moves the selection cursor; out-of-range values clear it
func (l *FileList) Select(index int) {
	l.mu.Lock()
	if index < 0 || index >= len(l.paths) {
		index = NoSelection
	}
	l.selected = index
	l.mu.Unlock()
}

// Selected returns the selection cursor or NoSelection
func (l *FileList) Selected() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.selected
}

// notifyChanged calls the change listener if set
func (l *FileList) notifyChanged() {
	l.mu.RLock()
	callback := l.onChanged
	l.mu.RUnlock()

	if callback != nil {
		callback()
	}
}
