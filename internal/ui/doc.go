// Package ui contains the Fyne-based desktop user interface. It owns the
// file list, collects the output options and drives the conversion service,
// rendering its progress. All UI strings are localized via Localization.
package ui
