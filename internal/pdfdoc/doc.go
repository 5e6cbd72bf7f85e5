// Package pdfdoc writes page-per-image PDF documents and reads back basic
// page information from existing files.
//
// Pages are measured in points and sized to the image they hold, so a
// 640x480 pixel image becomes a 640x480 pt page.
package pdfdoc
