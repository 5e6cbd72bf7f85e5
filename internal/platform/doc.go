// Package platform contains OS integration helpers: filesystem utilities,
// image file discovery and opening results in the system file manager.
package platform
