// Package convert runs the image conversion pipeline: one combined PDF or one
// output file per source image, with progress published to a single
// subscriber and at most one run active at a time.
package convert
