package model

// Package model defines domain data structures used across the app: the
// ordered input file list, conversion requests and runs, and progress/status
// enums. Structures are designed for direct binding in the UI and explicit
// state transitions.
