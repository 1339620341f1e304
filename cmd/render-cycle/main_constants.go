package main

// Default canvas in pixels
const (
	defaultWidth  = 800
	defaultHeight = 400
)

// CLI defaults
const (
	defaultFormat = "auto"
)
