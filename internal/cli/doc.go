// Package cli implements the textline-regions command-line interface.
//
// # Commands
//
//   - serve: Run the MCP server over stdio (the default) or HTTP
//   - merge: Group the lines of a lines document into regions
//   - detect: Find text lines in a page image and print a lines document
//   - render: Draw regions over a page and save a PNG
//   - ocr: Recognize region text with Tesseract
//
// A lines document is the JSON {"width": W, "height": H, "lines": [...]}
// that detect prints and merge, render and ocr read, so the commands chain:
//
//	textline-regions detect page.png | textline-regions merge --summary -
//
// # Configuration
//
// --config names a TOML file; TEXTLINE_* environment variables override it.
// --verbose forces debug logging. Logs go to stderr.
package cli
