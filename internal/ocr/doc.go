// Package ocr recognizes the text of merged regions.
//
// Recognition runs line by line in each region's reading order, so the text
// of a region comes back in the order a person would read it. The Recognizer
// interface keeps the engine replaceable; Tesseract (via gosseract/v2) is the
// bundled implementation.
//
// # Prerequisites
//
// Tesseract and its language data must be installed:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// Vertical regions are recognized with Tesseract's vertical block mode. For
// Japanese or Chinese pages install the matching *_vert language data and set
// it as the vertical language.
//
// # Cancellation
//
// Tesseract calls cannot be interrupted. ReadRegions checks the context
// between lines, so a cancelled request stops after the line in flight.
package ocr
