// Package tesseract implements the TextExtractor port with Tesseract OCR
// via gosseract. The binding needs CGO and libtesseract at build time; a
// pure Go build gets a stub that reports the extractor as unavailable so
// text capture keeps working without OCR.
package tesseract
