package extract

import "errors"

var (
	// ErrExtraction is returned when a document cannot be read or holds no
	// text, e.g. a scanned PDF.
	ErrExtraction = errors.New("could not extract text from document")

	// ErrUnsupportedFile is returned for file types other than .txt, .pdf and
	// .docx.
	ErrUnsupportedFile = errors.New("unsupported file type")

	ErrFileTooLarge = errors.New("file is too large")
)
