package absa

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrPathNotFound indicates an input path does not exist.
	ErrPathNotFound = errors.New("absa: input path not found")

	// ErrUnsupportedExtension indicates an input file has a suffix the
	// scorer does not accept.
	ErrUnsupportedExtension = errors.New("absa: unsupported file extension")

	// ErrUnknownDocument indicates a prediction references a document
	// absent from the gold standard.
	ErrUnknownDocument = errors.New("absa: prediction references unknown document")

	// ErrZeroDenominator indicates a reported ratio has an empty
	// denominator, such as an empty gold standard or no matched pairs.
	ErrZeroDenominator = errors.New("absa: zero denominator in ratio")
)
