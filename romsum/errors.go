package romsum

import "errors"

var (
	ErrorImageTooSmall = errors.New("Image is too small")
	ErrorUnaligned     = errors.New("Address alignment has been violated")
	ErrorOutOfBounds   = errors.New("Access is out of bounds")
	ErrorInvalidOffset = errors.New("Injection offset is invalid")
	ErrorInvalidChoice = errors.New("Unknown injection method")
	ErrorComputation   = errors.New("Checksum computation error")
)
