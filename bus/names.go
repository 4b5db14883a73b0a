package bus

import "strings"

// validateName enforces the name contract: ASCII, length in [2, 48),
// beginning with '/'.
func validateName(name string) error {
	if len(name) < minNameLength || len(name) >= maxNameLength {
		return ErrInvalidName
	}
	if !strings.HasPrefix(name, "/") {
		return ErrInvalidName
	}
	for i := 0; i < len(name); i++ {
		if name[i] > 127 {
			return ErrInvalidName
		}
	}
	return nil
}

// validatePayload enforces the payload size cap. A nil payload is valid
// (zero-length message); it's only rejected if it exceeds the cap.
func validatePayload(payload []byte) error {
	if len(payload) > PayloadCapacity {
		return ErrInvalidPayload
	}
	return nil
}
