package docload

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// readTextFile reads a whole text file and decodes it under the declared
// encoding. The file handle lives only for the duration of the read.
func readTextFile(path, encodingName string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return decodeText(data, encodingName, path)
}

func decodeText(data []byte, encodingName, path string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(encodingName)) {
	case "", "utf-8", "utf8":
		// The stdlib happily carries invalid UTF-8 around in strings, so
		// run the validator instead of decoding.
		if _, _, err := transform.Bytes(encoding.UTF8Validator, data); err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
		}
		return string(data), nil
	}

	enc, err := ianaindex.IANA.Encoding(encodingName)
	if err != nil || enc == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, encodingName)
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: %s (%s): %v", ErrDecode, path, encodingName, err)
	}
	return string(decoded), nil
}
