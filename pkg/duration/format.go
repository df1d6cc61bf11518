package duration

import "fmt"

var defaultSerializer *Serializer

func init() {
	var err error
	defaultSerializer, err = NewSerializer(DefaultConfig())
	if err != nil {
		panic(fmt.Sprintf("failed to create default serializer: %v", err))
	}
}

// Default returns the serializer used by the package-level functions.
func Default() *Serializer {
	return defaultSerializer
}

// Format encodes input as an ISO 8601 duration string.
//
//	Format(map[string]any{"years": 1, "hours": 6}) // "P1YT6H"
//	Format(6000)                                   // "PT6S"
func Format(input any) (string, error) {
	return defaultSerializer.Format(input)
}

// MustFormat is like Format but panics if input cannot be parsed.
func MustFormat(input any) string {
	s, err := Format(input)
	if err != nil {
		panic(err)
	}
	return s
}
