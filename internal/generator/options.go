package generator

// Options describes a generation request.
type Options struct {
	Length    int
	Upper     bool
	Digits    bool
	Special   bool
	Forbidden string
}

// DefaultOptions enables every category at length 16.
func DefaultOptions() Options {
	return Options{
		Length:  16,
		Upper:   true,
		Digits:  true,
		Special: true,
	}
}
