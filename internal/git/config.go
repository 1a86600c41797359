package git

type Config struct {
	// Binary is the git executable, resolved through PATH when not absolute.
	Binary string
}
