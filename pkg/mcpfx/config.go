package mcpfx

// Config holds the identity the tool server announces to clients.
type Config struct {
	// Name is reported in the initialize handshake.
	Name string

	// Version is reported in the initialize handshake.
	Version string

	// Instructions is optional guidance sent to clients on initialize.
	Instructions string
}
