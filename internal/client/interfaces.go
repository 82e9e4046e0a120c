package client

// Client is a runnable vault application.
type Client interface {
	// Run blocks until the user quits or the process is signalled.
	Run() error
}
