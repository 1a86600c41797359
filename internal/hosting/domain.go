package hosting

// Repository is a handle to a remote repository.
type Repository struct {
	Name     string
	CloneURL string // HTTPS clone URL
	SSHURL   string
	HTMLURL  string // Browse URL
}
