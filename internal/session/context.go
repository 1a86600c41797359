// Package session holds the state shared between tool invocations.
package session

// Remote holds the URL variants of the repository bound to a project.
type Remote struct {
	CloneURL string
	SSHURL   string
	HTMLURL  string
}

// Context is the mutable record shared by every operation of a session.
// It is not safe for concurrent use; the transport serializes invocations.
type Context struct {
	projectName string
	remote      Remote
	projectPath string
}

// New creates an empty Context.
func New() *Context {
	return &Context{}
}

func (c *Context) ProjectName() string {
	return c.projectName
}

// SetProjectName sets the project name. Switching to a different name clears
// the remote and the local path so they can not leak into the new project.
func (c *Context) SetProjectName(name string) {
	if name != c.projectName {
		c.remote = Remote{}
		c.projectPath = ""
	}

	c.projectName = name
}

func (c *Context) Remote() Remote {
	return c.remote
}

// RepoURL returns the clone URL, or "" when no remote is bound.
func (c *Context) RepoURL() string {
	return c.remote.CloneURL
}

// SetRemote binds all URL variants at once.
func (c *Context) SetRemote(remote Remote) {
	c.remote = remote
}

func (c *Context) ProjectPath() string {
	return c.projectPath
}

func (c *Context) SetProjectPath(path string) {
	c.projectPath = path
}
