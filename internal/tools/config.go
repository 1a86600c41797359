package tools

type Config struct {
	// Token is the hosting credential. Empty disables the gated operations.
	Token string

	// ProjectsDir is the root holding one working tree per project.
	ProjectsDir string
	// Branch is cloned and pushed by the repository operations.
	Branch string
	// Remote is the remote rewritten and pushed by commit_and_push.
	Remote string
	// TemplateURL is the repository merged by merge_template_repository.
	TemplateURL string
}
