package tools

const (
	msgTokenMissing   = "GITHUB_TOKEN is missing. Cannot process any requests."
	msgClientNotReady = "GitHub client not initialized. Check your GITHUB_TOKEN."

	msgNoProjectName       = "No project name set. Use set_project_name first."
	msgNoProjectNameCreate = "No project name set. Use get_project_name first."
	msgNoProjectNameError  = "Error: No project name set. Use set_project_name first."
	msgNoProjectPath       = "No project path found. Clone repository first with clone_repository."
	msgNoRemote            = "No repository URL or project name found. Set project name first."
)
