package domain

// TaskRef references a build task that produces an artifact locally
// instead of it being fetched from a repository. Task paths follow the
// ":project:task" convention; the root project part may be empty.
type TaskRef struct {
	Project InternedString
	Name    InternedString
}

// NewTaskRef creates a TaskRef from project and task names.
func NewTaskRef(project, name string) TaskRef {
	return TaskRef{
		Project: NewInternedString(project),
		Name:    NewInternedString(name),
	}
}

// String returns the task path, e.g. ":engine:package" or ":assemble".
func (t TaskRef) String() string {
	return ":" + joinTaskPath(t.Project.String(), t.Name.String())
}

func joinTaskPath(project, name string) string {
	if project == "" {
		return name
	}
	return project + ":" + name
}
