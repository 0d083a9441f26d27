package domain

// Target represents one compilable program in the workspace.
// It uses InternedString for fields that are frequently repeated to save memory.
type Target struct {
	Name         InternedString
	Toolchain    InternedString
	Source       InternedString
	Output       InternedString
	ExtraFlags   []string
	Dependencies []InternedString
	Environment  map[string]string
}

// Invocation is a fully resolved compiler command line, ready to execute.
type Invocation struct {
	Argv        []string
	WorkingDir  string
	Environment map[string]string
}
