package config

// Workspace represents the structure of the mk.yaml configuration file.
type Workspace struct {
	Version string               `yaml:"version"`
	Targets map[string]TargetDTO `yaml:"targets"`
}

// TargetDTO represents a target definition in the configuration.
type TargetDTO struct {
	Toolchain   string            `yaml:"toolchain"`
	Source      string            `yaml:"source"`
	Output      string            `yaml:"output"`
	Flags       []string          `yaml:"flags"`
	DependsOn   []string          `yaml:"dependsOn"`
	Environment map[string]string `yaml:"environment"`
}
