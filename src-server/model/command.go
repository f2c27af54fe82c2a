package model

// A single string parameter of a slash command
type CommandOption struct {
	Name        string `yaml:"name"`        // required
	Description string `yaml:"description"` // required
	Required    bool   `yaml:"required"`
}

// Static definition of a slash command, loaded once at startup
type CommandDefinition struct {
	Name        string          `yaml:"name"`        // required, unique
	Description string          `yaml:"description"` // required
	Options     []CommandOption `yaml:"options"`
}
