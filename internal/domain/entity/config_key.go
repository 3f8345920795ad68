package entity

// ConfigKeyInfo describes a single setting or layout state key for listings.
type ConfigKeyInfo struct {
	// Key is the full dotted name (e.g., "workbench.sideBar.position")
	Key string `json:"key" yaml:"key"`

	// Type is the value class ("bool", "number", "string", "object")
	Type string `json:"type" yaml:"type"`

	// Default is the default value as a string representation
	Default string `json:"default" yaml:"default"`

	// Description explains the purpose of this key
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Values contains valid enum values (for string enums)
	Values []string `json:"values,omitempty" yaml:"values,omitempty"`

	// Section groups related keys: "workspace", "profile" or a settings group
	Section string `json:"section" yaml:"section"`
}
