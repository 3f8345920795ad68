package port

// XDGPaths provides the XDG Base Directory locations shellgrid uses.
type XDGPaths interface {
	ConfigDir() (string, error)
	DataDir() (string, error)
	ConfigFile() (string, error)
	SchemaFile() (string, error)
	DatabaseFile() (string, error)
	ManDir() (string, error)
}
