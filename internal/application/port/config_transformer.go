package port

// ConfigTransformer transforms legacy config formats to current format.
type ConfigTransformer interface {
	// TransformLegacyLayout rewrites superseded layout settings in the
	// raw config map, in place, and describes each rewrite it applied.
	TransformLegacyLayout(rawConfig map[string]any) []string
}
