package ports

// FilterModel is a list filter that knows how to render itself into the wire
// variables of each list operation.
type FilterModel interface {
	FindFilter() map[string]any
	SceneFilter() map[string]any
	SceneMarkerFilter() map[string]any
	PerformerFilter() map[string]any
}
