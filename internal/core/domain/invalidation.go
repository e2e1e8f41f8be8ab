package domain

// Entity names a kind of server-side record whose changes can stale cached reads.
type Entity string

const (
	EntityScene       Entity = "scene"
	EntitySceneMarker Entity = "scene_marker"
	EntityPerformer   Entity = "performer"
	EntityStudio      Entity = "studio"
	EntityMovie       Entity = "movie"
	EntityTag         Entity = "tag"
	EntityGallery     Entity = "gallery"
	EntityConfig      Entity = "config"
)

// InvalidationRule lists the cache key prefixes a mutation evicts after it succeeds.
type InvalidationRule struct {
	// Mutation is the operation name of the mutation.
	Mutation string
	// Prefixes are evicted in order.
	Prefixes []string
	// Affects names the entities the mutation can change. The audit derives the
	// required prefixes from it.
	Affects []Entity
	// Retain lists root fields intentionally left cached even though they depend on an
	// affected entity, for example the current page of a bulk edit.
	Retain []string
	// Refetch names watched operations to refetch after eviction.
	Refetch []string
}

// ReadDependency declares which entities a root query field embeds in its result.
type ReadDependency struct {
	Field    string
	Entities []Entity
}

// DependsOn reports whether the field result embeds any of the given entities.
func (d ReadDependency) DependsOn(entities []Entity) bool {
	for _, want := range entities {
		for _, have := range d.Entities {
			if want == have {
				return true
			}
		}
	}
	return false
}
