// Package graphql holds the operation documents the client issues, the invalidation
// rule table and the read dependency table the rules are audited against.
package graphql

import (
	"sort"

	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/stashql/internal/engine/rootfields"
	"go.trai.ch/zerr"
)

// Documents returns every operation document of the client.
func Documents() []string {
	return []string{
		FindGalleries, FindGallery,
		FindScenes, FindScene, FindScenesByPathRegex,
		FindSceneMarkers, MarkerStrings, ValidGalleriesForScene,
		FindStudios, FindStudio,
		FindMovies, FindMovie,
		FindPerformers, FindPerformer,
		FindTags, FindTag,
		AllTags, AllTagsForFilter, AllPerformersForFilter, AllStudiosForFilter, AllMoviesForFilter,
		Stats, Version, LatestVersion, Configuration, Directories, Logs, JobStatus,
		ListPerformerScrapers, ListSceneScrapers,
		ScrapePerformerList, ScrapePerformer, ScrapePerformerURL,
		ScrapeSceneURL, ScrapeScene, ScrapeFreeones, ScrapeFreeonesPerformers,
		ParseSceneFilenames,

		PerformerCreate, PerformerUpdate, PerformerDestroy,
		SceneUpdate, BulkSceneUpdate, ScenesUpdate, SceneDestroy,
		SceneIncrementO, SceneDecrementO, SceneResetO, SceneGenerateScreenshot,
		SceneMarkerCreate, SceneMarkerUpdate, SceneMarkerDestroy,
		StudioCreate, StudioUpdate, StudioDestroy,
		MovieCreate, MovieUpdate, MovieDestroy,
		TagCreate, TagUpdate, TagDestroy,
		ConfigureGeneral, ConfigureInterface,
		MetadataScan, MetadataAutoTag, MetadataGenerate, MetadataClean, MetadataExport, MetadataImport,
		StopJob,

		MetadataUpdate, LoggingSubscribe,
	}
}

// Catalog indexes parsed operations by name.
type Catalog struct {
	ops map[string]*domain.Operation
}

// NewCatalog parses the documents. Each must hold one uniquely named operation.
func NewCatalog(documents ...string) (*Catalog, error) {
	c := &Catalog{ops: make(map[string]*domain.Operation, len(documents))}
	for _, doc := range documents {
		op, err := rootfields.Parse(doc)
		if err != nil {
			return nil, err
		}
		if _, dup := c.ops[op.Name]; dup {
			return nil, zerr.With(domain.ErrDuplicateOperation, "operation", op.Name)
		}
		c.ops[op.Name] = op
	}
	return c, nil
}

// Default returns the catalog of every built-in document.
func Default() (*Catalog, error) {
	return NewCatalog(Documents()...)
}

// Lookup returns the operation with the given name.
func (c *Catalog) Lookup(name string) (*domain.Operation, error) {
	op, ok := c.ops[name]
	if !ok {
		return nil, zerr.With(domain.ErrOperationNotFound, "operation", name)
	}
	return op, nil
}

// Operations returns every operation sorted by name.
func (c *Catalog) Operations() []*domain.Operation {
	out := make([]*domain.Operation, 0, len(c.ops))
	for _, op := range c.ops {
		out = append(out, op)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the sorted names of the operations of one kind.
func (c *Catalog) Names(kind domain.OperationKind) []string {
	var out []string
	for name, op := range c.ops {
		if op.Kind == kind {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
