package graphql

import "go.trai.ch/stashql/internal/core/domain"

var (
	scene     = domain.EntityScene
	marker    = domain.EntitySceneMarker
	performer = domain.EntityPerformer
	studio    = domain.EntityStudio
	movie     = domain.EntityMovie
	tag       = domain.EntityTag
	gallery   = domain.EntityGallery
	config    = domain.EntityConfig
)

// ReadDependencies lists every cacheable root query field with the entities embedded
// in its result, counts included. The rule audit checks each mutation against it.
var ReadDependencies = []domain.ReadDependency{
	{Field: "findScenes", Entities: []domain.Entity{scene, marker, performer, studio, movie, tag, gallery}},
	{Field: "findScene", Entities: []domain.Entity{scene, marker, performer, studio, movie, tag, gallery}},
	{Field: "findScenesByPathRegex", Entities: []domain.Entity{scene, performer, studio, tag}},
	{Field: "findSceneMarkers", Entities: []domain.Entity{marker, scene, performer, tag}},
	{Field: "sceneMarkerTags", Entities: []domain.Entity{marker, tag}},
	{Field: "markerStrings", Entities: []domain.Entity{marker}},
	{Field: "findPerformers", Entities: []domain.Entity{performer, scene}},
	{Field: "findPerformer", Entities: []domain.Entity{performer, scene}},
	{Field: "allPerformers", Entities: []domain.Entity{performer}},
	{Field: "findStudios", Entities: []domain.Entity{studio, scene}},
	{Field: "findStudio", Entities: []domain.Entity{studio, scene}},
	{Field: "allStudios", Entities: []domain.Entity{studio}},
	{Field: "findMovies", Entities: []domain.Entity{movie, studio, scene}},
	{Field: "findMovie", Entities: []domain.Entity{movie, studio, scene}},
	{Field: "allMovies", Entities: []domain.Entity{movie}},
	{Field: "findTags", Entities: []domain.Entity{tag, scene, marker}},
	{Field: "findTag", Entities: []domain.Entity{tag, scene, marker}},
	{Field: "allTags", Entities: []domain.Entity{tag, scene, marker}},
	{Field: "findGalleries", Entities: []domain.Entity{gallery, scene}},
	{Field: "findGallery", Entities: []domain.Entity{gallery, scene}},
	{Field: "validGalleriesForScene", Entities: []domain.Entity{gallery, scene}},
	{Field: "parseSceneFilenames", Entities: []domain.Entity{scene}},
	{Field: "stats", Entities: []domain.Entity{scene, gallery, performer, studio, movie, tag}},
	{Field: "configuration", Entities: []domain.Entity{config}},
	{Field: "directories"},
	{Field: "version"},
	{Field: "latestversion"},
	{Field: "logs"},
	{Field: "jobStatus"},
	{Field: "listPerformerScrapers"},
	{Field: "listSceneScrapers"},
	{Field: "scrapePerformerList"},
	{Field: "scrapePerformer"},
	{Field: "scrapePerformerURL"},
	{Field: "scrapeSceneURL"},
	{Field: "scrapeScene"},
	{Field: "scrapeFreeones"},
	{Field: "scrapeFreeonesPerformerList"},
}

var (
	performerPrefixes = []string{
		"findPerformers", "findPerformer(", "allPerformers",
		"findScenes", "findScene(", "findSceneMarkers", "stats",
	}

	scenePrefixes = []string{
		"findScenes", "findScene(", "findSceneMarkers",
		"findPerformers", "findPerformer(",
		"findStudios", "findStudio(",
		"findMovies", "findMovie(",
		"findTags", "findTag(", "allTags",
		"findGalleries", "findGallery(", "validGalleriesForScene",
		"parseSceneFilenames", "stats",
	}

	// The bulk editor keeps its current page of scenes.
	sceneBulkPrefixes = []string{
		"findScene(", "findSceneMarkers",
		"findPerformers", "findPerformer(",
		"findStudios", "findStudio(",
		"findMovies", "findMovie(",
		"findTags", "findTag(", "allTags",
		"findGalleries", "findGallery(", "validGalleriesForScene",
		"parseSceneFilenames", "stats",
	}

	// The o-counter and the screenshot only render on scene reads.
	sceneOnlyPrefixes = []string{"findScenes", "findScene("}
	sceneOnlyRetain   = []string{
		"findSceneMarkers", "findPerformers", "findPerformer", "findStudios", "findStudio",
		"findMovies", "findMovie", "findTags", "findTag", "allTags",
		"findGalleries", "findGallery", "validGalleriesForScene", "parseSceneFilenames", "stats",
	}

	markerPrefixes = []string{
		"findSceneMarkers", "findScenes", "findScene(", "markerStrings", "sceneMarkerTags",
		"findTags", "findTag(", "allTags",
	}

	studioPrefixes = []string{
		"findStudios", "findStudio(", "allStudios",
		"findScenes", "findScene(", "findMovies", "findMovie(", "stats",
	}

	moviePrefixes = []string{
		"findMovies", "findMovie(", "allMovies",
		"findScenes", "findScene(", "stats",
	}

	tagPrefixes = []string{
		"allTags", "findTags", "findTag(", "sceneMarkerTags",
		"findScenes", "findScene(", "findSceneMarkers", "stats",
	}

	configPrefixes = []string{"configuration"}
)

// Rules is the invalidation table: one entry per mutation in the catalog.
var Rules = []domain.InvalidationRule{
	{Mutation: "PerformerCreate", Prefixes: performerPrefixes, Affects: []domain.Entity{performer}},
	{Mutation: "PerformerUpdate", Prefixes: performerPrefixes, Affects: []domain.Entity{performer}},
	{Mutation: "PerformerDestroy", Prefixes: performerPrefixes, Affects: []domain.Entity{performer}},

	{Mutation: "SceneUpdate", Prefixes: scenePrefixes, Affects: []domain.Entity{scene}, Refetch: []string{"AllTagsForFilter"}},
	{Mutation: "ScenesUpdate", Prefixes: scenePrefixes, Affects: []domain.Entity{scene}},
	{Mutation: "SceneDestroy", Prefixes: scenePrefixes, Affects: []domain.Entity{scene}},
	{
		Mutation: "BulkSceneUpdate",
		Prefixes: sceneBulkPrefixes,
		Affects:  []domain.Entity{scene},
		Retain:   []string{"findScenes", "findScenesByPathRegex"},
	},
	{Mutation: "SceneIncrementO", Prefixes: sceneOnlyPrefixes, Affects: []domain.Entity{scene}, Retain: sceneOnlyRetain},
	{Mutation: "SceneDecrementO", Prefixes: sceneOnlyPrefixes, Affects: []domain.Entity{scene}, Retain: sceneOnlyRetain},
	{Mutation: "SceneResetO", Prefixes: sceneOnlyPrefixes, Affects: []domain.Entity{scene}, Retain: sceneOnlyRetain},
	{Mutation: "SceneGenerateScreenshot", Prefixes: sceneOnlyPrefixes, Affects: []domain.Entity{scene}, Retain: sceneOnlyRetain},

	{Mutation: "SceneMarkerCreate", Prefixes: markerPrefixes, Affects: []domain.Entity{marker}, Refetch: []string{"FindScene"}},
	{Mutation: "SceneMarkerUpdate", Prefixes: markerPrefixes, Affects: []domain.Entity{marker}, Refetch: []string{"FindScene"}},
	{Mutation: "SceneMarkerDestroy", Prefixes: markerPrefixes, Affects: []domain.Entity{marker}, Refetch: []string{"FindScene"}},

	{Mutation: "StudioCreate", Prefixes: studioPrefixes, Affects: []domain.Entity{studio}},
	{Mutation: "StudioUpdate", Prefixes: studioPrefixes, Affects: []domain.Entity{studio}},
	{Mutation: "StudioDestroy", Prefixes: studioPrefixes, Affects: []domain.Entity{studio}},

	{Mutation: "MovieCreate", Prefixes: moviePrefixes, Affects: []domain.Entity{movie}},
	{Mutation: "MovieUpdate", Prefixes: moviePrefixes, Affects: []domain.Entity{movie}},
	{Mutation: "MovieDestroy", Prefixes: moviePrefixes, Affects: []domain.Entity{movie}},

	{Mutation: "TagCreate", Prefixes: tagPrefixes, Affects: []domain.Entity{tag}, Refetch: []string{"AllTags"}},
	{Mutation: "TagUpdate", Prefixes: tagPrefixes, Affects: []domain.Entity{tag}, Refetch: []string{"AllTags"}},
	{Mutation: "TagDestroy", Prefixes: tagPrefixes, Affects: []domain.Entity{tag}, Refetch: []string{"AllTags"}},

	{Mutation: "ConfigureGeneral", Prefixes: configPrefixes, Affects: []domain.Entity{config}, Refetch: []string{"Configuration"}},
	{Mutation: "ConfigureInterface", Prefixes: configPrefixes, Affects: []domain.Entity{config}, Refetch: []string{"Configuration"}},

	// Jobs run asynchronously; their effects arrive after the mutation returns.
	{Mutation: "MetadataScan"},
	{Mutation: "MetadataAutoTag"},
	{Mutation: "MetadataGenerate"},
	{Mutation: "MetadataClean"},
	{Mutation: "MetadataExport"},
	{Mutation: "MetadataImport"},
	{Mutation: "StopJob"},
}
