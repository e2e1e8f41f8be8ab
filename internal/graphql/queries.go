package graphql

// Read operations. Each document holds one named operation; its root fields decide
// the cache keys.
const (
	FindGalleries = `query FindGalleries($filter: FindFilterType) {
  findGalleries(filter: $filter) {
    count
    galleries { id checksum path title scene { id title } }
  }
}`

	FindGallery = `query FindGallery($id: ID!) {
  findGallery(id: $id) { id checksum path title scene { id title } files { index name path } }
}`

	FindScenes = `query FindScenes($filter: FindFilterType, $scene_filter: SceneFilterType, $scene_ids: [Int!]) {
  findScenes(filter: $filter, scene_filter: $scene_filter, scene_ids: $scene_ids) {
    count
    scenes {
      id checksum title details url date rating o_counter path
      file { size duration video_codec width height }
      paths { screenshot preview stream }
      scene_markers { id title seconds }
      gallery { id path title }
      studio { id name image_path }
      movies { movie { id name } scene_index }
      tags { id name }
      performers { id name gender favorite image_path }
    }
  }
}`

	FindScene = `query FindScene($id: ID!, $checksum: String) {
  findScene(id: $id, checksum: $checksum) {
    id checksum title details url date rating o_counter path
    file { size duration video_codec audio_codec width height framerate bitrate }
    paths { screenshot preview stream webp vtt chapters_vtt }
    scene_markers { id title seconds primary_tag { id name } tags { id name } }
    is_streamable
    gallery { id path title }
    studio { id name image_path }
    movies { movie { id name front_image_path } scene_index }
    tags { id name }
    performers { id name gender birthdate favorite image_path }
  }
  sceneMarkerTags(scene_id: $id) {
    tag { id name }
    scene_markers { id title seconds }
  }
}`

	FindScenesByPathRegex = `query FindScenesByPathRegex($filter: FindFilterType) {
  findScenesByPathRegex(filter: $filter) {
    count
    scenes { id title path date rating studio { id name } tags { id name } performers { id name } }
  }
}`

	FindSceneMarkers = `query FindSceneMarkers($filter: FindFilterType, $scene_marker_filter: SceneMarkerFilterType) {
  findSceneMarkers(filter: $filter, scene_marker_filter: $scene_marker_filter) {
    count
    scene_markers {
      id title seconds stream preview
      scene { id title performers { id name } }
      primary_tag { id name }
      tags { id name }
    }
  }
}`

	FindStudios = `query FindStudios($filter: FindFilterType) {
  findStudios(filter: $filter) {
    count
    studios { id checksum name url image_path scene_count }
  }
}`

	FindStudio = `query FindStudio($id: ID!) {
  findStudio(id: $id) { id checksum name url image_path scene_count }
}`

	FindMovies = `query FindMovies($filter: FindFilterType) {
  findMovies(filter: $filter) {
    count
    movies { id checksum name aliases duration date rating director synopsis url front_image_path scene_count studio { id name } }
  }
}`

	FindMovie = `query FindMovie($id: ID!) {
  findMovie(id: $id) {
    id checksum name aliases duration date rating director synopsis url
    front_image_path back_image_path scene_count studio { id name }
  }
}`

	FindPerformers = `query FindPerformers($filter: FindFilterType, $performer_filter: PerformerFilterType) {
  findPerformers(filter: $filter, performer_filter: $performer_filter) {
    count
    performers { id checksum name url gender twitter instagram birthdate ethnicity country favorite image_path scene_count }
  }
}`

	FindPerformer = `query FindPerformer($id: ID!) {
  findPerformer(id: $id) {
    id checksum name url gender twitter instagram birthdate ethnicity country eye_color
    height measurements fake_tits career_length tattoos piercings aliases favorite image_path scene_count
  }
}`

	FindTags = `query FindTags($filter: FindFilterType) {
  findTags(filter: $filter) {
    count
    tags { id name scene_count scene_marker_count }
  }
}`

	FindTag = `query FindTag($id: ID!) {
  findTag(id: $id) { id name scene_count scene_marker_count }
}`

	AllTags = `query AllTags {
  allTags { id name scene_count scene_marker_count }
}`

	AllTagsForFilter = `query AllTagsForFilter {
  allTags { id name }
}`

	AllPerformersForFilter = `query AllPerformersForFilter {
  allPerformers { id name favorite image_path }
}`

	AllStudiosForFilter = `query AllStudiosForFilter {
  allStudios { id name }
}`

	AllMoviesForFilter = `query AllMoviesForFilter {
  allMovies { id name }
}`

	MarkerStrings = `query MarkerStrings($q: String, $sort: String) {
  markerStrings(q: $q, sort: $sort) { id count title }
}`

	ValidGalleriesForScene = `query ValidGalleriesForScene($scene_id: ID!) {
  validGalleriesForScene(scene_id: $scene_id) { id path }
}`

	Stats = `query Stats {
  stats { scene_count scene_size_count gallery_count performer_count studio_count movie_count tag_count }
}`

	Version = `query Version {
  version { version hash build_time }
}`

	LatestVersion = `query LatestVersion {
  latestversion { shorthash url }
}`

	Configuration = `query Configuration {
  configuration {
    general {
      stashes databasePath generatedPath cachePath maxTranscodeSize maxStreamingTranscodeSize
      username logFile logOut logLevel logAccess excludes scraperUserAgent
    }
    interface { soundOnPreview wallShowTitle maximumLoopDuration autostartVideo showStudioAsText css cssEnabled language }
  }
}`

	Directories = `query Directories($path: String) {
  directories(path: $path)
}`

	Logs = `query Logs {
  logs { time level message }
}`

	JobStatus = `query JobStatus {
  jobStatus { progress status message }
}`

	ListPerformerScrapers = `query ListPerformerScrapers {
  listPerformerScrapers { id name performer { urls supported_scrapes } }
}`

	ListSceneScrapers = `query ListSceneScrapers {
  listSceneScrapers { id name scene { urls supported_scrapes } }
}`

	ScrapePerformerList = `query ScrapePerformerList($scraper_id: ID!, $query: String!) {
  scrapePerformerList(scraper_id: $scraper_id, query: $query) { name url birthdate gender }
}`

	ScrapePerformer = `query ScrapePerformer($scraper_id: ID!, $scraped_performer: ScrapedPerformerInput!) {
  scrapePerformer(scraper_id: $scraper_id, scraped_performer: $scraped_performer) {
    name url twitter instagram birthdate ethnicity country eye_color height measurements
    fake_tits career_length tattoos piercings aliases gender
  }
}`

	ScrapePerformerURL = `query ScrapePerformerURL($url: String!) {
  scrapePerformerURL(url: $url) { name url twitter instagram birthdate ethnicity country gender }
}`

	ScrapeSceneURL = `query ScrapeSceneURL($url: String!) {
  scrapeSceneURL(url: $url) {
    title details url date
    studio { stored_id name url }
    tags { stored_id name }
    performers { stored_id name gender }
  }
}`

	ScrapeScene = `query ScrapeScene($scraper_id: ID!, $scene: SceneUpdateInput!) {
  scrapeScene(scraper_id: $scraper_id, scene: $scene) {
    title details url date
    studio { stored_id name url }
    tags { stored_id name }
    performers { stored_id name gender }
  }
}`

	ScrapeFreeones = `query ScrapeFreeones($performer_name: String!) {
  scrapeFreeones(performer_name: $performer_name) {
    name url twitter instagram birthdate ethnicity country eye_color height measurements
    fake_tits career_length tattoos piercings aliases
  }
}`

	ScrapeFreeonesPerformers = `query ScrapeFreeonesPerformers($q: String!) {
  scrapeFreeonesPerformerList(query: $q)
}`

	ParseSceneFilenames = `query ParseSceneFilenames($filter: FindFilterType!, $config: SceneParserInput!) {
  parseSceneFilenames(filter: $filter, config: $config) {
    count
    results { scene { id path } title details url date rating studio_id gallery_id performer_ids tag_ids }
  }
}`
)
