package graphql

// Write operations. Every mutation has an entry in the rule table, even when it
// evicts nothing.
const (
	PerformerCreate = `mutation PerformerCreate($input: PerformerCreateInput!) {
  performerCreate(input: $input) { id name }
}`

	PerformerUpdate = `mutation PerformerUpdate($input: PerformerUpdateInput!) {
  performerUpdate(input: $input) { id name gender favorite image_path }
}`

	PerformerDestroy = `mutation PerformerDestroy($id: ID!) {
  performerDestroy(input: { id: $id })
}`

	SceneUpdate = `mutation SceneUpdate($input: SceneUpdateInput!) {
  sceneUpdate(input: $input) { id title rating tags { id name } performers { id name } studio { id name } }
}`

	BulkSceneUpdate = `mutation BulkSceneUpdate($input: BulkSceneUpdateInput!) {
  bulkSceneUpdate(input: $input) { id title rating }
}`

	ScenesUpdate = `mutation ScenesUpdate($input: [SceneUpdateInput!]!) {
  scenesUpdate(input: $input) { id title rating }
}`

	SceneIncrementO = `mutation SceneIncrementO($id: ID!) {
  sceneIncrementO(id: $id)
}`

	SceneDecrementO = `mutation SceneDecrementO($id: ID!) {
  sceneDecrementO(id: $id)
}`

	SceneResetO = `mutation SceneResetO($id: ID!) {
  sceneResetO(id: $id)
}`

	SceneDestroy = `mutation SceneDestroy($input: SceneDestroyInput!) {
  sceneDestroy(input: $input)
}`

	SceneGenerateScreenshot = `mutation SceneGenerateScreenshot($id: ID!, $at: Float) {
  sceneGenerateScreenshot(id: $id, at: $at)
}`

	SceneMarkerCreate = `mutation SceneMarkerCreate($input: SceneMarkerCreateInput!) {
  sceneMarkerCreate(input: $input) { id title seconds }
}`

	SceneMarkerUpdate = `mutation SceneMarkerUpdate($input: SceneMarkerUpdateInput!) {
  sceneMarkerUpdate(input: $input) { id title seconds }
}`

	SceneMarkerDestroy = `mutation SceneMarkerDestroy($id: ID!) {
  sceneMarkerDestroy(id: $id)
}`

	StudioCreate = `mutation StudioCreate($input: StudioCreateInput!) {
  studioCreate(input: $input) { id name }
}`

	StudioUpdate = `mutation StudioUpdate($input: StudioUpdateInput!) {
  studioUpdate(input: $input) { id name url image_path }
}`

	StudioDestroy = `mutation StudioDestroy($input: StudioDestroyInput!) {
  studioDestroy(input: $input)
}`

	MovieCreate = `mutation MovieCreate($input: MovieCreateInput!) {
  movieCreate(input: $input) { id name }
}`

	MovieUpdate = `mutation MovieUpdate($input: MovieUpdateInput!) {
  movieUpdate(input: $input) { id name front_image_path }
}`

	MovieDestroy = `mutation MovieDestroy($input: MovieDestroyInput!) {
  movieDestroy(input: $input)
}`

	TagCreate = `mutation TagCreate($input: TagCreateInput!) {
  tagCreate(input: $input) { id name }
}`

	TagUpdate = `mutation TagUpdate($input: TagUpdateInput!) {
  tagUpdate(input: $input) { id name }
}`

	TagDestroy = `mutation TagDestroy($input: TagDestroyInput!) {
  tagDestroy(input: $input)
}`

	ConfigureGeneral = `mutation ConfigureGeneral($input: ConfigGeneralInput!) {
  configureGeneral(input: $input) { stashes databasePath generatedPath logLevel }
}`

	ConfigureInterface = `mutation ConfigureInterface($input: ConfigInterfaceInput!) {
  configureInterface(input: $input) { soundOnPreview wallShowTitle css cssEnabled language }
}`

	MetadataScan = `mutation MetadataScan($input: ScanMetadataInput!) {
  metadataScan(input: $input)
}`

	MetadataAutoTag = `mutation MetadataAutoTag($input: AutoTagMetadataInput!) {
  metadataAutoTag(input: $input)
}`

	MetadataGenerate = `mutation MetadataGenerate($input: GenerateMetadataInput!) {
  metadataGenerate(input: $input)
}`

	MetadataClean = `mutation MetadataClean {
  metadataClean
}`

	MetadataExport = `mutation MetadataExport {
  metadataExport
}`

	MetadataImport = `mutation MetadataImport {
  metadataImport
}`

	StopJob = `mutation StopJob {
  stopJob
}`
)

// Subscriptions. They always travel over the stream transport.
const (
	MetadataUpdate = `subscription MetadataUpdate {
  metadataUpdate { progress status message }
}`

	LoggingSubscribe = `subscription LoggingSubscribe {
  loggingSubscribe { time level message }
}`
)
