package app

import (
	"context"

	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/stashql/internal/core/ports"
)

// FindScenes lists scenes matching the filter.
func (c *Client) FindScenes(ctx context.Context, filter ports.FilterModel, policy domain.FetchPolicy) (*domain.Result, error) {
	filter = listFilter(filter, domain.FilterModeScenes)
	return c.Query(ctx, "FindScenes", map[string]any{
		"filter":       filter.FindFilter(),
		"scene_filter": filter.SceneFilter(),
	}, WithFetchPolicy(policy))
}

// WatchScenes keeps a scene list live.
func (c *Client) WatchScenes(ctx context.Context, filter ports.FilterModel) (*Watch, error) {
	filter = listFilter(filter, domain.FilterModeScenes)
	return c.Watch(ctx, "FindScenes", map[string]any{
		"filter":       filter.FindFilter(),
		"scene_filter": filter.SceneFilter(),
	})
}

// FindScene fetches one scene with its marker tags.
func (c *Client) FindScene(ctx context.Context, id string) (*domain.Result, error) {
	return c.Query(ctx, "FindScene", map[string]any{"id": id})
}

// WatchScene keeps a scene detail live. Marker mutations refetch it.
func (c *Client) WatchScene(ctx context.Context, id string) (*Watch, error) {
	return c.Watch(ctx, "FindScene", map[string]any{"id": id})
}

// FindScenesByPathRegex lists scenes whose path matches filter.q. Results are
// always fetched.
func (c *Client) FindScenesByPathRegex(ctx context.Context, filter map[string]any) (*domain.Result, error) {
	return c.Query(ctx, "FindScenesByPathRegex", map[string]any{"filter": filter}, WithFetchPolicy(domain.NetworkOnly))
}

// ParseSceneFilenames previews filename parsing. Results are always fetched.
func (c *Client) ParseSceneFilenames(ctx context.Context, filter, config map[string]any) (*domain.Result, error) {
	return c.Query(ctx, "ParseSceneFilenames", map[string]any{
		"filter": filter,
		"config": config,
	}, WithFetchPolicy(domain.NetworkOnly))
}

// UpdateScene edits one scene.
func (c *Client) UpdateScene(ctx context.Context, input map[string]any) (*domain.Result, error) {
	return c.Mutate(ctx, "SceneUpdate", map[string]any{"input": domain.StripNullInput(input)})
}

// BulkUpdateScenes applies one edit to many scenes. Scene lists stay cached.
func (c *Client) BulkUpdateScenes(ctx context.Context, input map[string]any) (*domain.Result, error) {
	return c.Mutate(ctx, "BulkSceneUpdate", map[string]any{"input": domain.StripNullInput(input)})
}

// UpdateScenes edits several scenes with individual inputs.
func (c *Client) UpdateScenes(ctx context.Context, inputs []map[string]any) (*domain.Result, error) {
	list := make([]any, len(inputs))
	for i, in := range inputs {
		list[i] = domain.StripNullInput(in)
	}
	return c.Mutate(ctx, "ScenesUpdate", map[string]any{"input": list})
}

// IncrementSceneO bumps the O-counter of a scene.
func (c *Client) IncrementSceneO(ctx context.Context, id string) (*domain.Result, error) {
	return c.Mutate(ctx, "SceneIncrementO", map[string]any{"id": id})
}

// DecrementSceneO lowers the O-counter of a scene.
func (c *Client) DecrementSceneO(ctx context.Context, id string) (*domain.Result, error) {
	return c.Mutate(ctx, "SceneDecrementO", map[string]any{"id": id})
}

// ResetSceneO zeroes the O-counter of a scene.
func (c *Client) ResetSceneO(ctx context.Context, id string) (*domain.Result, error) {
	return c.Mutate(ctx, "SceneResetO", map[string]any{"id": id})
}

// DestroyScene deletes a scene.
func (c *Client) DestroyScene(ctx context.Context, input map[string]any) (*domain.Result, error) {
	return c.Mutate(ctx, "SceneDestroy", map[string]any{"input": domain.StripNullInput(input)})
}

// GenerateSceneScreenshot regenerates a scene cover, at the given second when at
// is non-nil.
func (c *Client) GenerateSceneScreenshot(ctx context.Context, id string, at *float64) (*domain.Result, error) {
	vars := map[string]any{"id": id}
	if at != nil {
		vars["at"] = *at
	}
	return c.Mutate(ctx, "SceneGenerateScreenshot", vars)
}
