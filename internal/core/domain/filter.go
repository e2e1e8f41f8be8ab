package domain

import "go.trai.ch/zerr"

// FilterMode is the list a filter model drives.
type FilterMode string

const (
	FilterModeScenes       FilterMode = "scenes"
	FilterModePerformers   FilterMode = "performers"
	FilterModeSceneMarkers FilterMode = "scene_markers"
	FilterModeStudios      FilterMode = "studios"
	FilterModeMovies       FilterMode = "movies"
	FilterModeGalleries    FilterMode = "galleries"
	FilterModeTags         FilterMode = "tags"
)

// SortDirection is the server's SortDirectionEnum.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

const defaultPerPage = 40

// ListFilter is the list filter model: free-text query, paging, sorting and criteria.
// Criteria are emitted into the entity filter matching Mode; the other entity filters
// are empty objects.
type ListFilter struct {
	Mode      FilterMode
	Query     string
	Page      int
	PerPage   int
	Sort      string
	Direction SortDirection
	criteria  []Criterion
}

// NewListFilter returns the first page of an unfiltered list.
func NewListFilter(mode FilterMode) *ListFilter {
	return &ListFilter{
		Mode:      mode,
		Page:      1,
		PerPage:   defaultPerPage,
		Direction: SortAsc,
	}
}

// AddCriterion validates and appends a criterion. A criterion with the same parameter
// name replaces the previous one.
func (f *ListFilter) AddCriterion(c Criterion) error {
	if c.ParameterName == "" {
		return zerr.With(zerr.New("criterion has no parameter name"), "type", string(c.Type))
	}
	if _, err := c.Parameter(); err != nil {
		return err
	}
	for i, existing := range f.criteria {
		if existing.ParameterName == c.ParameterName {
			f.criteria[i] = c
			return nil
		}
	}
	f.criteria = append(f.criteria, c)
	return nil
}

// Criteria returns the criteria in insertion order.
func (f *ListFilter) Criteria() []Criterion {
	return append([]Criterion(nil), f.criteria...)
}

// FindFilter renders the FindFilterType variables.
func (f *ListFilter) FindFilter() map[string]any {
	out := map[string]any{
		"page":      f.Page,
		"per_page":  f.PerPage,
		"direction": string(f.Direction),
	}
	if f.Query != "" {
		out["q"] = f.Query
	}
	if f.Sort != "" {
		out["sort"] = f.Sort
	}
	return out
}

// SceneFilter renders the SceneFilterType variables.
func (f *ListFilter) SceneFilter() map[string]any {
	return f.entityFilter(FilterModeScenes)
}

// SceneMarkerFilter renders the SceneMarkerFilterType variables.
func (f *ListFilter) SceneMarkerFilter() map[string]any {
	return f.entityFilter(FilterModeSceneMarkers)
}

// PerformerFilter renders the PerformerFilterType variables.
func (f *ListFilter) PerformerFilter() map[string]any {
	return f.entityFilter(FilterModePerformers)
}

func (f *ListFilter) entityFilter(mode FilterMode) map[string]any {
	out := map[string]any{}
	if f.Mode != mode {
		return out
	}
	for _, c := range f.criteria {
		if !c.IsSet() {
			continue
		}
		// AddCriterion already validated the parameter.
		p, err := c.Parameter()
		if err != nil {
			continue
		}
		out[c.ParameterName] = p
	}
	return out
}
