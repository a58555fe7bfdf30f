package model

// MasterCategory is a content category from the master taxonomy. Title is
// the canonical human-readable label used for both display and, after slug
// normalization, route matching.
type MasterCategory struct {
	MasterID     int     `json:"master_id"`
	Title        string  `json:"title"`
	Code         *string `json:"code"`
	ContentCount int     `json:"content_count"`
}

// MasterAudience is an audience classification from the master taxonomy.
type MasterAudience struct {
	MasterID int     `json:"master_id"`
	Title    string  `json:"title"`
	Code     *string `json:"code"`
}

// MasterLanguage is a language from the master taxonomy.
type MasterLanguage struct {
	MasterID int     `json:"master_id"`
	Title    string  `json:"title"`
	Code     *string `json:"code"`
}

func (c MasterCategory) MasterTitle() string { return c.Title }
func (a MasterAudience) MasterTitle() string { return a.Title }
func (l MasterLanguage) MasterTitle() string { return l.Title }

// FilterType selects which taxonomy a browse route filters by.
type FilterType string

const (
	FilterCategory FilterType = "category"
	FilterAudience FilterType = "audience"
	FilterLanguage FilterType = "language"
)

// FilterRef points at a master record inside a filter request.
type FilterRef struct {
	MasterID int `json:"master_id"`
}

// FilterRequest constrains a content query by master records. An absent key
// means no constraint on that dimension; at most one key is populated when
// the request is built from a browse route.
type FilterRequest struct {
	Categories []FilterRef `json:"categories,omitempty"`
	Languages  []FilterRef `json:"languages,omitempty"`
	Audiences  []FilterRef `json:"audiences,omitempty"`
}
