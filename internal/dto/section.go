package dto

type SectionView struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Logo         string `json:"logo"`
	ViewCount    int64  `json:"viewCount"`
	ShareCount   int64  `json:"shareCount"`
	CollectCount int64  `json:"collectCount"`
}

type SearchSectionView struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Logo      string `json:"logo"`
	ViewCount int64  `json:"viewCount"`
}

type SectionDetailView struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	Logo         string         `json:"logo"`
	ViewCount    int64          `json:"viewCount"`
	ShareCount   int64          `json:"shareCount"`
	CollectCount int64          `json:"collectCount"`
	ItemInfo     map[string]any `json:"itemInfo"`
	CreateTime   string         `json:"createTime"`
	UpdateTime   string         `json:"updateTime"`
}

type GraphCenter struct {
	ID    int64  `json:"id"`
	Logo  string `json:"logo"`
	Title string `json:"title"`
}

// RelationView is one weighted edge of a relation graph. Distance is the
// stored relation degree; Weight is the popularity scaled to 1..50.
type RelationView struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Logo     string  `json:"logo,omitempty"`
	Distance float64 `json:"distance"`
	Weight   int64   `json:"weight"`
}

type RelationGraph struct {
	Center GraphCenter    `json:"center"`
	Edges  []RelationView `json:"atlas"`
}
