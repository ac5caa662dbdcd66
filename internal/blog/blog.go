package blog

// Blog statuses. Only published posts appear on the public read path.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// Blog is one post in the `blogs` table. Content is stored HTML.
type Blog struct {
	ID               int      `json:"blogId"`
	Title            string   `json:"title"`
	Content          string   `json:"content"`
	Excerpt          string   `json:"excerpt,omitempty"`
	FeaturedImageURL string   `json:"featuredImageUrl,omitempty"`
	Author           string   `json:"author,omitempty"`
	Status           string   `json:"status"`
	Slug             string   `json:"slug"`
	Tags             []string `json:"tags,omitempty"`
	ViewCount        int      `json:"viewCount"`
	CategoryID       *int     `json:"categoryId,omitempty"`
	CreatedAt        string   `json:"createdAt,omitempty"`

	CategoryName string `json:"categoryName,omitempty"`
}

// Category groups posts for the blog page filter.
type Category struct {
	ID          int    `json:"categoryId"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// Filter narrows the public blog list. Zero values mean "no filter".
type Filter struct {
	Query      string
	CategoryID int
}
