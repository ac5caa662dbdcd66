package team

// Member is one entry on the About page team grid.
type Member struct {
	ID          int    `json:"memberId"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	ImageURL    string `json:"imageUrl,omitempty"`
	LinkedinURL string `json:"linkedinUrl,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}
