package testimonial

// Testimonial is the public DTO rendered by the home-page carousel.
type Testimonial struct {
	ID       int     `json:"testimonialId"`
	Name     string  `json:"name"`
	Location *string `json:"location,omitempty"`
	Quote    string  `json:"quote"`
	ImageURL *string `json:"imageUrl,omitempty"`
	Rating   int     `json:"rating"`
}
