package models

// Content documents served on the marketing site. All of them live in the
// remote content store and share the published/createdAt envelope.

type Testimonial struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Quote     string `json:"quote"`
	Rating    int    `json:"rating"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

type BlogPost struct {
	ID        string `json:"id,omitempty"`
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt"`
	Author    string `json:"author"`
	CoverURL  string `json:"cover_url,omitempty"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

type University struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Country   string `json:"country"`
	Ranking   int    `json:"ranking,omitempty"`
	LogoURL   string `json:"logo_url,omitempty"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

type CareerPath struct {
	ID        string `json:"id,omitempty"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Demand    string `json:"demand,omitempty"` // e.g. "high", "growing"
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

type FAQ struct {
	ID        string `json:"id,omitempty"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}
