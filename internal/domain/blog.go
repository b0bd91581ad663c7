package domain

// BlogCategories lists the categories the editor offers.
var BlogCategories = []string{"Zodiac", "Technology", "Meditation", "Planetary", "Numerology"}

// CategoryAll disables category filtering on the public listing.
const CategoryAll = "All"

// BlogPost is a single article of the blog.
type BlogPost struct {
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Slug     string   `json:"slug" yaml:"slug"`
	Date     string   `json:"date" yaml:"date"`
	Excerpt  string   `json:"excerpt" yaml:"excerpt"`
	Content  string   `json:"content" yaml:"content"`
	Tags     []string `json:"tags" yaml:"tags"`
	Category string   `json:"category" yaml:"category"`
	Image    string   `json:"image" yaml:"image"`
}

// Draft is a partially filled post kept between editor sessions.
type Draft BlogPost

// HasContent reports whether the draft is worth persisting.
func (d Draft) HasContent() bool {
	return d.Title != "" || d.Content != "" || d.Excerpt != ""
}

// ContactInfo is shown on the contact page and edited in the admin panel.
type ContactInfo struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	FormID  string `json:"formspreeId"`
}

// SocialLinks are the footer social profiles.
type SocialLinks struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	YouTube   string `json:"youtube"`
}

// SiteSettings groups the admin-editable site metadata.
type SiteSettings struct {
	Contact ContactInfo `json:"contact"`
	Social  SocialLinks `json:"social"`
}

// ContactMessage is a visitor submission relayed to the form service.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
