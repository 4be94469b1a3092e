package models

// BlogPost is an innerBlog entry: the full article plus its comment
// thread.
type BlogPost struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	Author   string    `json:"author"`
	Date     string    `json:"date"`
	Image    string    `json:"image,omitempty"`
	Content  string    `json:"content"`
	Comments []Comment `json:"comments"`
}

func (BlogPost) TableName() string {
	return "innerBlog"
}

func (b BlogPost) GetID() int { return b.ID }

// Comment carries a localized date ("Month D, YYYY") stamped at creation
// time. Reviews do not; keep the shapes separate.
type Comment struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Date   string `json:"date"`
	Text   string `json:"text"`
	Avatar string `json:"avatar"`
}

func (c Comment) GetID() int { return c.ID }

// BlogTeaser is a card on the home page blog strip.
type BlogTeaser struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Image   string `json:"image"`
	Excerpt string `json:"excerpt"`
}

// BlogPage is one page of the paginated blog listing. Pages are stored as
// a keyed object; the listing endpoint flattens them into an array with
// the page number inlined.
type BlogPage struct {
	Page  int          `json:"page"`
	Posts []BlogTeaser `json:"posts"`
}

// Blogs is the container stored under the "blogs" key: the home strip
// plus the keyed pages.
type Blogs struct {
	HomeBlogs []BlogTeaser            `json:"homeBlogs"`
	BlogPages map[string][]BlogTeaser `json:"blogPages"`
}
