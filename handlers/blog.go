package handlers

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"laxmimall-server/database"
	"laxmimall-server/logger"
	"laxmimall-server/models"
	"laxmimall-server/utils"

	"github.com/gin-gonic/gin"
)

// GetInnerBlog serves one blog post with its comment thread.
func GetInnerBlog(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var post models.BlogPost
	var found bool
	Store.View(func(doc *database.Document) {
		post, found = database.FindByID(doc.InnerBlog, id)
	})

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inner blog not found"})
		return
	}

	c.JSON(http.StatusOK, post)
}

type addCommentRequest struct {
	Name   string `json:"name" binding:"required"`
	Text   string `json:"text" binding:"required"`
	Avatar string `json:"avatar"`
}

// AddBlogComment appends a comment to a post. The comment is stamped with
// the server's local date in "Month D, YYYY" form, and gets a placeholder
// portrait when the caller supplies none.
func AddBlogComment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment data"})
		return
	}

	avatar := req.Avatar
	if avatar == "" {
		avatar = utils.RandomCommentAvatar()
	}

	var created models.Comment
	err := Store.Update(func(doc *database.Document) error {
		i := database.IndexByID(doc.InnerBlog, id)
		if i < 0 {
			return database.ErrNotFound
		}

		post := &doc.InnerBlog[i]
		created = models.Comment{
			ID:     database.NextID(post.Comments),
			Name:   req.Name,
			Date:   time.Now().Format("January 2, 2006"),
			Text:   req.Text,
			Avatar: avatar,
		}
		post.Comments = append(post.Comments, created)
		return nil
	})

	if err == database.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		return
	}
	if err != nil {
		logger.Log.Errorw("failed to save comment", "blogId", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetBlogHome serves the home page blog strip.
func GetBlogHome(c *gin.Context) {
	var teasers []models.BlogTeaser
	Store.View(func(doc *database.Document) {
		teasers = append(teasers, doc.Blogs.HomeBlogs...)
	})

	if len(teasers) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog home data not found"})
		return
	}

	c.JSON(http.StatusOK, teasers)
}

// GetBlogPages flattens the keyed blog pages into an array ordered by page
// number.
func GetBlogPages(c *gin.Context) {
	var pages []models.BlogPage
	Store.View(func(doc *database.Document) {
		for key, posts := range doc.Blogs.BlogPages {
			n, err := strconv.Atoi(key)
			if err != nil {
				continue
			}
			pages = append(pages, models.BlogPage{Page: n, Posts: posts})
		}
	})

	if len(pages) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog pages not found"})
		return
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].Page < pages[j].Page })
	c.JSON(http.StatusOK, pages)
}

// GetBlogPage serves one page of the blog listing.
func GetBlogPage(c *gin.Context) {
	key := c.Param("page")

	var posts []models.BlogTeaser
	var found bool
	Store.View(func(doc *database.Document) {
		posts, found = doc.Blogs.BlogPages[key]
	})

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog page " + key + " not found"})
		return
	}

	n, _ := strconv.Atoi(key)
	c.JSON(http.StatusOK, models.BlogPage{Page: n, Posts: posts})
}
