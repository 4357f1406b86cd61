package main

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"blogapi/models"

	"github.com/gin-gonic/gin"
)

// server bundles the stores, the credential validator and the token
// issuer behind the HTTP surface.
type server struct {
	users  UserStore
	blogs  BlogStore
	creds  *credentialValidator
	issuer *tokenIssuer
}

func newServer(users UserStore, blogs BlogStore, issuer *tokenIssuer) *server {
	return &server{
		users:  users,
		blogs:  blogs,
		creds:  &credentialValidator{users: users},
		issuer: issuer,
	}
}

func (s *server) setupRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.Use(authenticate(s.issuer, s.users))

	api.POST("/signup/", s.signupHandler)
	api.POST("/login/", s.loginHandler)
	api.POST("/token/refresh/", s.refreshHandler)

	// reads are public
	api.GET("/blogs/", s.listBlogsHandler)
	api.GET("/blogs/:id/", s.getBlogHandler)

	protected := api.Group("")
	protected.Use(requireAuth())
	protected.POST("/blogs/", s.createBlogHandler)
	protected.PUT("/blogs/:id/", s.updateBlogHandler)
	protected.PATCH("/blogs/:id/", s.updateBlogHandler)
	protected.DELETE("/blogs/:id/", s.deleteBlogHandler)
	protected.GET("/my-blogs/", s.myBlogsHandler)
}

// blogResponse is the enumerated field list exposed for a blog. Author
// is rendered as the author's email and is read-only; the hashed
// password never leaves the models package.
type blogResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

func toBlogResponse(b models.Blog) blogResponse {
	return blogResponse{
		ID:        b.ID,
		Title:     b.Title,
		Content:   b.Content,
		Author:    b.Author.Email,
		CreatedAt: b.CreatedAt,
	}
}

func toBlogResponses(blogs []models.Blog) []blogResponse {
	out := make([]blogResponse, 0, len(blogs))
	for _, b := range blogs {
		out = append(out, toBlogResponse(b))
	}
	return out
}

func (s *server) signupHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body."})
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	fieldErrs := gin.H{}
	if req.Email == "" {
		fieldErrs["email"] = "This field is required."
	}
	if req.Password == "" {
		fieldErrs["password"] = "This field is required."
	} else if len(req.Password) < 6 { // basic password policy
		fieldErrs["password"] = "Password must be at least 6 characters."
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, fieldErrs)
		return
	}
	if err := registerUser(s.users, req.Email, req.Password); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"email": "This email is already in use."})
			return
		}
		log.Printf("signup: create user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Unable to create user."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User created"})
}

func (s *server) loginHandler(c *gin.Context) {
	// username is the email; the original client sends it under this key
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Both email and password are required."})
		return
	}
	user, err := s.creds.Validate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrMissingCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Both email and password are required."})
			return
		}
		if !errors.Is(err, ErrInvalidCredentials) {
			log.Printf("login: %v", err)
		}
		// backend faults get the same non-enumerating message
		c.JSON(http.StatusBadRequest, gin.H{"detail": "No active account found with the given credentials"})
		return
	}
	pair, err := s.issuer.IssuePair(user.ID)
	if err != nil {
		log.Printf("login: issue tokens: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Unable to issue tokens."})
		return
	}
	c.JSON(http.StatusOK, pair)
}

func (s *server) refreshHandler(c *gin.Context) {
	var req struct {
		Refresh string `json:"refresh"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Refresh == "" {
		c.JSON(http.StatusBadRequest, gin.H{"refresh": "This field is required."})
		return
	}
	userID, err := s.issuer.Verify(req.Refresh, tokenClassRefresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Token is invalid or expired"})
		return
	}
	if _, err := s.users.ByID(userID); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Token is invalid or expired"})
		return
	}
	access, err := s.issuer.IssueAccess(userID)
	if err != nil {
		log.Printf("refresh: issue token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Unable to issue token."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access": access})
}

func (s *server) listBlogsHandler(c *gin.Context) {
	blogs, err := s.blogs.List()
	if err != nil {
		log.Printf("list blogs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Unable to list blogs."})
		return
	}
	c.JSON(http.StatusOK, toBlogResponses(blogs))
}

func (s *server) getBlogHandler(c *gin.Context) {
	blog, ok := s.fetchBlog(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toBlogResponse(*blog))
}

func (s *server) createBlogHandler(c *gin.Context) {
	user, _ := currentUser(c)
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body."})
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"title": "This field is required."})
		return
	}
	// author is always the requester, never client-supplied
	blog := models.Blog{Title: req.Title, Content: req.Content, AuthorID: user.ID}
	if err := s.blogs.Create(&blog); err != nil {
		log.Printf("create blog: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Unable to create blog."})
		return
	}
	blog.Author = *user
	c.JSON(http.StatusCreated, toBlogResponse(blog))
}

// updateBlogHandler serves both PUT and PATCH. PUT requires a title;
// PATCH updates only the fields present. The author field is ignored in
// both cases.
func (s *server) updateBlogHandler(c *gin.Context) {
	user, _ := currentUser(c)
	blog, ok := s.fetchBlog(c)
	if !ok {
		return
	}
	if blog.AuthorID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"detail": "You do not have permission to perform this action."})
		return
	}
	var req struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body."})
		return
	}
	if c.Request.Method == http.MethodPut {
		if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"title": "This field is required."})
			return
		}
	}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"title": "This field may not be blank."})
			return
		}
		blog.Title = *req.Title
	}
	if req.Content != nil {
		blog.Content = *req.Content
	}
	if err := s.blogs.Update(blog); err != nil {
		log.Printf("update blog: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Unable to update blog."})
		return
	}
	c.JSON(http.StatusOK, toBlogResponse(*blog))
}

func (s *server) deleteBlogHandler(c *gin.Context) {
	user, _ := currentUser(c)
	blog, ok := s.fetchBlog(c)
	if !ok {
		return
	}
	if blog.AuthorID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"detail": "You do not have permission to perform this action."})
		return
	}
	if err := s.blogs.Delete(blog.ID); err != nil {
		log.Printf("delete blog: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Unable to delete blog."})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *server) myBlogsHandler(c *gin.Context) {
	user, _ := currentUser(c)
	blogs, err := s.blogs.ListByAuthor(user.ID)
	if err != nil {
		log.Printf("my blogs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Unable to list blogs."})
		return
	}
	c.JSON(http.StatusOK, toBlogResponses(blogs))
}

// fetchBlog resolves the :id path param to a stored blog, writing the
// error response itself when it cannot.
func (s *server) fetchBlog(c *gin.Context) (*models.Blog, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return nil, false
	}
	blog, err := s.blogs.ByID(uint(id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		} else {
			log.Printf("fetch blog %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Unable to fetch blog."})
		}
		return nil, false
	}
	return blog, true
}
