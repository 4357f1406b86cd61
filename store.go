package main

import (
	"errors"
	"strings"

	"blogapi/models"

	"gorm.io/gorm"
)

// UserStore is the identity surface the auth components depend on.
type UserStore interface {
	Create(user *models.User) error
	ByEmail(email string) (*models.User, error)
	ByID(id uint) (*models.User, error)
}

// BlogStore covers the blog-post resource operations. Reads return blogs
// with the Author association populated so handlers can render the
// author's email.
type BlogStore interface {
	Create(blog *models.Blog) error
	List() ([]models.Blog, error)
	ByID(id uint) (*models.Blog, error)
	ListByAuthor(authorID uint) ([]models.Blog, error)
	Update(blog *models.Blog) error
	Delete(id uint) error
}

type gormUserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) UserStore {
	return &gormUserStore{db: db}
}

func (s *gormUserStore) Create(user *models.User) error {
	// pre-check existing (optimistic); the unique index catches the race
	var existing models.User
	if err := s.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrDuplicateEmail
	}
	if err := s.db.Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *gormUserStore) ByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *gormUserStore) ByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "already exists")
}

type gormBlogStore struct {
	db *gorm.DB
}

func NewBlogStore(db *gorm.DB) BlogStore {
	return &gormBlogStore{db: db}
}

func (s *gormBlogStore) Create(blog *models.Blog) error {
	return s.db.Create(blog).Error
}

func (s *gormBlogStore) List() ([]models.Blog, error) {
	var blogs []models.Blog
	if err := s.db.Preload("Author").Order("created_at desc").Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

func (s *gormBlogStore) ByID(id uint) (*models.Blog, error) {
	var blog models.Blog
	if err := s.db.Preload("Author").First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &blog, nil
}

func (s *gormBlogStore) ListByAuthor(authorID uint) ([]models.Blog, error) {
	var blogs []models.Blog
	if err := s.db.Preload("Author").Where("author_id = ?", authorID).Order("created_at desc").Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

// Update persists title and content only; the author column is never
// written after creation.
func (s *gormBlogStore) Update(blog *models.Blog) error {
	return s.db.Model(blog).Select("title", "content", "updated_at").Updates(map[string]any{
		"title":   blog.Title,
		"content": blog.Content,
	}).Error
}

func (s *gormBlogStore) Delete(id uint) error {
	res := s.db.Delete(&models.Blog{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
