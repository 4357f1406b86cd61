package main

import (
	"errors"
	"time"

	"blogapi/models"
)

// in-memory stores for tests that don't need Postgres

type fakeUserStore struct {
	users   []models.User
	nextID  uint
	failAll bool // simulate a backend fault on reads
}

func (f *fakeUserStore) Create(u *models.User) error {
	for _, e := range f.users {
		if e.Email == u.Email {
			return ErrDuplicateEmail
		}
	}
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUserStore) ByEmail(email string) (*models.User, error) {
	if f.failAll {
		return nil, errors.New("store unavailable")
	}
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeUserStore) ByID(id uint) (*models.User, error) {
	if f.failAll {
		return nil, errors.New("store unavailable")
	}
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

type fakeBlogStore struct {
	users  *fakeUserStore
	blogs  []models.Blog
	nextID uint
}

func (f *fakeBlogStore) Create(b *models.Blog) error {
	f.nextID++
	b.ID = f.nextID
	b.CreatedAt = time.Now()
	f.blogs = append(f.blogs, *b)
	return nil
}

// withAuthor mirrors the gorm store's Preload("Author") on reads.
func (f *fakeBlogStore) withAuthor(b models.Blog) models.Blog {
	if u, err := f.users.ByID(b.AuthorID); err == nil {
		b.Author = *u
	}
	return b
}

func (f *fakeBlogStore) List() ([]models.Blog, error) {
	// newest first, matching the gorm store's created_at desc ordering
	out := make([]models.Blog, 0, len(f.blogs))
	for i := len(f.blogs) - 1; i >= 0; i-- {
		out = append(out, f.withAuthor(f.blogs[i]))
	}
	return out, nil
}

func (f *fakeBlogStore) ByID(id uint) (*models.Blog, error) {
	for i := range f.blogs {
		if f.blogs[i].ID == id {
			b := f.withAuthor(f.blogs[i])
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeBlogStore) ListByAuthor(authorID uint) ([]models.Blog, error) {
	out := make([]models.Blog, 0)
	for i := len(f.blogs) - 1; i >= 0; i-- {
		if f.blogs[i].AuthorID == authorID {
			out = append(out, f.withAuthor(f.blogs[i]))
		}
	}
	return out, nil
}

func (f *fakeBlogStore) Update(b *models.Blog) error {
	for i := range f.blogs {
		if f.blogs[i].ID == b.ID {
			f.blogs[i].Title = b.Title
			f.blogs[i].Content = b.Content
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeBlogStore) Delete(id uint) error {
	for i := range f.blogs {
		if f.blogs[i].ID == id {
			f.blogs = append(f.blogs[:i], f.blogs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
