package services

import (
	"context"
	"io"
	"sort"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"snapfeed/app/models"
	"snapfeed/app/realtime"
	"snapfeed/app/repositories"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type mockUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (m *mockUserRepo) Create(user *models.User) error {
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return repositories.ErrEmailTaken
		}
	}
	user.BeforeCreate()
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *mockUserRepo) GetByID(id uuid.UUID) (*models.User, error) {
	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockUserRepo) Update(user *models.User) error {
	if _, exists := m.users[user.ID]; !exists {
		return repositories.ErrNotFound
	}
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

type mockPostRepo struct {
	posts map[uuid.UUID]*models.Post
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: make(map[uuid.UUID]*models.Post)}
}

func (m *mockPostRepo) Create(post *models.Post) error {
	post.BeforeCreate()
	clone := *post
	m.posts[post.ID] = &clone
	return nil
}

func (m *mockPostRepo) GetByID(id uuid.UUID) (*models.Post, error) {
	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	clone := *post
	return &clone, nil
}

func (m *mockPostRepo) List(page, perPage int) ([]*models.Post, int, error) {
	if page < 1 {
		page = 1
	}
	all := make([]*models.Post, 0, len(m.posts))
	for _, post := range m.posts {
		clone := *post
		all = append(all, &clone)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := len(all)
	offset := (page - 1) * perPage
	if offset >= total {
		return []*models.Post{}, total, nil
	}
	end := offset + perPage
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (m *mockPostRepo) Update(post *models.Post) error {
	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	post.BeforeUpdate()
	clone := *post
	m.posts[post.ID] = &clone
	return nil
}

func (m *mockPostRepo) Delete(id uuid.UUID) error {
	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

type mockImageStore struct {
	stored  []string
	deleted []string
}

func (m *mockImageStore) Store(_ context.Context, _ io.Reader, filename, _ string) (string, error) {
	ref := "images/" + filename
	m.stored = append(m.stored, ref)
	return ref, nil
}

func (m *mockImageStore) Delete(_ context.Context, ref string) {
	m.deleted = append(m.deleted, ref)
}

type mockNotifier struct {
	events []realtime.Event
}

func (m *mockNotifier) Publish(evt realtime.Event) {
	m.events = append(m.events, evt)
}
