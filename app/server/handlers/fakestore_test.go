package handlers

import (
	"context"
	"github.com/Edward-Brock/x-dimension/app/server/auth"
	"github.com/Edward-Brock/x-dimension/app/server/models"
	"sync"
)

// fakeStore 内存存储，同时满足 CredentialStore 与 CatalogStore
type fakeStore struct {
	mu          sync.Mutex
	users       []*models.User
	roles       []*models.Role
	permissions []*models.Permission
	links       map[string][]string // user id -> role names
}

func newFakeStore(roles ...string) *fakeStore {
	s := &fakeStore{links: map[string][]string{}}
	for _, name := range roles {
		role := &models.Role{Name: name, IsFixed: true}
		_ = role.BeforeCreate(nil)
		s.roles = append(s.roles, role)
	}
	return s
}

func (s *fakeStore) find(match func(*models.User) bool) (*auth.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if match(u) {
			roles := append([]string{}, s.links[u.ID]...)
			return &auth.UserRecord{User: *u, Roles: roles}, nil
		}
	}
	return nil, auth.ErrNotFound
}

func (s *fakeStore) user(id string) *models.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (s *fakeStore) roleByID(id string) *models.Role {
	for _, r := range s.roles {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func (s *fakeStore) FindUserByUsername(_ context.Context, username string) (*auth.UserRecord, error) {
	return s.find(func(u *models.User) bool { return u.Username == username })
}

func (s *fakeStore) FindUserByID(_ context.Context, id string) (*auth.UserRecord, error) {
	return s.find(func(u *models.User) bool { return u.ID == id })
}

func (s *fakeStore) FindRoleByName(_ context.Context, name string) (*models.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.roles {
		if r.Name == name {
			c := *r
			return &c, nil
		}
	}
	return nil, auth.ErrNotFound
}

func (s *fakeStore) CreateUserWithRole(_ context.Context, user *models.User, roleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return auth.ErrDuplicate
		}
	}
	_ = user.BeforeCreate(nil)
	c := *user
	s.users = append(s.users, &c)
	s.links[user.ID] = []string{s.roleByID(roleID).Name}
	return nil
}

func (s *fakeStore) UpdatePassword(_ context.Context, id string, digest string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.user(id)
	if u == nil {
		return auth.ErrNotFound
	}
	u.Password = digest
	return nil
}

func (s *fakeStore) UpdateUserFields(_ context.Context, id string, f auth.UserFields) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.user(id)
	if u == nil {
		return auth.ErrNotFound
	}
	if f.Nickname != nil {
		u.Nickname = *f.Nickname
	}
	if f.Email != nil {
		u.Email = *f.Email
	}
	if f.Status != nil {
		u.Status = *f.Status
	}
	return nil
}

func (s *fakeStore) FindPermissionByName(_ context.Context, name string) (*models.Permission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.permissions {
		if p.Name == name {
			c := *p
			return &c, nil
		}
	}
	return nil, auth.ErrNotFound
}

func (s *fakeStore) CountPermissions(_ context.Context, names []string) (int64, error) {
	var n int64
	for _, name := range names {
		if _, err := s.FindPermissionByName(context.Background(), name); err == nil {
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) CreateRole(_ context.Context, role *models.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = role.BeforeCreate(nil)
	c := *role
	s.roles = append(s.roles, &c)
	return nil
}

func (s *fakeStore) CreatePermission(_ context.Context, permission *models.Permission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = permission.BeforeCreate(nil)
	c := *permission
	s.permissions = append(s.permissions, &c)
	return nil
}

func (s *fakeStore) AssignRole(_ context.Context, userID string, roleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := s.roleByID(roleID).Name
	for _, r := range s.links[userID] {
		if r == name {
			return nil
		}
	}
	s.links[userID] = append(s.links[userID], name)
	return nil
}
