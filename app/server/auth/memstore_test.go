package auth

import (
	"context"
	"github.com/Edward-Brock/x-dimension/app/server/models"
	"github.com/google/uuid"
	"sync"
	"sync/atomic"
	"time"
)

// memStore 内存实现，同时满足 CredentialStore 与 CatalogStore
type memStore struct {
	mu          sync.Mutex
	users       map[string]*models.User // id -> user
	roles       map[string]*models.Role // id -> role
	permissions map[string]*models.Permission
	links       map[string][]string // user id -> role ids ，按授予顺序

	roleLookups atomic.Int32
	failFind    error
	failCreate  error
}

func newMemStore() *memStore {
	return &memStore{
		users:       map[string]*models.User{},
		roles:       map[string]*models.Role{},
		permissions: map[string]*models.Permission{},
		links:       map[string][]string{},
	}
}

func (s *memStore) addRole(name string) *models.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	role := &models.Role{ID: uuid.NewString(), Name: name, IsFixed: true}
	s.roles[role.ID] = role
	return role
}

func (s *memStore) record(u *models.User) *UserRecord {
	roles := []string{}
	for _, id := range s.links[u.ID] {
		roles = append(roles, s.roles[id].Name)
	}
	return &UserRecord{User: *u, Roles: roles}
}

func (s *memStore) FindUserByUsername(_ context.Context, username string) (*UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failFind != nil {
		return nil, s.failFind
	}
	for _, u := range s.users {
		if u.Username == username {
			return s.record(u), nil
		}
	}
	return nil, ErrNotFound
}

func (s *memStore) FindUserByID(_ context.Context, id string) (*UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failFind != nil {
		return nil, s.failFind
	}
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s.record(u), nil
}

func (s *memStore) FindRoleByName(_ context.Context, name string) (*models.Role, error) {
	s.roleLookups.Add(1)
	// 放大并发窗口
	time.Sleep(5 * time.Millisecond)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.roles {
		if r.Name == name {
			c := *r
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memStore) CreateUserWithRole(_ context.Context, user *models.User, roleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failCreate != nil {
		return s.failCreate
	}
	for _, u := range s.users {
		if u.Username == user.Username {
			return ErrDuplicate
		}
	}
	if err := user.BeforeCreate(nil); err != nil {
		return err
	}
	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now
	c := *user
	s.users[user.ID] = &c
	s.links[user.ID] = []string{roleID}
	return nil
}

func (s *memStore) UpdatePassword(_ context.Context, id string, digest string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	u.Password = digest
	return nil
}

func (s *memStore) UpdateUserFields(_ context.Context, id string, f UserFields) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&u.Nickname, f.Nickname)
	set(&u.Email, f.Email)
	set(&u.Mobile, f.Mobile)
	set(&u.AvatarURL, f.AvatarURL)
	set(&u.Gender, f.Gender)
	set(&u.Status, f.Status)
	set(&u.Remark, f.Remark)
	return nil
}

func (s *memStore) FindPermissionByName(_ context.Context, name string) (*models.Permission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.permissions {
		if p.Name == name {
			c := *p
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memStore) CountPermissions(_ context.Context, names []string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, name := range names {
		for _, p := range s.permissions {
			if p.Name == name {
				n++
				break
			}
		}
	}
	return n, nil
}

func (s *memStore) CreateRole(_ context.Context, role *models.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.roles {
		if r.Name == role.Name {
			return ErrDuplicate
		}
	}
	if err := role.BeforeCreate(nil); err != nil {
		return err
	}
	c := *role
	s.roles[role.ID] = &c
	return nil
}

func (s *memStore) CreatePermission(_ context.Context, permission *models.Permission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.permissions {
		if p.Name == permission.Name {
			return ErrDuplicate
		}
	}
	if err := permission.BeforeCreate(nil); err != nil {
		return err
	}
	c := *permission
	s.permissions[permission.ID] = &c
	return nil
}

func (s *memStore) AssignRole(_ context.Context, userID string, roleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.links[userID] {
		if id == roleID {
			return nil
		}
	}
	s.links[userID] = append(s.links[userID], roleID)
	return nil
}
