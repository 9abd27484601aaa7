package handlers

import (
	"context"
	"errors"
	"fmt"
	"github.com/Edward-Brock/x-dimension/app/server/auth"
	"github.com/Edward-Brock/x-dimension/app/server/constants"
	"github.com/Edward-Brock/x-dimension/app/server/models"
	"github.com/Edward-Brock/x-dimension/app/server/store"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"testing"
)

type fakeSeeder struct {
	names []string
	err   error
}

func (s *fakeSeeder) EnsureRoles(_ context.Context, names ...string) error {
	s.names = append(s.names, names...)
	return s.err
}

func TestRun_Seed(t *testing.T) {
	seeder := &fakeSeeder{}
	app := NewApp(zap.NewNop(), seeder, nil, nil)

	assert.NoError(t, app.Run(context.Background(), &Command{Name: CommandSeed}))
	assert.Equal(t, []string{"Admin", "User"}, seeder.names)

	seeder.err = errors.New("db down")
	assert.Error(t, app.Run(context.Background(), &Command{Name: CommandSeed}))
}

func TestRun_Unknown(t *testing.T) {
	app := NewApp(zap.NewNop(), &fakeSeeder{}, nil, nil)
	assert.Error(t, app.Run(context.Background(), &Command{Name: "nope"}))
}

// fakeStore 只实现授予角色需要的方法
type fakeStore struct {
	auth.CredentialStore
	auth.CatalogStore

	assigned []string
}

func (s *fakeStore) FindUserByUsername(_ context.Context, username string) (*auth.UserRecord, error) {
	if username != "ann1" {
		return nil, auth.ErrNotFound
	}
	return &auth.UserRecord{User: models.User{ID: "u1", Username: username}}, nil
}

func (s *fakeStore) FindRoleByName(_ context.Context, name string) (*models.Role, error) {
	return &models.Role{ID: "r-" + name, Name: name}, nil
}

func (s *fakeStore) AssignRole(_ context.Context, userID string, roleID string) error {
	s.assigned = append(s.assigned, userID+":"+roleID)
	return nil
}

func TestRun_GrantClearsProfileCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	s := &fakeStore{}
	l := zap.NewNop()
	catalog := store.NewCachedCatalog(s, store.NewCached(s, rdb, l))
	app := NewApp(l, &fakeSeeder{}, nil, auth.NewCatalog(l, catalog, s))

	// 服务端缓存了授予前的资料
	key := fmt.Sprintf(constants.CacheKeyUserProfile, "u1")
	require.NoError(t, mr.Set(key, `{"user":{"id":"u1"},"roles":["User"]}`))

	err := app.Run(context.Background(), &Command{Name: CommandGrant, Username: "ann1", Role: "Editor"})
	require.NoError(t, err)
	assert.Equal(t, []string{"u1:r-Editor"}, s.assigned)
	assert.False(t, mr.Exists(key))

	err = app.Run(context.Background(), &Command{Name: CommandGrant, Username: "nobody", Role: "Editor"})
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}
