package auth

import (
	"context"
	"github.com/Edward-Brock/x-dimension/app/server/constants"
	"github.com/Edward-Brock/x-dimension/app/server/jwt"
	"github.com/Edward-Brock/x-dimension/app/server/password"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"sync"
	"testing"
	"time"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type harness struct {
	store    *memStore
	clock    *clock
	codec    *jwt.JWT
	hasher   *password.Hasher
	issuer   *Issuer
	roles    *DefaultRoleCache
	register *Registrar
	login    *Authenticator
	refresh  *RefreshCoordinator
	guard    *Guard
	accounts *Accounts
	catalog  *Catalog
	userRole string
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		store:  newMemStore(),
		clock:  &clock{now: time.Unix(1_700_000_000, 0)},
		hasher: password.New(bcrypt.MinCost),
	}
	h.userRole = h.store.addRole(constants.RoleNameUser).ID
	h.store.addRole(constants.RoleNameAdmin)

	codec, err := jwt.New("test-secret", constants.DefaultTokenIssuer, jwt.WithClock(h.clock.Now))
	require.NoError(t, err)
	h.codec = codec

	l := zap.NewNop()
	h.issuer = NewIssuer(codec, constants.AccessTokenDuration, constants.RefreshTokenDuration)
	h.roles = NewDefaultRoleCache(h.store, constants.RoleNameUser)
	h.register = NewRegistrar(l, h.store, h.hasher, h.roles)
	h.login = NewAuthenticator(l, h.store, h.hasher, h.issuer)
	h.refresh = NewRefreshCoordinator(l, codec, h.store, h.issuer)
	h.guard = NewGuard(codec, h.store)
	h.accounts = NewAccounts(l, h.store, h.hasher)
	h.catalog = NewCatalog(l, h.store, h.store)

	return h
}

func (h *harness) signUp(t *testing.T, nickname, username, pw string) *CreatedUser {
	t.Helper()
	u, err := h.register.Register(context.Background(), RegisterInput{Nickname: nickname, Username: username, Password: pw})
	require.NoError(t, err)
	return u
}

func (h *harness) signIn(t *testing.T, username, pw string) *TokenPair {
	t.Helper()
	pair, err := h.login.Login(context.Background(), LoginInput{Username: username, Password: pw})
	require.NoError(t, err)
	return pair
}
