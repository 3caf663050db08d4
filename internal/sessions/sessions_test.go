package sessions

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-auth-service/internal/jwt"
	"github.com/sbilibin2017/gw-auth-service/internal/models"
)

func setupRedisContainer(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "6379")

	rdb := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%d", host, port.Int())})
	require.NoError(t, rdb.Ping(context.Background()).Err())

	teardown := func() {
		rdb.Close()
		container.Terminate(context.Background())
	}

	return rdb, teardown
}

// requestWithCookies copies the Set-Cookie headers of a recorded response
// onto a fresh request, imitating a browser.
func requestWithCookies(rr *httptest.ResponseRecorder, target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestManager_LoginAndCurrent(t *testing.T) {
	rdb, teardown := setupRedisContainer(t)
	defer teardown()

	signer := jwt.New("test-secret", time.Minute)
	mgr := NewManager(rdb, signer, jwt.CookieName, time.Minute)
	ctx := context.Background()

	identity := models.Identity{
		UserID:     uuid.New(),
		Email:      "alice@example.com",
		ExternalID: "ext-1",
		Provider:   "auth0",
	}

	rr := httptest.NewRecorder()
	require.NoError(t, mgr.Login(ctx, rr, identity))

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, jwt.CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	got, err := mgr.Current(ctx, requestWithCookies(rr, "/"))
	require.NoError(t, err)
	assert.Equal(t, identity, *got)
	assert.True(t, got.Federated())
}

func TestManager_Current_NoCookie(t *testing.T) {
	rdb, teardown := setupRedisContainer(t)
	defer teardown()

	mgr := NewManager(rdb, jwt.New("test-secret", time.Minute), jwt.CookieName, time.Minute)

	got, err := mgr.Current(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Nil(t, got)
}

func TestManager_Current_TamperedToken(t *testing.T) {
	rdb, teardown := setupRedisContainer(t)
	defer teardown()

	mgr := NewManager(rdb, jwt.New("test-secret", time.Minute), jwt.CookieName, time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: jwt.CookieName, Value: "not.a.token"})

	got, err := mgr.Current(context.Background(), req)
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Nil(t, got)
}

func TestManager_Current_ExpiredRecord(t *testing.T) {
	rdb, teardown := setupRedisContainer(t)
	defer teardown()

	signer := jwt.New("test-secret", time.Minute)
	mgr := NewManager(rdb, signer, jwt.CookieName, 200*time.Millisecond)
	ctx := context.Background()

	rr := httptest.NewRecorder()
	require.NoError(t, mgr.Login(ctx, rr, models.Identity{UserID: uuid.New(), Email: "bob@example.com"}))

	time.Sleep(400 * time.Millisecond)

	got, err := mgr.Current(ctx, requestWithCookies(rr, "/"))
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Nil(t, got)
}

func TestManager_Logout(t *testing.T) {
	rdb, teardown := setupRedisContainer(t)
	defer teardown()

	signer := jwt.New("test-secret", time.Minute)
	mgr := NewManager(rdb, signer, jwt.CookieName, time.Minute)
	ctx := context.Background()

	identity := models.Identity{UserID: uuid.New(), Email: "carol@example.com", Provider: "auth0", ExternalID: "ext-2"}

	rr := httptest.NewRecorder()
	require.NoError(t, mgr.Login(ctx, rr, identity))
	loginReq := requestWithCookies(rr, "/logout")

	logoutRR := httptest.NewRecorder()
	got, err := mgr.Logout(ctx, logoutRR, loginReq)
	require.NoError(t, err)
	assert.Equal(t, identity, *got)

	// Cookie is expired on the response
	cookies := logoutRR.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Less(t, cookies[0].MaxAge, 0)

	// Server-side record is gone even if the old cookie is replayed
	_, err = mgr.Current(ctx, loginReq)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestManager_Logout_NoSession(t *testing.T) {
	rdb, teardown := setupRedisContainer(t)
	defer teardown()

	mgr := NewManager(rdb, jwt.New("test-secret", time.Minute), jwt.CookieName, time.Minute)

	rr := httptest.NewRecorder()
	got, err := mgr.Logout(context.Background(), rr, httptest.NewRequest(http.MethodGet, "/logout", nil))
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Nil(t, got)
}
