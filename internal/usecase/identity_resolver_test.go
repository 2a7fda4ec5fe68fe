package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"contesthub/internal/domain"
)

type stubProvider struct {
	identity domain.Identity
	err      error
	calls    atomic.Int32
}

func (p *stubProvider) Verify(ctx context.Context, token string) (domain.Identity, error) {
	p.calls.Add(1)
	return p.identity, p.err
}

type stubUsers struct {
	user  *domain.User
	err   error
	calls atomic.Int32
	delay time.Duration
}

func (u *stubUsers) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	u.calls.Add(1)
	if u.delay > 0 {
		time.Sleep(u.delay)
	}
	return u.user, u.err
}

func TestIdentityResolver_MissingToken(t *testing.T) {
	provider := &stubProvider{}
	resolver := NewIdentityResolver(provider, &stubUsers{})
	_, err := resolver.Resolve(context.Background(), "  ")
	if !errors.Is(err, domain.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
	if provider.calls.Load() != 0 {
		t.Fatalf("provider must not be called without a token")
	}
}

func TestIdentityResolver_ProviderFailure(t *testing.T) {
	users := &stubUsers{}
	resolver := NewIdentityResolver(&stubProvider{err: domain.ErrProviderUnavailable}, users)
	_, err := resolver.Resolve(context.Background(), "token")
	if !errors.Is(err, domain.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
	if !errors.Is(err, domain.ErrProviderUnavailable) {
		t.Fatalf("expected provider cause to be preserved, got %v", err)
	}
	if users.calls.Load() != 0 {
		t.Fatalf("user lookup must not run after provider failure")
	}
}

func TestIdentityResolver_EmptyUserID(t *testing.T) {
	resolver := NewIdentityResolver(&stubProvider{}, &stubUsers{})
	_, err := resolver.Resolve(context.Background(), "token")
	if !errors.Is(err, domain.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
}

func TestIdentityResolver_UserMissing(t *testing.T) {
	resolver := NewIdentityResolver(&stubProvider{identity: domain.Identity{UserID: "u-1"}}, &stubUsers{err: domain.ErrNotFound})
	_, err := resolver.Resolve(context.Background(), "token")
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestIdentityResolver_UserLookupError(t *testing.T) {
	boom := errors.New("connection reset")
	resolver := NewIdentityResolver(&stubProvider{identity: domain.Identity{UserID: "u-1"}}, &stubUsers{err: boom})
	_, err := resolver.Resolve(context.Background(), "token")
	if !errors.Is(err, boom) {
		t.Fatalf("expected lookup error, got %v", err)
	}
	if errors.Is(err, domain.ErrAccountNotFound) || errors.Is(err, domain.ErrInvalidCredential) {
		t.Fatalf("lookup faults must not look like auth failures: %v", err)
	}
}

func TestIdentityResolver_Success(t *testing.T) {
	user := &domain.User{UserID: "u-1", Role: domain.RoleModerator}
	resolver := NewIdentityResolver(&stubProvider{identity: domain.Identity{UserID: "u-1"}}, &stubUsers{user: user})
	authCtx, err := resolver.Resolve(context.Background(), "Token-1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !authCtx.Resolved() || authCtx.Role != domain.RoleModerator || authCtx.RawCredential != "Token-1" {
		t.Fatalf("unexpected auth context: %+v", authCtx)
	}
	authCtx.User.Role = domain.RoleAdmin
	if user.Role != domain.RoleModerator {
		t.Fatalf("auth context must not alias the stored user")
	}
}

func TestIdentityResolver_CoalescesConcurrentLookups(t *testing.T) {
	users := &stubUsers{user: &domain.User{UserID: "u-1", Role: domain.RoleParticipant}, delay: 50 * time.Millisecond}
	resolver := NewIdentityResolver(&stubProvider{identity: domain.Identity{UserID: "u-1"}}, users)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := resolver.Resolve(context.Background(), "token"); err != nil {
				t.Errorf("resolve: %v", err)
			}
		}()
	}
	wg.Wait()
	if calls := users.calls.Load(); calls >= 8 {
		t.Fatalf("expected concurrent lookups to be coalesced, got %d calls", calls)
	}
}

// gatedUsers blocks every lookup until release is closed and honours ctx cancellation.
type gatedUsers struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (u *gatedUsers) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	u.once.Do(func() { close(u.entered) })
	select {
	case <-u.release:
		return &domain.User{UserID: userID, Role: domain.RoleParticipant}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestIdentityResolver_CancelledCallerDoesNotFailOthers(t *testing.T) {
	users := &gatedUsers{entered: make(chan struct{}), release: make(chan struct{})}
	resolver := NewIdentityResolver(&stubProvider{identity: domain.Identity{UserID: "u-1"}}, users)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := resolver.Resolve(firstCtx, "token")
		firstErr <- err
	}()
	<-users.entered

	secondErr := make(chan error, 1)
	go func() {
		_, err := resolver.Resolve(context.Background(), "token")
		secondErr <- err
	}()
	time.Sleep(20 * time.Millisecond)

	cancelFirst()
	if err := <-firstErr; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancelled caller to see context.Canceled, got %v", err)
	}
	close(users.release)
	if err := <-secondErr; err != nil {
		t.Fatalf("expected uncancelled caller to resolve, got %v", err)
	}
}
