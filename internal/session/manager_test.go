package session_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ospreyai/osprey/internal/domain"
	"github.com/ospreyai/osprey/internal/session"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

type ManagerTestSuite struct {
	suite.Suite
	clock   *fakeClock
	store   *session.MemoryStore
	manager *session.Manager

	demo  domain.Identity
	admin domain.Identity
}

func (s *ManagerTestSuite) SetupTest() {
	s.clock = &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	s.store = session.NewMemoryStore()
	s.manager = session.NewManager(s.store, 24*time.Hour, session.WithClock(s.clock.Now))

	s.demo = domain.Identity{Username: "demo", Role: domain.RoleUser, Name: "Demo User", Email: "demo@ospreyai.com"}
	s.admin = domain.Identity{Username: "admin", Role: domain.RoleAdmin, Name: "Admin User", Email: "admin@ospreyai.com"}
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerTestSuite))
}

func (s *ManagerTestSuite) TestCreate_ResolvesToIdentity() {
	sess, err := s.manager.Create(s.demo)
	s.Require().NoError(err)
	s.NotEmpty(sess.ID)
	s.Equal(s.clock.Now(), sess.CreatedAt)
	s.Equal(s.clock.Now().Add(24*time.Hour), sess.ExpiresAt)

	identity, ok := s.manager.Resolve(sess.ID)
	s.True(ok)
	s.Equal(s.demo, identity)
}

func (s *ManagerTestSuite) TestCreate_IDsAreUnique() {
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		sess, err := s.manager.Create(s.demo)
		s.Require().NoError(err)
		_, dup := seen[sess.ID]
		s.False(dup, "duplicate session id %s", sess.ID)
		seen[sess.ID] = struct{}{}
	}
}

func (s *ManagerTestSuite) TestCreate_EntropyFailure() {
	m := session.NewManager(s.store, time.Hour, session.WithEntropy(failingReader{}))

	_, err := m.Create(s.demo)
	s.Error(err)
	s.Equal(0, s.store.Len())
}

func (s *ManagerTestSuite) TestResolve_UnknownID() {
	_, ok := s.manager.Resolve("never-issued")
	s.False(ok)

	_, ok = s.manager.Resolve("")
	s.False(ok)
}

func (s *ManagerTestSuite) TestResolve_FixedWindow() {
	sess, err := s.manager.Create(s.demo)
	s.Require().NoError(err)

	s.clock.Advance(23*time.Hour + 59*time.Minute)
	_, ok := s.manager.Resolve(sess.ID)
	s.True(ok)

	// Resolving must not have extended the window.
	s.clock.Advance(time.Minute)
	_, ok = s.manager.Resolve(sess.ID)
	s.False(ok)
	s.Equal(0, s.store.Len(), "expired session should be removed on resolve")
}

func (s *ManagerTestSuite) TestDestroy_Idempotent() {
	sess, err := s.manager.Create(s.demo)
	s.Require().NoError(err)

	s.Require().NoError(s.manager.Destroy(sess.ID))
	_, ok := s.manager.Resolve(sess.ID)
	s.False(ok)

	s.NoError(s.manager.Destroy(sess.ID))
	s.NoError(s.manager.Destroy("unknown"))
	s.NoError(s.manager.Destroy(""))
}

func (s *ManagerTestSuite) TestDestroy_LeavesOtherSessions() {
	a, err := s.manager.Create(s.demo)
	s.Require().NoError(err)
	b, err := s.manager.Create(s.admin)
	s.Require().NoError(err)

	s.Require().NoError(s.manager.Destroy(a.ID))

	identity, ok := s.manager.Resolve(b.ID)
	s.True(ok)
	s.Equal(s.admin, identity)
}

func (s *ManagerTestSuite) TestIdentityIsSnapshot() {
	identity := s.demo
	sess, err := s.manager.Create(identity)
	s.Require().NoError(err)

	identity.Role = domain.RoleAdmin

	resolved, ok := s.manager.Resolve(sess.ID)
	s.Require().True(ok)
	s.Equal(domain.RoleUser, resolved.Role)
}

func (s *ManagerTestSuite) TestSweep_RemovesOnlyExpired() {
	old, err := s.manager.Create(s.demo)
	s.Require().NoError(err)

	s.clock.Advance(12 * time.Hour)
	fresh, err := s.manager.Create(s.admin)
	s.Require().NoError(err)

	s.clock.Advance(12 * time.Hour)
	n, err := s.manager.Sweep()
	s.Require().NoError(err)
	s.Equal(1, n)
	s.Equal(1, s.manager.Active())

	_, ok := s.manager.Resolve(old.ID)
	s.False(ok)
	_, ok = s.manager.Resolve(fresh.ID)
	s.True(ok)
}

func (s *ManagerTestSuite) TestConcurrentCreateAndDestroy() {
	const workers = 32

	var wg sync.WaitGroup
	ids := make(chan string, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess, err := s.manager.Create(s.demo)
			if err != nil {
				return
			}
			if _, ok := s.manager.Resolve(sess.ID); !ok {
				return
			}
			ids <- sess.ID
		}()
	}
	wg.Wait()
	close(ids)

	var created []string
	for id := range ids {
		created = append(created, id)
	}
	s.Require().Len(created, workers)
	s.Equal(workers, s.manager.Active())

	for _, id := range created {
		wg.Add(2)
		go func(id string) {
			defer wg.Done()
			_ = s.manager.Destroy(id)
		}(id)
		go func(id string) {
			defer wg.Done()
			_ = s.manager.Destroy(id)
		}(id)
	}
	wg.Wait()

	s.Equal(0, s.manager.Active())
}
