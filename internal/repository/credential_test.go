package repository_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/ospreyai/osprey/internal/domain"
	"github.com/ospreyai/osprey/internal/repository"
)

type CredentialRepositoryTestSuite struct {
	suite.Suite
	repo *repository.CredentialRepository
}

func (s *CredentialRepositoryTestSuite) SetupSuite() {
	repo, err := repository.NewCredentialRepository(repository.DefaultSeed().Users, bcrypt.MinCost)
	s.Require().NoError(err)
	s.repo = repo
}

func TestCredentialRepositorySuite(t *testing.T) {
	suite.Run(t, new(CredentialRepositoryTestSuite))
}

func (s *CredentialRepositoryTestSuite) TestLookup_CaseInsensitive() {
	for _, name := range []string{"demo", "DEMO", "Demo", "  demo "} {
		cred, err := s.repo.Lookup(name)
		s.Require().NoError(err, name)
		s.Equal("demo", cred.Username)
		s.Equal(domain.RoleUser, cred.Role)
	}
}

func (s *CredentialRepositoryTestSuite) TestLookup_NotFound() {
	_, err := s.repo.Lookup("nobody")
	s.ErrorIs(err, domain.ErrUserNotFound)
}

func (s *CredentialRepositoryTestSuite) TestVerify() {
	s.True(s.repo.Verify("admin", "admin123"))
	s.True(s.repo.Verify("Admin", "admin123"))
	s.False(s.repo.Verify("admin", "wrongpassword"))
	s.False(s.repo.Verify("admin", "ADMIN123"))
	s.False(s.repo.Verify("nobody", "admin123"))
	s.False(s.repo.Verify("admin", ""))
}

func (s *CredentialRepositoryTestSuite) TestPasswordsAreHashed() {
	cred, err := s.repo.Lookup("demo")
	s.Require().NoError(err)
	s.NotEqual("demo123", string(cred.PasswordHash))

	cost, err := bcrypt.Cost(cred.PasswordHash)
	s.Require().NoError(err)
	s.Equal(bcrypt.MinCost, cost)
}

func (s *CredentialRepositoryTestSuite) TestAuthenticate_RoleMatchesStored() {
	cases := map[string]domain.Role{
		"admin":    domain.RoleAdmin,
		"demo":     domain.RoleUser,
		"investor": domain.RoleUser,
	}
	passwords := map[string]string{
		"admin":    "admin123",
		"demo":     "demo123",
		"investor": "investor123",
	}

	for username, role := range cases {
		identity, err := s.repo.Authenticate(username, passwords[username])
		s.Require().NoError(err, username)
		s.Equal(role, identity.Role, username)
		s.Equal(username, identity.Username)
	}
}

func (s *CredentialRepositoryTestSuite) TestAuthenticate_Invalid() {
	_, err := s.repo.Authenticate("admin", "wrongpassword")
	s.ErrorIs(err, domain.ErrInvalidCredentials)

	_, err = s.repo.Authenticate("ghost", "whatever")
	s.ErrorIs(err, domain.ErrInvalidCredentials)
}

func (s *CredentialRepositoryTestSuite) TestList_SeedOrderWithoutHashes() {
	users := s.repo.List()
	s.Require().Len(users, 3)
	s.Equal("admin", users[0].Username)
	s.Equal("demo", users[1].Username)
	s.Equal("investor", users[2].Username)
	s.Equal("Investor Access", users[2].Name)
}

func (s *CredentialRepositoryTestSuite) TestPrecomputedHash() {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	s.Require().NoError(err)

	repo, err := repository.NewCredentialRepository([]repository.UserSeed{
		{Username: "ops", PasswordHash: string(hash), Role: "admin", Name: "Ops"},
	}, bcrypt.MinCost)
	s.Require().NoError(err)

	s.True(repo.Verify("ops", "s3cret"))
	s.False(repo.Verify("ops", "nope"))
}

func (s *CredentialRepositoryTestSuite) TestRejectsBadSeeds() {
	_, err := repository.NewCredentialRepository([]repository.UserSeed{
		{Username: "ops", PasswordHash: "not-a-bcrypt-hash", Role: "admin"},
	}, bcrypt.MinCost)
	s.ErrorIs(err, domain.ErrValidation)

	_, err = repository.NewCredentialRepository([]repository.UserSeed{
		{Username: "ops", Password: "a", Role: "user"},
		{Username: "OPS", Password: "b", Role: "user"},
	}, bcrypt.MinCost)
	s.ErrorIs(err, domain.ErrValidation)
}
