package creature_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-statblock/internal/entities/creature"
	"github.com/KirkDiggler/rpg-statblock/internal/errors"
	creaturerepo "github.com/KirkDiggler/rpg-statblock/internal/repositories/creature"
	"github.com/KirkDiggler/rpg-statblock/internal/testutils"
)

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newRecord(id string, age time.Duration) *creature.Record {
	return &creature.Record{
		ID: id,
		Creature: &creature.Creature{
			Name:   "Goblin " + id,
			Armor:  &creature.Armor{Class: 15, Types: []string{"leather armor", "shield"}},
			Health: &creature.Roll{Value: 7, Formula: "2d6"},
		},
		Source:    []string{"Goblin " + id, "Armor Class 15 (leather armor, shield)"},
		Format:    creature.FormatStandard,
		CreatedAt: baseTime.Add(-age),
	}
}

// RepositoryContractSuite runs the same behavior checks against every backend
type RepositoryContractSuite struct {
	suite.Suite
	open func(t *testing.T) creaturerepo.Repository
	repo creaturerepo.Repository
	ctx  context.Context
}

func (s *RepositoryContractSuite) SetupTest() {
	s.repo = s.open(s.T())
	s.ctx = context.Background()
}

func (s *RepositoryContractSuite) create(records ...*creature.Record) {
	for _, r := range records {
		_, err := s.repo.Create(s.ctx, creaturerepo.CreateInput{Record: r})
		s.Require().NoError(err)
	}
}

func (s *RepositoryContractSuite) TestCreateAndGet() {
	rec := newRecord("a1", 0)
	out, err := s.repo.Create(s.ctx, creaturerepo.CreateInput{Record: rec})
	s.Require().NoError(err)
	s.Same(rec, out.Record)

	got, err := s.repo.Get(s.ctx, creaturerepo.GetInput{ID: "a1"})
	s.Require().NoError(err)
	s.Equal(rec.ID, got.Record.ID)
	s.Equal(rec.Creature, got.Record.Creature)
	s.Equal(rec.Source, got.Record.Source)
	s.Equal(creature.FormatStandard, got.Record.Format)
	s.True(rec.CreatedAt.Equal(got.Record.CreatedAt))
}

func (s *RepositoryContractSuite) TestCreateDuplicate() {
	s.create(newRecord("a1", 0))

	_, err := s.repo.Create(s.ctx, creaturerepo.CreateInput{Record: newRecord("a1", time.Hour)})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RepositoryContractSuite) TestInvalidArguments() {
	_, err := s.repo.Create(s.ctx, creaturerepo.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, creaturerepo.CreateInput{Record: &creature.Record{}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, creaturerepo.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, creaturerepo.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryContractSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, creaturerepo.GetInput{ID: "nope"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryContractSuite) TestListNewestFirst() {
	for i := 0; i < 5; i++ {
		s.create(newRecord(fmt.Sprintf("r%d", i), time.Duration(i)*time.Minute))
	}

	s.Run("all", func() {
		out, err := s.repo.List(s.ctx, creaturerepo.ListInput{})
		s.Require().NoError(err)
		s.Equal(5, out.Total)
		s.Equal([]string{"r0", "r1", "r2", "r3", "r4"}, ids(out.Records))
	})

	s.Run("page", func() {
		out, err := s.repo.List(s.ctx, creaturerepo.ListInput{Limit: 2, Offset: 1})
		s.Require().NoError(err)
		s.Equal(5, out.Total)
		s.Equal([]string{"r1", "r2"}, ids(out.Records))
	})

	s.Run("past the end", func() {
		out, err := s.repo.List(s.ctx, creaturerepo.ListInput{Limit: 2, Offset: 10})
		s.Require().NoError(err)
		s.Equal(5, out.Total)
		s.Empty(out.Records)
	})
}

func (s *RepositoryContractSuite) TestListEmpty() {
	out, err := s.repo.List(s.ctx, creaturerepo.ListInput{Limit: 20})
	s.Require().NoError(err)
	s.Zero(out.Total)
	s.Empty(out.Records)
}

func (s *RepositoryContractSuite) TestDelete() {
	s.create(newRecord("a1", 0), newRecord("a2", time.Minute))

	_, err := s.repo.Delete(s.ctx, creaturerepo.DeleteInput{ID: "a1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, creaturerepo.GetInput{ID: "a1"})
	s.True(errors.IsNotFound(err))

	out, err := s.repo.List(s.ctx, creaturerepo.ListInput{})
	s.Require().NoError(err)
	s.Equal(1, out.Total)
	s.Equal([]string{"a2"}, ids(out.Records))

	_, err = s.repo.Delete(s.ctx, creaturerepo.DeleteInput{ID: "a1"})
	s.True(errors.IsNotFound(err))
}

func ids(records []*creature.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{
		open: func(t *testing.T) creaturerepo.Repository {
			client, _ := testutils.CreateTestRedisClient(t)
			return creaturerepo.NewRedisRepository(client)
		},
	})
}

func TestSQLiteRepository(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{
		open: func(t *testing.T) creaturerepo.Repository {
			repo, err := creaturerepo.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "creatures.db"))
			if err != nil {
				t.Fatalf("open sqlite repository: %v", err)
			}
			t.Cleanup(func() { _ = repo.Close() })
			return repo
		},
	})
}

func TestOpenSQLiteRequiresPath(t *testing.T) {
	_, err := creaturerepo.OpenSQLite(context.Background(), " ")
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestOpenSQLiteReopens(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "creatures.db")

	repo, err := creaturerepo.OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := repo.Create(ctx, creaturerepo.CreateInput{Record: newRecord("kept", 0)}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	repo, err = creaturerepo.OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = repo.Close() }()

	got, err := repo.Get(ctx, creaturerepo.GetInput{ID: "kept"})
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if got.Record.Name() != "Goblin kept" {
		t.Fatalf("unexpected name %q", got.Record.Name())
	}
}
