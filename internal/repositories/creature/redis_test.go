package creature_test

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-statblock/internal/errors"
	creaturerepo "github.com/KirkDiggler/rpg-statblock/internal/repositories/creature"
)

var errRedisDown = stderrors.New("redis down")

// RedisFailureTestSuite covers driver failures that miniredis cannot produce
type RedisFailureTestSuite struct {
	suite.Suite
	mock redismock.ClientMock
	repo creaturerepo.Repository
	ctx  context.Context
}

func (s *RedisFailureTestSuite) SetupTest() {
	client, mock := redismock.NewClientMock()
	s.mock = mock
	s.repo = creaturerepo.NewRedisRepository(client)
	s.ctx = context.Background()
}

func (s *RedisFailureTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *RedisFailureTestSuite) TestCreateExistsCheckFails() {
	s.mock.ExpectExists("creature:a1").SetErr(errRedisDown)

	_, err := s.repo.Create(s.ctx, creaturerepo.CreateInput{Record: newRecord("a1", 0)})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.ErrorIs(err, errRedisDown)
}

func (s *RedisFailureTestSuite) TestGetFails() {
	s.mock.ExpectGet("creature:a1").SetErr(errRedisDown)

	_, err := s.repo.Get(s.ctx, creaturerepo.GetInput{ID: "a1"})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *RedisFailureTestSuite) TestGetCorruptPayload() {
	s.mock.ExpectGet("creature:a1").SetVal("{not json")

	_, err := s.repo.Get(s.ctx, creaturerepo.GetInput{ID: "a1"})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *RedisFailureTestSuite) TestGetEmptyPayload() {
	for _, payload := range []string{"{}", "null", `{"id":"a1"}`} {
		s.Run(payload, func() {
			s.mock.ExpectGet("creature:a1").SetVal(payload)

			_, err := s.repo.Get(s.ctx, creaturerepo.GetInput{ID: "a1"})
			s.Require().Error(err)
			s.True(errors.IsInternal(err))
			s.Contains(err.Error(), "stored creature payload is empty")
		})
	}
}

func (s *RedisFailureTestSuite) TestListCountFails() {
	s.mock.ExpectZCard("creature:index").SetErr(errRedisDown)

	_, err := s.repo.List(s.ctx, creaturerepo.ListInput{})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *RedisFailureTestSuite) TestListSkipsStaleIndexEntries() {
	data, err := json.Marshal(newRecord("b2", 0))
	s.Require().NoError(err)

	s.mock.ExpectZCard("creature:index").SetVal(2)
	s.mock.ExpectZRevRange("creature:index", 0, 9).SetVal([]string{"a1", "b2"})
	s.mock.ExpectMGet("creature:a1", "creature:b2").SetVal([]interface{}{nil, string(data)})

	out, err := s.repo.List(s.ctx, creaturerepo.ListInput{Limit: 10})
	s.Require().NoError(err)
	s.Equal(2, out.Total)
	s.Equal([]string{"b2"}, ids(out.Records))
}

func TestRedisFailureTestSuite(t *testing.T) {
	suite.Run(t, new(RedisFailureTestSuite))
}
