package actions_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/quickroll-bot/internal/actions"
	qrerr "github.com/KirkDiggler/quickroll-bot/internal/errors"
)

type RedisRepoTestSuite struct {
	suite.Suite
	ctx        context.Context
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       actions.Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = actions.NewRedis(s.mockClient)
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) marshal(data actions.Data) string {
	jsonData, err := json.Marshal(data)
	s.Require().NoError(err)
	return string(jsonData)
}

func (s *RedisRepoTestSuite) TestPut() {
	def := &actions.Definition{ID: "seek", Name: "Seek", Cost: 1, Traits: []string{"concentrate", "secret"}}
	expected := s.marshal(actions.Data{ID: "seek", Name: "Seek", Cost: 1, Traits: []string{"concentrate", "secret"}})

	// Happy path
	s.mock.ExpectSet("action:seek", expected, 0).SetVal("OK")
	s.mock.ExpectSAdd("actions", "seek").SetVal(1)

	s.NoError(s.repo.Put(s.ctx, def))

	// Dependency error
	s.mock.ExpectSet("action:seek", expected, 0).SetErr(errors.New("redis error"))

	s.Error(s.repo.Put(s.ctx, def))

	// Input validation never reaches Redis
	s.Error(s.repo.Put(s.ctx, nil))
	s.Error(s.repo.Put(s.ctx, &actions.Definition{ID: "fly", Name: "Fly"}))
}

func (s *RedisRepoTestSuite) TestGet() {
	s.mock.ExpectGet("action:trip").SetVal(s.marshal(actions.Data{ID: "trip", Name: "Trip", Cost: 1}))

	def, err := s.repo.Get(s.ctx, "trip")
	s.Require().NoError(err)
	s.Equal(&actions.Definition{ID: "trip", Name: "Trip", Cost: 1}, def)

	// Missing key
	s.mock.ExpectGet("action:trip").RedisNil()

	_, err = s.repo.Get(s.ctx, "trip")
	s.True(qrerr.IsNotFound(err))

	// Dependency error
	s.mock.ExpectGet("action:trip").SetErr(errors.New("redis error"))

	_, err = s.repo.Get(s.ctx, "trip")
	s.Error(err)
	s.False(qrerr.IsNotFound(err))

	// Corrupt data
	s.mock.ExpectGet("action:trip").SetVal("{not json")

	_, err = s.repo.Get(s.ctx, "trip")
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestList() {
	s.mock.MatchExpectationsInOrder(false)
	s.mock.ExpectSMembers("actions").SetVal([]string{"trip", "seek", "hide"})
	s.mock.ExpectGet("action:trip").SetVal(s.marshal(actions.Data{ID: "trip", Name: "Trip", Cost: 1}))
	s.mock.ExpectGet("action:seek").SetVal(s.marshal(actions.Data{ID: "seek", Name: "Seek", Cost: 1}))
	s.mock.ExpectGet("action:hide").RedisNil()

	defs, err := s.repo.List(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(defs, 2)
	s.Equal("seek", defs[0].ID)
	s.Equal("trip", defs[1].ID)
}

func (s *RedisRepoTestSuite) TestList_DependencyError() {
	s.mock.ExpectSMembers("actions").SetErr(errors.New("redis error"))

	_, err := s.repo.List(s.ctx)
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestDelete() {
	s.mock.ExpectDel("action:seek").SetVal(1)
	s.mock.ExpectSRem("actions", "seek").SetVal(1)

	s.NoError(s.repo.Delete(s.ctx, "seek"))

	s.mock.ExpectDel("action:seek").SetVal(0)
	s.mock.ExpectSRem("actions", "seek").SetVal(0)

	s.True(qrerr.IsNotFound(s.repo.Delete(s.ctx, "seek")))
}
