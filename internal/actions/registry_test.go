package actions_test

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/quickroll-bot/internal/actions"
	mockactions "github.com/KirkDiggler/quickroll-bot/internal/actions/mock"
	qrerr "github.com/KirkDiggler/quickroll-bot/internal/errors"
	"github.com/KirkDiggler/quickroll-bot/internal/quickroll"
	mockquickroll "github.com/KirkDiggler/quickroll-bot/internal/quickroll/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RegistryTestSuite struct {
	suite.Suite
	ctx       context.Context
	mockCtrl  *gomock.Controller
	repo      *actions.InMemoryRepository
	announcer *mockactions.MockAnnouncer
	notifier  *mockquickroll.MockNotifier
	registry  *actions.Registry
}

func (s *RegistryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.repo = actions.NewInMemoryRepository()
	s.announcer = mockactions.NewMockAnnouncer(s.mockCtrl)
	s.notifier = mockquickroll.NewMockNotifier(s.mockCtrl)

	var err error
	s.registry, err = actions.NewRegistry(&actions.RegistryConfig{
		Repository: s.repo,
		Announcer:  s.announcer,
	})
	s.Require().NoError(err)
}

func (s *RegistryTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (s *RegistryTestSuite) parser() *quickroll.Parser {
	return quickroll.New(quickroll.Host{
		Notifier: s.notifier,
		Actions:  s.registry.Lookup(),
	})
}

func (s *RegistryTestSuite) TestNewRegistry_RequiresRepository() {
	_, err := actions.NewRegistry(&actions.RegistryConfig{})
	s.Error(err)

	_, err = actions.NewRegistry(nil)
	s.Error(err)
}

func (s *RegistryTestSuite) TestParsedActionIsAnnounced() {
	s.Require().NoError(actions.Seed(s.ctx, s.repo, nil))

	s.announcer.EXPECT().Announce(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, use *actions.Use) error {
		s.Equal("Raise a Shield", use.Definition.Name)
		s.Equal(quickroll.DefaultActionOptions().Actors, use.Actors)
		return nil
	})

	s.True(s.parser().Parse(s.ctx, "Raise a Shield"))
}

func (s *RegistryTestSuite) TestUnseededActionIsUnavailable() {
	s.notifier.EXPECT().Warn("action 'feint' unavailable")

	s.False(s.parser().Parse(s.ctx, "feint"))
}

func (s *RegistryTestSuite) TestAnnouncerFailureIsGeneric() {
	s.Require().NoError(s.repo.Put(s.ctx, &actions.Definition{ID: "trip", Name: "Trip", Cost: 1}))
	s.announcer.EXPECT().Announce(gomock.Any(), gomock.Any()).Return(errors.New("discord down"))
	s.notifier.EXPECT().Warn("could not process input")

	s.False(s.parser().Parse(s.ctx, "trip"))
}

func (s *RegistryTestSuite) TestRepositoryFailureIsGeneric() {
	repo := mockactions.NewMockRepository(s.mockCtrl)
	repo.EXPECT().Get(s.ctx, "hide").Return(nil, errors.New("connection refused"))
	s.notifier.EXPECT().Warn("could not process input")

	registry, err := actions.NewRegistry(&actions.RegistryConfig{Repository: repo})
	s.Require().NoError(err)

	p := quickroll.New(quickroll.Host{Notifier: s.notifier, Actions: registry.Lookup()})
	s.False(p.Parse(s.ctx, "hide"))
}

func (s *RegistryTestSuite) TestWithoutAnnouncer() {
	s.Require().NoError(s.repo.Put(s.ctx, &actions.Definition{ID: "seek", Name: "Seek", Cost: 1}))

	action, err := s.registry.WithAnnouncer(nil).Get(s.ctx, "seek")
	s.Require().NoError(err)

	err = action.Use(s.ctx, quickroll.DefaultActionOptions())
	s.True(qrerr.IsUnavailable(err))
}

func (s *RegistryTestSuite) TestWithAnnouncerSharesRepository() {
	s.Require().NoError(s.repo.Put(s.ctx, &actions.Definition{ID: "escape", Name: "Escape", Cost: 1}))
	other := mockactions.NewMockAnnouncer(s.mockCtrl)
	other.EXPECT().Announce(s.ctx, gomock.Any()).Return(nil)

	action, err := s.registry.WithAnnouncer(other).Get(s.ctx, "escape")
	s.Require().NoError(err)
	s.NoError(action.Use(s.ctx, quickroll.DefaultActionOptions()))

	defs, err := s.registry.List(s.ctx)
	s.Require().NoError(err)
	s.Len(defs, 1)
}
