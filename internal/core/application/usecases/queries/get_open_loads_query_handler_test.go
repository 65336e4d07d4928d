package queries_test

import (
	"context"
	"testing"

	"loadboard/internal/core/application/usecases/queries"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"

	"github.com/stretchr/testify/suite"
)

type GetOpenLoadsQueryHandlerTestSuite struct {
	postgresQuerySuite
	handler queries.GetOpenLoadsQueryHandler
}

func (s *GetOpenLoadsQueryHandlerTestSuite) SetupSuite() {
	s.postgresQuerySuite.SetupSuite()
	s.handler = queries.NewGetOpenLoadsQueryHandler(s.db)
}

func (s *GetOpenLoadsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetOpenLoadsQuery("", "", nil)
	s.Require().NoError(err)

	result, err := s.handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.NotNil(result)
	s.Empty(result)
}

func (s *GetOpenLoadsQueryHandlerTestSuite) TestHandle_OnlyOpenLoads_NewestFirst() {
	shipperID := kernel.NewUUID()
	first := s.newOpenLoad(shipperID, "Mumbai", "Pune", 18000)
	second := s.newOpenLoad(shipperID, "Delhi", "Jaipur", 25000)
	taken := s.newLoadInStatus(shipperID, kernel.NewUUID(), "Surat", "Indore", load.Assigned)

	s.saveLoad(first)
	s.saveLoad(second)
	s.saveLoad(taken)

	query, err := queries.NewGetOpenLoadsQuery("", "", nil)
	s.Require().NoError(err)

	result, err := s.handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Require().Len(result, 2)
	for _, view := range result {
		s.Equal(load.Open, view.Status)
		s.NotEqual(taken.ID(), view.ID)
	}
	s.False(result[0].CreatedAt.Before(result[1].CreatedAt), "newest posting comes first")
}

func (s *GetOpenLoadsQueryHandlerTestSuite) TestHandle_ContactPhoneIsBlanked() {
	s.saveLoad(s.newOpenLoad(kernel.NewUUID(), "Mumbai", "Pune", 18000))

	query, err := queries.NewGetOpenLoadsQuery("", "", nil)
	s.Require().NoError(err)

	result, err := s.handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Empty(result[0].ContactPhone)
}

func (s *GetOpenLoadsQueryHandlerTestSuite) TestHandle_CityFiltersAreCaseInsensitive() {
	shipperID := kernel.NewUUID()
	s.saveLoad(s.newOpenLoad(shipperID, "Mumbai", "Pune", 18000))
	s.saveLoad(s.newOpenLoad(shipperID, "Delhi", "Jaipur", 25000))

	query, err := queries.NewGetOpenLoadsQuery("mumbai", "PUNE", nil)
	s.Require().NoError(err)

	result, err := s.handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Equal("Mumbai", result[0].PickupCity)
	s.Equal("Pune", result[0].DropCity)
}

func (s *GetOpenLoadsQueryHandlerTestSuite) TestHandle_MinPriceFilter() {
	shipperID := kernel.NewUUID()
	s.saveLoad(s.newOpenLoad(shipperID, "Mumbai", "Pune", 18000))
	s.saveLoad(s.newOpenLoad(shipperID, "Delhi", "Jaipur", 25000))

	minPrice := int64(20000)
	query, err := queries.NewGetOpenLoadsQuery("", "", &minPrice)
	s.Require().NoError(err)

	result, err := s.handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Equal(int64(25000), result[0].Price)
}

func (s *GetOpenLoadsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := s.handler.Handle(context.Background(), queries.GetOpenLoadsQuery{})

	s.Require().Error(err)
	s.Nil(result)
	s.ErrorIs(err, queries.ErrGetOpenLoadsQueryIsNotConstructed)
}

func TestGetOpenLoadsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOpenLoadsQueryHandlerTestSuite))
}
