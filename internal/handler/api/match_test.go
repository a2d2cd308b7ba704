//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"fieldbook/internal/handler/api"
	resdto "fieldbook/internal/handler/dto/response"
	"fieldbook/internal/pkg/clock"
	"fieldbook/internal/pkg/errs"
	"fieldbook/internal/usecase/queries"
	"fieldbook/tests/common/builder"
	commonhttp "fieldbook/tests/common/httptest"
	commandsmock "fieldbook/tests/mock/commands"
	queriesmock "fieldbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MatchHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockMatchCommands
	mockQueries  *queriesmock.MockMatchQueries
	clk          clock.Clock
}

func (s *MatchHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockMatchCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockMatchQueries(s.mockCtrl)
	s.clk = clock.NewMockClock(time.Date(2030, 1, 15, 8, 0, 0, 0, builder.Bangkok))
	h := api.NewMatchHandler(s.mockCommands, s.mockQueries)

	s.router.Use(stubAuth)
	s.router.GET("/matches/:id", h.Get)
	s.router.POST("/matches/:id/join", h.Join)
	s.router.DELETE("/matches/:id/participants/me", h.Leave)
}

func (s *MatchHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMatchHandlerSuite(t *testing.T) {
	suite.Run(t, new(MatchHandlerTestSuite))
}

func (s *MatchHandlerTestSuite) view(b *builder.MatchBuilder, actorID string) *queries.MatchView {
	return queries.ToMatchView(b.BuildDomain(), "Court A", actorID, s.clk)
}

func (s *MatchHandlerTestSuite) TestGet() {
	joinedAt := time.Date(2030, 1, 10, 12, 0, 0, 0, builder.Bangkok)
	b := builder.NewMatchBuilder().WithLegacy("legacy-user").WithRecord("user-2", joinedAt)
	url := "/matches/" + b.ID.String()

	s.Run("success: anonymous callers see the roster", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), "", b.ID).Return(s.view(b, ""), nil).Times(1)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.MatchResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("OPEN", body.State)
		s.Equal(2, body.RemainingSpots)
		s.False(body.Joined)
		s.Require().Len(body.Participants, 2)
		s.Equal("legacy-user", body.Participants[0].UserID)
		s.Nil(body.Participants[0].JoinedAt)
		s.Require().NotNil(body.Participants[1].JoinedAt)
		s.True(joinedAt.Equal(*body.Participants[1].JoinedAt))
	})

	s.Run("success: joined is set for a participant", func() {
		mine := builder.NewMatchBuilder().WithLegacy(member.UserID)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), member.UserID, mine.ID).Return(s.view(mine, member.UserID), nil).Times(1)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/matches/"+mine.ID.String(), nil, memberToken)

		var body resdto.MatchResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Joined)
	})

	s.Run("error: 404 Not Found for unknown match", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), "", id).Return(nil, errs.ErrMatchNotFound).Times(1)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/matches/"+id.String(), nil, "")
		commonhttp.AssertErrorCode(s.T(), rec, http.StatusNotFound, "MATCH_NOT_FOUND")
	})
}

func (s *MatchHandlerTestSuite) TestJoin() {
	b := builder.NewMatchBuilder().WithMax(2).WithLegacy("user-2")
	url := "/matches/" + b.ID.String() + "/join"

	s.Run("success: returns the updated roster", func() {
		joined := builder.NewMatchBuilder().WithMax(2).WithLegacy("user-2").WithRecord(member.UserID, s.clk.Now())
		joined.ID = b.ID
		s.mockCommands.EXPECT().Join(gomock.Any(), member, b.ID).Return(s.view(joined, member.UserID), nil).Times(1)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, memberToken)

		var body resdto.MatchResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("FULL", body.State)
		s.Equal(0, body.RemainingSpots)
		s.True(body.Joined)
	})

	s.Run("error: maps roster errors", func() {
		cases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{name: "anonymous", err: errs.ErrAuthRequired, status: http.StatusUnauthorized, code: "AUTH_REQUIRED"},
			{name: "full", err: errs.ErrMatchFull, status: http.StatusConflict, code: "MATCH_FULL"},
			{name: "already joined", err: errs.ErrAlreadyJoined, status: http.StatusConflict, code: "ALREADY_JOINED"},
			{name: "started", err: errs.ErrMatchEnded, status: http.StatusUnprocessableEntity, code: "MATCH_ENDED"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Join(gomock.Any(), gomock.Any(), b.ID).Return(nil, tc.err).Times(1)

				rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, memberToken)
				commonhttp.AssertErrorCode(s.T(), rec, tc.status, tc.code)
			})
		}
	})
}

func (s *MatchHandlerTestSuite) TestLeave() {
	b := builder.NewMatchBuilder()
	url := "/matches/" + b.ID.String() + "/participants/me"

	s.Run("success: returns the roster without the caller", func() {
		s.mockCommands.EXPECT().Leave(gomock.Any(), member, b.ID).Return(s.view(b, member.UserID), nil).Times(1)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, memberToken)

		var body resdto.MatchResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Joined)
		s.NotNil(body.Participants)
	})

	s.Run("error: 409 Conflict when not a participant", func() {
		s.mockCommands.EXPECT().Leave(gomock.Any(), member, b.ID).Return(nil, errs.ErrNotParticipant).Times(1)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, memberToken)
		commonhttp.AssertErrorCode(s.T(), rec, http.StatusConflict, "NOT_PARTICIPANT")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodDelete, "/matches/nope/participants/me", nil, memberToken)
		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
