//go:build e2e

package match_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"fieldbook/internal/handler/dto/response"
	"fieldbook/internal/usecase/shared"
	"fieldbook/tests/common/dbtest"
	httptesthelper "fieldbook/tests/common/httptest"
	"fieldbook/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type MatchE2ESuite struct {
	e2e.SharedSuite
}

func (s *MatchE2ESuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestMatchE2ESuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(MatchE2ESuite))
}

func (s *MatchE2ESuite) player(id string) string {
	actor := shared.Actor{UserID: id, Email: id + "@example.com", Name: id, Role: "member"}
	dbtest.CreateTestProfile(s.T(), s.DB, actor.UserID, actor.Email, "0812345678", actor.Role)
	return s.Tokens.GenerateToken(s.T(), actor)
}

func (s *MatchE2ESuite) upcomingMatch(maxParticipants int) uuid.UUID {
	loc, err := time.LoadLocation(s.Config.Booking.TimeZone)
	s.Require().NoError(err)
	fieldID := dbtest.CreateTestField(s.T(), s.DB, "Pitch B", 10, "120.00")
	return dbtest.CreateTestMatch(s.T(), s.DB, fieldID, time.Now().In(loc).AddDate(0, 0, 3), 18*60, maxParticipants)
}

func (s *MatchE2ESuite) TestRoster() {
	s.Run("Normal case: join then leave", func() {
		matchID := s.upcomingMatch(2)
		token := s.player("user-1")
		path := "/api/matches/" + matchID.String()

		w := httptesthelper.PerformRequest(s.T(), s.Router, http.MethodPost, path+"/join", nil, token)
		var joined response.MatchResponse
		httptesthelper.AssertSuccessResponse(s.T(), w, http.StatusOK, &joined)
		s.True(joined.Joined)
		s.Equal("OPEN", joined.State)
		s.Equal(1, joined.RemainingSpots)
		s.Require().Len(joined.Participants, 1)
		s.Equal("user-1", joined.Participants[0].UserID)
		s.NotNil(joined.Participants[0].JoinedAt)

		w = httptesthelper.PerformRequest(s.T(), s.Router, http.MethodPost, path+"/join", nil, token)
		httptesthelper.AssertErrorCode(s.T(), w, http.StatusConflict, "ALREADY_JOINED")

		w = httptesthelper.PerformRequest(s.T(), s.Router, http.MethodDelete, path+"/participants/me", nil, token)
		var left response.MatchResponse
		httptesthelper.AssertSuccessResponse(s.T(), w, http.StatusOK, &left)
		s.False(left.Joined)
		s.Empty(left.Participants)
		s.Equal(0, dbtest.RosterSize(s.T(), s.DB, matchID))

		w = httptesthelper.PerformRequest(s.T(), s.Router, http.MethodDelete, path+"/participants/me", nil, token)
		httptesthelper.AssertErrorCode(s.T(), w, http.StatusConflict, "NOT_PARTICIPANT")
	})

	s.Run("Normal case: anonymous viewers see the match", func() {
		matchID := s.upcomingMatch(4)

		w := httptesthelper.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/matches/"+matchID.String(), nil, "")
		var view response.MatchResponse
		httptesthelper.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)
		s.False(view.Joined)
		s.Equal(4, view.RemainingSpots)
		s.NotNil(view.Participants)
	})

	s.Run("Error case: unknown match", func() {
		w := httptesthelper.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/matches/"+uuid.NewString(), nil, "")
		httptesthelper.AssertErrorCode(s.T(), w, http.StatusNotFound, "MATCH_NOT_FOUND")
	})

	s.Run("Error case: full roster", func() {
		matchID := s.upcomingMatch(1)
		path := "/api/matches/" + matchID.String() + "/join"

		w := httptesthelper.PerformRequest(s.T(), s.Router, http.MethodPost, path, nil, s.player("user-1"))
		httptesthelper.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)

		w = httptesthelper.PerformRequest(s.T(), s.Router, http.MethodPost, path, nil, s.player("user-2"))
		httptesthelper.AssertErrorCode(s.T(), w, http.StatusConflict, "MATCH_FULL")
	})
}

func (s *MatchE2ESuite) TestConcurrentJoins() {
	s.Run("Normal case: parallel joins never overfill", func() {
		const maxParticipants, players = 3, 10
		matchID := s.upcomingMatch(maxParticipants)
		path := "/api/matches/" + matchID.String() + "/join"

		tokens := make([]string, players)
		for i := range players {
			tokens[i] = s.player(fmt.Sprintf("user-%d", i))
		}

		var (
			wg sync.WaitGroup
			mu sync.Mutex
			ok int
		)
		for _, token := range tokens {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptesthelper.PerformRequest(s.T(), s.Router, http.MethodPost, path, nil, token)
				if w.Code == http.StatusOK {
					mu.Lock()
					ok++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		size := dbtest.RosterSize(s.T(), s.DB, matchID)
		s.Equal(maxParticipants, size)
		s.Equal(size, ok)
	})
}
