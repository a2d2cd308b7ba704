//go:build unit

package match_test

import (
	"testing"
	"time"

	"fieldbook/internal/domain/match"
	"fieldbook/internal/domain/reservation"
	"fieldbook/internal/domain/user"
	"fieldbook/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bkk = time.FixedZone("ICT", 7*60*60)
	now = time.Date(2025, 6, 10, 9, 0, 0, 0, bkk)
)

func newMatch(maxParticipants int, at time.Time, participants ...match.Participant) *match.Match {
	return match.ReconstructMatch(
		uuid.New(), uuid.New(),
		reservation.DateOf(at),
		reservation.MustSlotTime(at.Format("15:04")),
		2*time.Hour,
		maxParticipants,
		participants,
		"Friday futsal",
	)
}

func member(id string) *user.Profile {
	return user.ReconstructProfile(id, id+"@example.com", "Player "+id, "0812345678", user.RoleMember)
}

func userIDs(m *match.Match) []string {
	var ids []string
	for _, p := range m.Participants() {
		ids = append(ids, p.UserID())
	}
	return ids
}

func TestMatch_Join(t *testing.T) {
	tomorrow := now.Add(24 * time.Hour)

	tests := []struct {
		name  string
		match *match.Match
		user  *user.Profile
		errIs error
	}{
		{name: "anonymous", match: newMatch(2, tomorrow), user: nil, errIs: errs.ErrAuthRequired},
		{
			name:  "no phone",
			match: newMatch(2, tomorrow),
			user:  user.ReconstructProfile("a", "a@example.com", "A", "", user.RoleMember),
			errIs: errs.ErrMissingContactInfo,
		},
		{
			name:  "already joined as legacy entry",
			match: newMatch(1, tomorrow, match.LegacyParticipant("a")),
			user:  member("a"),
			errIs: errs.ErrAlreadyJoined,
		},
		{
			name:  "full",
			match: newMatch(1, tomorrow, match.LegacyParticipant("b")),
			user:  member("a"),
			errIs: errs.ErrMatchFull,
		},
		{
			name:  "full is reported before ended",
			match: newMatch(1, now.Add(-time.Hour), match.LegacyParticipant("b")),
			user:  member("a"),
			errIs: errs.ErrMatchFull,
		},
		{
			name:  "ended",
			match: newMatch(2, now.Add(-time.Hour)),
			user:  member("a"),
			errIs: errs.ErrMatchEnded,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(tt.match.Participants())
			_, err := tt.match.Join(tt.user, now)
			require.ErrorIs(t, err, tt.errIs)
			assert.Len(t, tt.match.Participants(), before)
		})
	}

	t.Run("success appends a record", func(t *testing.T) {
		m := newMatch(2, tomorrow)
		p, err := m.Join(member("a"), now)
		require.NoError(t, err)

		rec, ok := p.Record()
		require.True(t, ok)
		assert.Equal(t, match.Record{UserID: "a", UserEmail: "a@example.com", UserName: "Player a", JoinedAt: now}, rec)
		assert.Equal(t, []string{"a"}, userIDs(m))
	})

	t.Run("second join by same user is rejected", func(t *testing.T) {
		m := newMatch(1, tomorrow)
		_, err := m.Join(member("a"), now)
		require.NoError(t, err)

		_, err = m.Join(member("a"), now)
		require.ErrorIs(t, err, errs.ErrAlreadyJoined)
		assert.Len(t, m.Participants(), 1)
	})

	t.Run("fills up then rejects", func(t *testing.T) {
		m := newMatch(2, tomorrow)

		_, err := m.Join(member("a"), now)
		require.NoError(t, err)
		assert.False(t, m.IsFull())

		_, err = m.Join(member("b"), now)
		require.NoError(t, err)
		assert.True(t, m.IsFull())
		assert.Equal(t, match.StateFull, m.State(now))

		_, err = m.Join(member("c"), now)
		require.ErrorIs(t, err, errs.ErrMatchFull)
		assert.Equal(t, []string{"a", "b"}, userIDs(m))
	})
}

func TestMatch_Leave(t *testing.T) {
	tomorrow := now.Add(24 * time.Hour)

	t.Run("not participant", func(t *testing.T) {
		m := newMatch(2, tomorrow, match.LegacyParticipant("b"))
		require.ErrorIs(t, m.Leave("a"), errs.ErrNotParticipant)
		assert.Equal(t, []string{"b"}, userIDs(m))
	})

	t.Run("removes legacy entry", func(t *testing.T) {
		m := newMatch(3, tomorrow, match.LegacyParticipant("a"), match.LegacyParticipant("b"))
		require.NoError(t, m.Leave("a"))
		assert.Equal(t, []string{"b"}, userIDs(m))
	})

	t.Run("removes exactly one entry", func(t *testing.T) {
		m := newMatch(3, tomorrow,
			match.LegacyParticipant("a"),
			match.NewParticipant(match.Record{UserID: "a"}),
			match.LegacyParticipant("b"),
		)
		require.NoError(t, m.Leave("a"))
		assert.Equal(t, []string{"a", "b"}, userIDs(m))
	})

	t.Run("join leave rejoin", func(t *testing.T) {
		m := newMatch(2, tomorrow)
		_, err := m.Join(member("a"), now)
		require.NoError(t, err)
		require.NoError(t, m.Leave("a"))
		assert.Empty(t, userIDs(m))

		_, err = m.Join(member("a"), now)
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, userIDs(m))
	})

	t.Run("past match still allows leave", func(t *testing.T) {
		m := newMatch(2, now.Add(-time.Hour), match.LegacyParticipant("a"))
		require.NoError(t, m.Leave("a"))
	})
}

func TestMatch_State(t *testing.T) {
	assert.Equal(t, match.StateOpen, newMatch(2, now.Add(time.Hour)).State(now))
	assert.Equal(t, match.StatePast, newMatch(2, now.Add(-time.Minute)).State(now))
	assert.Equal(t, match.StatePast, newMatch(1, now.Add(-time.Minute), match.LegacyParticipant("a")).State(now))
	assert.Equal(t, 1, newMatch(2, now.Add(time.Hour), match.LegacyParticipant("a")).RemainingSpots())
}

func TestMatch_ParticipantsIsACopy(t *testing.T) {
	m := newMatch(2, now.Add(time.Hour), match.LegacyParticipant("a"))
	ps := m.Participants()
	ps[0] = match.LegacyParticipant("x")
	assert.True(t, m.IsParticipant("a"))
	assert.False(t, m.IsParticipant("x"))
}
