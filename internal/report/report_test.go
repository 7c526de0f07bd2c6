package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mauv0809/volleystat/internal/analytics"
	"github.com/mauv0809/volleystat/internal/club"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	jan10 = time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	feb14 = time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)
)

func samplePlayerReport() PlayerReport {
	return PlayerReport{
		Player:  club.Player{ID: 1, Name: "Michael Johnson", Position: "Outside Hitter", TeamID: 1},
		Metrics: analytics.PlayerMetrics{AttackingEfficiency: 28, BlockingAverage: 1.5, ServingAces: 2},
		Recent: []club.PlayerStatLine{
			{PlayerStat: club.PlayerStat{Attacks: 40, Kills: 18, Errors: 7, Blocks: 1, Digs: 6, Aces: 1}, Opponent: "Queen's Gaels", MatchDate: feb14},
			{PlayerStat: club.PlayerStat{Attacks: 35, Kills: 15, Errors: 5, Blocks: 2, Digs: 8, Aces: 1}, Opponent: "Western Mustangs", MatchDate: jan10},
		},
		Recommendations: []string{"Practice aggressive serving with targeting"},
	}
}

// assertScalar fails if a row holds anything a sink cannot take.
func assertScalar(t *testing.T, rows [][]any) {
	t.Helper()
	for i, row := range rows {
		for j, cell := range row {
			switch cell.(type) {
			case string, int, int64, float64, bool:
			default:
				t.Fatalf("row %d col %d: unexpected cell type %T", i, j, cell)
			}
		}
	}
}

func TestPlayerReport_Rows(t *testing.T) {
	rows := samplePlayerReport().Rows()

	assertScalar(t, rows)
	assert.Equal(t, []any{"PLAYER REPORT", "Michael Johnson", "Outside Hitter"}, rows[0])
	assert.Equal(t, []any{"Attacking Efficiency", "28.00%"}, rows[3])
	assert.Equal(t, []any{"2025-02-14", "Queen's Gaels", 40, 18, 7, 1, 6, 1}, rows[9])
	assert.Equal(t, []any{"Practice aggressive serving with targeting"}, rows[len(rows)-1])
}

func TestTeamReport_Rows(t *testing.T) {
	r := TeamReport{
		Team:    club.Team{ID: 1, Name: "McMaster Marauders"},
		Metrics: analytics.TeamMetrics{MatchesPlayed: 2, MatchesWon: 1, WinPercentage: 50, SetWinPercentage: 55.56},
		RecentMatches: []club.Match{
			{Opponent: "Queen's Gaels", Date: feb14, SetsWon: 2, SetsLost: 3},
			{Opponent: "Western Mustangs", Date: jan10, SetsWon: 3, SetsLost: 1},
		},
		TopPerformers: []club.Performer{{Name: "Michael Johnson", Position: "Outside Hitter", TotalKills: 33, TotalBlocks: 3, TotalAces: 2}},
	}

	rows := r.Rows()

	assertScalar(t, rows)
	assert.Contains(t, rows, []any{"2025-02-14", "Queen's Gaels", 2, 3, "Lost"})
	assert.Contains(t, rows, []any{"Michael Johnson", "Outside Hitter", 33, 3, 2})
	assert.Equal(t, []any{"TEAM RECOMMENDATIONS"}, rows[len(rows)-1])
}

func TestSnapshot_Sheets(t *testing.T) {
	t.Run("empty tables only produce a summary", func(t *testing.T) {
		sheets := Snapshot{}.Sheets(jan10, "run-1")
		require.Len(t, sheets, 1)
		assert.Contains(t, sheets[SheetSummary], []any{"Teams", 0})
	})

	t.Run("every table gets a tab with ISO dates", func(t *testing.T) {
		s := Snapshot{
			Teams:    []club.Team{{ID: 1, Name: "McMaster Marauders"}},
			Players:  []club.Player{{ID: 1, Name: "Emma Davis", Position: "Setter", TeamName: "McMaster Marauders"}},
			Matches:  []club.Match{{ID: 1, TeamName: "McMaster Marauders", Opponent: "Western Mustangs", Date: jan10, SetsWon: 3, SetsLost: 1}},
			Stats:    []club.PlayerStatLine{{PlayerStat: club.PlayerStat{ID: 1, Attacks: 10}, PlayerName: "Emma Davis", TeamName: "McMaster Marauders", Opponent: "Western Mustangs", MatchDate: jan10}},
			Sessions: []club.TrainingSession{{ID: 1, TeamName: "McMaster Marauders", Category: club.CategoryServing, Date: feb14, Duration: 90}},
		}

		sheets := s.Sheets(feb14, "run-2")

		require.Len(t, sheets, len(SheetTitles))
		for title, rows := range sheets {
			assertScalar(t, rows)
			assert.NotEmpty(t, rows, title)
		}
		assert.Equal(t, []any{int64(1), "McMaster Marauders", "Western Mustangs", "2025-01-10", 3, 1, "Won"}, sheets[SheetMatches][1])
		assert.Equal(t, []any{int64(1), "McMaster Marauders", "serving", "2025-02-14", 90}, sheets[SheetSessions][1])
		assert.Contains(t, sheets[SheetSummary], []any{"Export run: run-2"})
	})
}

func TestRender(t *testing.T) {
	t.Run("player report", func(t *testing.T) {
		var buf bytes.Buffer
		RenderPlayerReport(&buf, samplePlayerReport())

		out := buf.String()
		assert.Contains(t, out, "PLAYER REPORT: Michael Johnson (Outside Hitter)")
		assert.Contains(t, out, "Attacking Efficiency: 28.00%")
		assert.Contains(t, out, "Blocking Average: 1.50 blocks per match")
		assert.Contains(t, out, "Queen's Gaels")
		assert.Contains(t, out, "- Practice aggressive serving with targeting")
	})

	t.Run("team report without data", func(t *testing.T) {
		var buf bytes.Buffer
		RenderTeamReport(&buf, TeamReport{Team: club.Team{Name: "Western Mustangs"}})

		out := buf.String()
		assert.Contains(t, out, "TEAM REPORT: Western Mustangs")
		assert.Contains(t, out, "No recent matches found.")
		assert.Contains(t, out, "No player statistics available.")
	})

	t.Run("team recommendation with close-set pressure", func(t *testing.T) {
		plan := analytics.TeamPlan(analytics.AreaDefense)
		endOfSet := analytics.EndOfSetPlan()
		var buf bytes.Buffer
		RenderTeamRecommendation(&buf, TeamRecommendation{
			Team:             club.Team{Name: "McMaster Marauders"},
			WeakestArea:      analytics.AreaDefense,
			Plan:             &plan,
			CloseSetPressure: true,
			EndOfSet:         &endOfSet,
		})

		out := buf.String()
		assert.Contains(t, out, "Team-wide weakness identified: Defense")
		assert.Contains(t, out, "1. Team defense formation drills")
		assert.Contains(t, out, "End-of-Set Performance")
		assert.Contains(t, out, "2. End-game scenarios (e.g., play from 20-20)")
	})

	t.Run("player recommendation", func(t *testing.T) {
		var buf bytes.Buffer
		RenderPlayerRecommendation(&buf, PlayerRecommendation{
			Player:      club.Player{Name: "Emma Davis", Position: "Setter"},
			WeakestArea: analytics.AreaBlocking,
			Plan:        analytics.PlayerPlan(analytics.AreaBlocking),
		})

		out := buf.String()
		assert.Contains(t, out, "Weakest category identified: Blocking")
		assert.Contains(t, out, "- Shadow blocking: Follow the attacker's movement without the ball")
	})

	t.Run("counters sorted by name", func(t *testing.T) {
		var buf bytes.Buffer
		RenderCounters(&buf, map[string]int{"mutations_team": 2, "forwards_sent_slack": 5})

		out := buf.String()
		assert.Less(t, strings.Index(out, "forwards_sent_slack"), strings.Index(out, "mutations_team"))
		assert.Contains(t, out, "5")
	})
}
