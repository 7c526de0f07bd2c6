package report

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mauv0809/volleystat/internal/club"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	rule         = strings.Repeat("=", 50)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...)
}

func header(w io.Writer, title string) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w, rule)
}

func section(w io.Writer, name string) {
	fmt.Fprintln(w, sectionStyle.Render(name))
}

func bullets(w io.Writer, items []string, empty string) {
	if len(items) == 0 {
		fmt.Fprintln(w, empty)
		return
	}
	for _, item := range items {
		fmt.Fprintf(w, "- %s\n", item)
	}
}

func numbered(w io.Writer, items []string) {
	for i, item := range items {
		fmt.Fprintf(w, "%d. %s\n", i+1, item)
	}
}

func itoa(v int) string { return strconv.Itoa(v) }

// RenderPlayerReport writes a player report for the console.
func RenderPlayerReport(w io.Writer, r PlayerReport) {
	header(w, fmt.Sprintf("PLAYER REPORT: %s (%s)", r.Player.Name, r.Player.Position))

	section(w, "PERFORMANCE METRICS")
	fmt.Fprintf(w, "Attacking Efficiency: %s\n", percent(r.Metrics.AttackingEfficiency))
	fmt.Fprintf(w, "Blocking Average: %.2f blocks per match\n", r.Metrics.BlockingAverage)
	fmt.Fprintf(w, "Total Serving Aces: %d\n", r.Metrics.ServingAces)

	section(w, "RECENT MATCH STATISTICS")
	if len(r.Recent) == 0 {
		fmt.Fprintln(w, "No recent matches found.")
	} else {
		t := newTable("Date", "Opponent", "Attacks", "Kills", "Errors", "Blocks", "Digs", "Aces")
		for _, s := range r.Recent {
			t.Row(FormatDate(s.MatchDate), s.Opponent, itoa(s.Attacks), itoa(s.Kills), itoa(s.Errors), itoa(s.Blocks), itoa(s.Digs), itoa(s.Aces))
		}
		fmt.Fprintln(w, t.Render())
	}

	section(w, "TRAINING RECOMMENDATIONS")
	bullets(w, r.Recommendations, "No specific recommendations.")
	fmt.Fprintln(w, rule)
}

// RenderTeamReport writes a team report for the console.
func RenderTeamReport(w io.Writer, r TeamReport) {
	header(w, "TEAM REPORT: "+r.Team.Name)

	section(w, "PERFORMANCE METRICS")
	fmt.Fprintf(w, "Matches Played: %d\n", r.Metrics.MatchesPlayed)
	fmt.Fprintf(w, "Matches Won: %d\n", r.Metrics.MatchesWon)
	fmt.Fprintf(w, "Win Percentage: %s\n", percent(r.Metrics.WinPercentage))
	fmt.Fprintf(w, "Set Win Percentage: %s\n", percent(r.Metrics.SetWinPercentage))

	section(w, "RECENT MATCHES")
	if len(r.RecentMatches) == 0 {
		fmt.Fprintln(w, "No recent matches found.")
	} else {
		t := newTable("Date", "Opponent", "Result", "Sets")
		for _, m := range r.RecentMatches {
			t.Row(FormatDate(m.Date), m.Opponent, m.Result(), fmt.Sprintf("%d-%d", m.SetsWon, m.SetsLost))
		}
		fmt.Fprintln(w, t.Render())
	}

	section(w, "TOP PERFORMERS")
	if len(r.TopPerformers) == 0 {
		fmt.Fprintln(w, "No player statistics available.")
	} else {
		t := newTable("#", "Name", "Position", "Kills", "Blocks", "Aces")
		for i, p := range r.TopPerformers {
			t.Row(itoa(i+1), p.Name, p.Position, itoa(p.TotalKills), itoa(p.TotalBlocks), itoa(p.TotalAces))
		}
		fmt.Fprintln(w, t.Render())
	}

	section(w, "TEAM RECOMMENDATIONS")
	bullets(w, r.Recommendations, "No specific recommendations.")
	fmt.Fprintln(w, rule)
}

// RenderPlayerRecommendation writes a player's training plan.
func RenderPlayerRecommendation(w io.Writer, r PlayerRecommendation) {
	header(w, fmt.Sprintf("TRAINING RECOMMENDATION FOR: %s (%s)", r.Player.Name, r.Player.Position))
	fmt.Fprintf(w, "Weakest category identified: %s\n", r.WeakestArea)

	section(w, "Recommended training focus:")
	numbered(w, r.Plan.Focus)
	if len(r.Plan.Drills) > 0 {
		section(w, "Specific drills:")
		bullets(w, r.Plan.Drills, "")
	}
	fmt.Fprintln(w, rule)
}

// RenderTeamRecommendation writes a team's training plan.
func RenderTeamRecommendation(w io.Writer, r TeamRecommendation) {
	header(w, "TEAM TRAINING RECOMMENDATION FOR: "+r.Team.Name)

	if r.Plan != nil {
		fmt.Fprintf(w, "Team-wide weakness identified: %s\n", r.WeakestArea)
		section(w, "Recommended team training focus:")
		numbered(w, r.Plan.Focus)
	} else {
		fmt.Fprintln(w, "No player statistics available.")
	}

	if r.CloseSetPressure && r.EndOfSet != nil {
		section(w, "Additional Focus Area: "+strings.Join(r.EndOfSet.Focus, ", "))
		fmt.Fprintln(w, "Team is losing a significant number of close sets")
		fmt.Fprintln(w, "Recommended drills:")
		numbered(w, r.EndOfSet.Drills)
	}
	fmt.Fprintln(w, rule)
}

// RenderTeams lists teams.
func RenderTeams(w io.Writer, teams []club.Team) {
	t := newTable("ID", "Name")
	for _, team := range teams {
		t.Row(strconv.FormatInt(team.ID, 10), team.Name)
	}
	fmt.Fprintln(w, t.Render())
}

// RenderPlayers lists players with their team.
func RenderPlayers(w io.Writer, players []club.Player) {
	t := newTable("ID", "Name", "Position", "Team")
	for _, p := range players {
		t.Row(strconv.FormatInt(p.ID, 10), p.Name, p.Position, p.TeamName)
	}
	fmt.Fprintln(w, t.Render())
}

// RenderMatches lists matches with their result.
func RenderMatches(w io.Writer, matches []club.Match) {
	t := newTable("ID", "Team", "Opponent", "Date", "Sets", "Result")
	for _, m := range matches {
		t.Row(strconv.FormatInt(m.ID, 10), m.TeamName, m.Opponent, FormatDate(m.Date), fmt.Sprintf("%d-%d", m.SetsWon, m.SetsLost), m.Result())
	}
	fmt.Fprintln(w, t.Render())
}

// RenderTrainingSessions lists persisted training sessions.
func RenderTrainingSessions(w io.Writer, sessions []club.TrainingSession) {
	t := newTable("ID", "Team", "Type", "Date", "Duration (min)")
	for _, s := range sessions {
		t.Row(strconv.FormatInt(s.ID, 10), s.TeamName, string(s.Category), FormatDate(s.Date), itoa(s.Duration))
	}
	fmt.Fprintln(w, t.Render())
}

// RenderCounters lists persisted counters by name.
func RenderCounters(w io.Writer, counters map[string]int) {
	keys := make([]string, 0, len(counters))
	for k := range counters {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	t := newTable("Counter", "Value")
	for _, k := range keys {
		t.Row(k, itoa(counters[k]))
	}
	fmt.Fprintln(w, t.Render())
}
