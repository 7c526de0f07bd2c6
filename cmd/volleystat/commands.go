package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mauv0809/volleystat/internal/club"
	"github.com/mauv0809/volleystat/internal/report"
	"github.com/mauv0809/volleystat/internal/training"
	"github.com/spf13/cobra"
)

func init() {
	teamCmd.AddCommand(teamAddCmd, teamListCmd)
	playerCmd.AddCommand(playerAddCmd, playerListCmd)
	matchCmd.AddCommand(matchAddCmd, matchListCmd)
	statCmd.AddCommand(statAddCmd)
	trainingCmd.AddCommand(trainingRecordCmd, trainingEvaluateCmd, trainingListCmd)
	rootCmd.AddCommand(teamCmd, playerCmd, matchCmd, statCmd, trainingCmd)

	playerAddCmd.Flags().String("position", "", "playing position, e.g. Setter")
	playerAddCmd.Flags().Int64("team", 0, "team id")
	_ = playerAddCmd.MarkFlagRequired("team")

	matchAddCmd.Flags().Int64("team", 0, "team id")
	matchAddCmd.Flags().String("opponent", "", "opponent name")
	matchAddCmd.Flags().String("date", "", "match date (YYYY-MM-DD)")
	matchAddCmd.Flags().Int("won", 0, "sets won")
	matchAddCmd.Flags().Int("lost", 0, "sets lost")
	for _, f := range []string{"team", "opponent", "date"} {
		_ = matchAddCmd.MarkFlagRequired(f)
	}

	statAddCmd.Flags().Int64("player", 0, "player id")
	statAddCmd.Flags().Int64("match", 0, "match id")
	for _, f := range []string{"attacks", "kills", "errors", "blocks", "digs", "aces"} {
		statAddCmd.Flags().Int(f, 0, f)
	}
	_ = statAddCmd.MarkFlagRequired("player")
	_ = statAddCmd.MarkFlagRequired("match")

	for _, c := range []*cobra.Command{trainingRecordCmd, trainingEvaluateCmd} {
		c.Flags().String("type", "", "session type: serving, attacking or blocking")
		c.Flags().String("date", "", "session date (YYYY-MM-DD)")
		c.Flags().Int("duration", 0, "duration in minutes")
		c.Flags().Int64Slice("player", nil, "participating player id (repeatable)")
		c.Flags().StringArray("stat", nil, "player entry as <player>:<stat>=<value> (repeatable)")
		c.Flags().StringSlice("zones", nil, "serving target zones")
		c.Flags().StringSlice("positions", nil, "attacking positions")
		c.Flags().StringSlice("block-types", nil, "blocking types")
		_ = c.MarkFlagRequired("type")
		_ = c.MarkFlagRequired("date")
	}
	trainingRecordCmd.Flags().Int64("team", 0, "team id")
	_ = trainingRecordCmd.MarkFlagRequired("team")
}

func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s id %q: %w", what, arg, err)
	}
	return id, nil
}

func dateFlag(cmd *cobra.Command) (time.Time, error) {
	raw, _ := cmd.Flags().GetString("date")
	d, err := club.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", raw, err)
	}
	return d, nil
}

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Manage teams",
}

var teamAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a team",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := current.tracker.AddTeam(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Team %q added with ID %d\n", args[0], id)
		return nil
	},
}

var teamListCmd = &cobra.Command{
	Use:   "list",
	Short: "List teams",
	RunE: func(cmd *cobra.Command, args []string) error {
		teams, err := current.store.GetAllTeams()
		if err != nil {
			return err
		}
		report.RenderTeams(cmd.OutOrStdout(), teams)
		return nil
	},
}

var playerCmd = &cobra.Command{
	Use:   "player",
	Short: "Manage players",
}

var playerAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a player to a team",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		position, _ := cmd.Flags().GetString("position")
		teamID, _ := cmd.Flags().GetInt64("team")
		id, err := current.tracker.AddPlayer(args[0], position, teamID)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Player %q added with ID %d\n", args[0], id)
		return nil
	},
}

var playerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List players",
	RunE: func(cmd *cobra.Command, args []string) error {
		players, err := current.store.GetAllPlayers()
		if err != nil {
			return err
		}
		report.RenderPlayers(cmd.OutOrStdout(), players)
		return nil
	},
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Manage matches",
}

var matchAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a match",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := dateFlag(cmd)
		if err != nil {
			return err
		}
		teamID, _ := cmd.Flags().GetInt64("team")
		opponent, _ := cmd.Flags().GetString("opponent")
		won, _ := cmd.Flags().GetInt("won")
		lost, _ := cmd.Flags().GetInt("lost")
		id, err := current.tracker.RecordMatch(teamID, opponent, date, won, lost)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Match recorded with ID %d\n", id)
		return nil
	},
}

var matchListCmd = &cobra.Command{
	Use:   "list",
	Short: "List matches, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		matches, err := current.store.GetAllMatches()
		if err != nil {
			return err
		}
		report.RenderMatches(cmd.OutOrStdout(), matches)
		return nil
	},
}

var statCmd = &cobra.Command{
	Use:   "stat",
	Short: "Manage per-match player statistics",
}

var statAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a player's statistics for a match",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		var s club.PlayerStat
		s.PlayerID, _ = f.GetInt64("player")
		s.MatchID, _ = f.GetInt64("match")
		s.Attacks, _ = f.GetInt("attacks")
		s.Kills, _ = f.GetInt("kills")
		s.Errors, _ = f.GetInt("errors")
		s.Blocks, _ = f.GetInt("blocks")
		s.Digs, _ = f.GetInt("digs")
		s.Aces, _ = f.GetInt("aces")
		id, err := current.tracker.RecordPlayerStats(s)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Statistics recorded with ID %d\n", id)
		return nil
	},
}

var trainingCmd = &cobra.Command{
	Use:   "training",
	Short: "Manage training sessions",
}

// sessionFromFlags builds a classified session and records every --stat entry.
func sessionFromFlags(cmd *cobra.Command) (*training.Session, error) {
	f := cmd.Flags()
	date, err := dateFlag(cmd)
	if err != nil {
		return nil, err
	}
	category, _ := f.GetString("type")
	duration, _ := f.GetInt("duration")
	players, _ := f.GetInt64Slice("player")
	zones, _ := f.GetStringSlice("zones")
	positions, _ := f.GetStringSlice("positions")
	blockTypes, _ := f.GetStringSlice("block-types")

	session, err := training.New(category, date, players, duration,
		training.WithTargetZones(zones...),
		training.WithPositions(positions...),
		training.WithBlockTypes(blockTypes...),
	)
	if err != nil {
		return nil, err
	}

	entries, _ := f.GetStringArray("stat")
	for _, e := range entries {
		playerID, name, value, err := training.ParseStatFlag(e)
		if err != nil {
			return nil, err
		}
		session.RecordStat(playerID, name, value)
	}
	return session, nil
}

func printSession(cmd *cobra.Command, s *training.Session) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s session on %s (%d min)\n", s.Category, club.FormatDate(s.Date), s.Duration)
	fmt.Fprintln(out, s.Configuration())
	fmt.Fprintf(out, "Efficiency: %.2f%%\n", s.Efficiency())
}

var trainingRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Classify and record a training session",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := sessionFromFlags(cmd)
		if err != nil {
			return err
		}
		teamID, _ := cmd.Flags().GetInt64("team")
		id, err := current.tracker.RecordTrainingSession(teamID, session)
		if err != nil {
			return err
		}
		printSession(cmd, session)
		fmt.Fprintf(cmd.OutOrStdout(), "Training session recorded with ID %d\n", id)
		return nil
	},
}

var trainingEvaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Compute a training session's efficiency without recording it",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := sessionFromFlags(cmd)
		if err != nil {
			return err
		}
		printSession(cmd, session)
		return nil
	},
}

var trainingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List training sessions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := current.store.GetAllTrainingSessions()
		if err != nil {
			return err
		}
		report.RenderTrainingSessions(cmd.OutOrStdout(), sessions)
		return nil
	},
}
