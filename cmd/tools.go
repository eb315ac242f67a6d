package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/hcminh/folio/internal/toolbox"
	"github.com/hcminh/folio/internal/view"
)

var (
	toneFlag     string
	audienceFlag string
	countFlag    int
	wpmFlag      int
)

func headingStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#818CF8")).Bold(true)
}

func mutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
}

func errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
}

// oneShot runs a submitted job to completion, cancelling on interrupt.
func oneShot[R any](ctrl *view.Controller, job *toolbox.Job[R], err error, complete func(toolbox.Outcome[R]) bool) (R, error) {
	if err != nil {
		var zero R
		return zero, errors.New(ctrl.ErrorText(err))
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	o := job.Do(ctx)
	complete(o)
	if o.Err != nil {
		return o.Result, errors.New(ctrl.ErrorText(o.Err))
	}
	return o.Result, nil
}

func printSuggestions(title, reasoningLabel string, items []toolbox.Suggestion) {
	fmt.Println(headingStyle().Render(title))
	for i, s := range items {
		fmt.Printf("\n%d. %s\n", i+1, lipgloss.NewStyle().Bold(true).Render(s.Text))
		fmt.Println(mutedStyle().Render("   " + reasoningLabel + ": " + s.Reasoning))
	}
}

var titleCmd = &cobra.Command{
	Use:   "title <topic>",
	Short: "Generate YouTube video titles",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, err := newController()
		if err != nil {
			return err
		}
		job, err := ctrl.SubmitTitle(strings.Join(args, " "), toneFlag)
		titles, err := oneShot(ctrl, job, err, ctrl.Tools().Titles.Complete)
		if err != nil {
			return err
		}
		s := ctrl.Content().Tools.Title
		printSuggestions(s.ResultsTitle, s.ReasoningLabel, titles)
		return nil
	},
}

var headlineCmd = &cobra.Command{
	Use:   "headline <topic>",
	Short: "Generate news headlines",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, err := newController()
		if err != nil {
			return err
		}
		job, err := ctrl.SubmitHeadline(strings.Join(args, " "), audienceFlag)
		headlines, err := oneShot(ctrl, job, err, ctrl.Tools().Headlines.Complete)
		if err != nil {
			return err
		}
		s := ctrl.Content().Tools.Headline
		printSuggestions(s.ResultsTitle, s.ReasoningLabel, headlines)
		return nil
	},
}

var idiomCmd = &cobra.Command{
	Use:   "idiom <idiom>",
	Short: "Explain an idiom with a dialogue",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, err := newController()
		if err != nil {
			return err
		}
		job, err := ctrl.SubmitIdiom(strings.Join(args, " "))
		r, err := oneShot(ctrl, job, err, ctrl.Tools().Idioms.Complete)
		if err != nil {
			return err
		}
		s := ctrl.Content().Tools.Idiom
		fmt.Println(headingStyle().Render(s.ResultsTitle))
		fmt.Printf("\n%s\n%s\n", lipgloss.NewStyle().Bold(true).Render(s.MeaningLabel), r.Explanation)
		fmt.Printf("\n%s\n%s\n", lipgloss.NewStyle().Bold(true).Render(s.DialogueLabel), r.Dialogue)
		fmt.Println(mutedStyle().Render(s.ReasoningLabel + ": " + r.DialogueReasoning))
		fmt.Printf("\n%s\n%s\n", lipgloss.NewStyle().Bold(true).Render(s.EquivalentLabel), r.Equivalent)
		return nil
	},
}

var clanCmd = &cobra.Command{
	Use:   "clan <theme>",
	Short: "Generate gaming clan names",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, err := newController()
		if err != nil {
			return err
		}
		job, err := ctrl.SubmitClan(strings.Join(args, " "), countFlag)
		names, err := oneShot(ctrl, job, err, ctrl.Tools().Clans.Complete)
		if err != nil {
			return err
		}
		s := ctrl.Content().Tools.Clan
		printSuggestions(s.ResultsTitle, s.ReasoningLabel, names)
		return nil
	},
}

var timerCmd = &cobra.Command{
	Use:   "timer [file]",
	Short: "Estimate the reading time of a script",
	Long: `Estimate how long a script takes to read aloud.

The script is read from the file argument, or from stdin when the argument
is "-" or missing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		script, err := readScript(args)
		if err != nil {
			return err
		}
		ctrl, _, err := newController()
		if err != nil {
			return err
		}
		tools := ctrl.Tools()
		tools.Timer.SetWPM(wpmFlag)

		job, err := ctrl.SubmitScript(script)
		est, err := oneShot(ctrl, job, err, tools.Timer.Complete)
		if err != nil {
			return err
		}
		s := ctrl.Content().Tools.Timer
		rt, _ := ctrl.ReadingTime()
		fmt.Println(headingStyle().Render(s.ResultsTitle))
		fmt.Printf("%s %s\n", lipgloss.NewStyle().Bold(true).Render(s.EstimatedTimeLabel), rt)
		fmt.Printf("%s %d\n", lipgloss.NewStyle().Bold(true).Render(s.WordCountLabel), est.WordCount)
		fmt.Println(mutedStyle().Render(fmt.Sprintf("%s: %d", s.WPMLabel, tools.Timer.WPM())))
		return nil
	},
}

func readScript(args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read script: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read script from stdin: %w", err)
	}
	return string(data), nil
}

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Ask the portfolio assistant a question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, err := newController()
		if err != nil {
			return err
		}
		job, err := ctrl.SubmitChat(strings.Join(args, " "))
		reply, err := oneShot(ctrl, job, err, ctrl.Tools().Chat.Complete)
		if err != nil {
			if job != nil {
				return errors.New(toolbox.MsgChatUnavailable)
			}
			return err
		}
		out, rerr := glamour.Render(reply.Text, "dark")
		if rerr != nil {
			out = reply.Text
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	titleCmd.Flags().StringVarP(&toneFlag, "tone", "t", toolbox.ToneProfessional, "Title tone (Professional, Casual, Clickbait)")
	headlineCmd.Flags().StringVarP(&audienceFlag, "audience", "a", "", "Target audience (optional)")
	clanCmd.Flags().IntVarP(&countFlag, "count", "n", 10, "Number of names (5, 10, 15, 20)")
	timerCmd.Flags().IntVarP(&wpmFlag, "wpm", "w", toolbox.DefaultWPM, "Reading speed in words per minute (100-200)")

	rootCmd.AddCommand(titleCmd, headlineCmd, idiomCmd, clanCmd, timerCmd, chatCmd)
}
