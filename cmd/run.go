package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/keiaapp/keia/internal/assessment"
	"github.com/keiaapp/keia/internal/content"
	"github.com/keiaapp/keia/internal/leveling"
	"github.com/keiaapp/keia/internal/llm"
	"github.com/keiaapp/keia/internal/scoring"
	"github.com/keiaapp/keia/internal/session"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	questionStyle = lipgloss.NewStyle().Bold(true)
	optionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	correctStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	wrongStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	cardStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2)
)

// runSession executes one interactive assessment from loading through
// the result card.
func runSession(cmd *cobra.Command, typ assessment.Type, level string, phase assessment.Phase) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	events, err := st.EventRepo()
	if err != nil {
		return fmt.Errorf("event repo: %w", err)
	}

	provider, err := llm.NewProviderFromEnv(cmd.Context(), events)
	if err != nil {
		return fmt.Errorf("configure provider: %w", err)
	}

	client := content.NewClient(provider, content.DefaultConfig())
	profiles := st.ProfileRepo()

	ctrl := session.New(session.Config{
		UserID:        resolveUserID(cmd),
		Type:          typ,
		Level:         level,
		PracticePhase: phase,
		Generator:     assessment.NewGenerator(client),
		Scorer:        scoring.NewScorer(client),
		Aggregator:    leveling.NewAggregator(profiles),
		Profiles:      profiles,
		Events:        events,
	})

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(sessionTitle(typ)))
	fmt.Fprintln(out, "Generating questions...")

	ctx := cmd.Context()
	if err := ctrl.Start(ctx); err != nil {
		return fmt.Errorf("load questions: %w", err)
	}

	reader := bufio.NewScanner(cmd.InOrStdin())
	total := ctrl.Len()

	for {
		q, i, err := ctrl.Current()
		if err != nil {
			return err
		}

		fmt.Fprintln(out)
		if q.Preamble {
			fmt.Fprintln(out, questionStyle.Render(q.Prompt))
			fmt.Fprint(out, "Press Enter to continue... ")
			readLine(reader)
		} else {
			fmt.Fprintf(out, "%s\n", questionStyle.Render(fmt.Sprintf("[%d/%d] %s", i+1, total, q.Prompt)))
			for j, opt := range q.Options {
				fmt.Fprintln(out, optionStyle.Render(fmt.Sprintf("  %c) %s", 'A'+j, opt)))
			}

			for {
				fmt.Fprint(out, "> ")
				line, ok := readLine(reader)
				if !ok {
					return io.ErrUnexpectedEOF
				}
				answer := resolveAnswer(q, line)
				if err := ctrl.Answer(answer); err != nil {
					return err
				}
				if !assessment.Answered(answer) {
					fmt.Fprintln(out, "An answer is required.")
					continue
				}
				break
			}
		}

		done, err := ctrl.Advance()
		if err != nil {
			return err
		}
		if done {
			break
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Evaluating...")

	result, err := ctrl.Finish(ctx)
	if err != nil {
		return fmt.Errorf("evaluate session: %w", err)
	}

	renderResult(out, typ, result)
	return nil
}

func sessionTitle(typ assessment.Type) string {
	if typ.Placement() {
		return "Placement Test"
	}
	name := string(typ)
	return strings.ToUpper(name[:1]) + name[1:] + " Practice"
}

// resolveAnswer maps an option letter to its full text for multiple
// choice; anything else passes through as typed.
func resolveAnswer(q assessment.Question, line string) string {
	trimmed := strings.TrimSpace(line)
	if q.Kind != assessment.KindMultipleChoice || len(trimmed) != 1 {
		return trimmed
	}
	idx := int(strings.ToUpper(trimmed)[0] - 'A')
	if idx >= 0 && idx < len(q.Options) {
		return q.Options[idx]
	}
	return trimmed
}

func readLine(reader *bufio.Scanner) (string, bool) {
	if !reader.Scan() {
		return "", false
	}
	return reader.Text(), true
}

func renderResult(out io.Writer, typ assessment.Type, result *session.Result) {
	var b strings.Builder

	fmt.Fprintf(&b, "Score: %d%%\n", result.Score)
	fmt.Fprintf(&b, "Level: %s", result.Level)
	if result.LevelChanged {
		fmt.Fprintf(&b, "  %s", correctStyle.Render("(new!)"))
	}
	fmt.Fprintf(&b, "\nStreak: %d\n", result.Streak)
	fmt.Fprintf(&b, "XP: %d\n", result.XP)
	fmt.Fprintf(&b, "%s score: %d", typ.ProfileKey(), result.SkillScore)

	fmt.Fprintln(out)
	fmt.Fprintln(out, cardStyle.Render(b.String()))

	for _, fb := range result.Feedback {
		if fb.Question.Preamble {
			continue
		}
		mark := wrongStyle.Render("✗")
		if fb.Correct {
			mark = correctStyle.Render("✓")
		}
		fmt.Fprintf(out, "%s %s\n", mark, fb.Question.Prompt)
		if fb.Feedback != "" {
			fmt.Fprintf(out, "  %s\n", optionStyle.Render(fb.Feedback))
		}
	}
}
