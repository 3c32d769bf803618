package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/its-jojoo/tabshelf/internal/core"
)

const replHelp = "Commands: open [id] [days|?] | touch <id> [days|?] | select <id> | close <id> | tabs | eval | buckets | records | restart | reset | quit"

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive tab simulator (dev mode)",
	Long: `Simulate a tab manager against the configured store.

'open' and 'touch' take the age of the tab in days ('?' for unknown).
'restart' simulates a process restart: the next 'eval' is a cold start.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

type replSession struct {
	app      *app
	out      io.Writer
	now      func() time.Time
	tabs     []core.TabSnapshot
	selected string
}

func runRepl(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	s := &replSession{app: a, out: cmd.OutOrStdout(), now: time.Now}
	return s.run(cmd.Context(), cmd.InOrStdin())
}

func (s *replSession) run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(s.out, "tabshelf (dev mode)")
	fmt.Fprintln(s.out, replHelp)

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if quit := s.exec(ctx, line); quit {
			return nil
		}
	}
	return sc.Err()
}

func (s *replSession) exec(ctx context.Context, line string) (quit bool) {
	cmd, args := splitCmd(line)

	switch cmd {
	case "quit", "exit":
		return true

	case "open":
		id := uuid.NewString()[:8]
		if len(args) > 0 {
			id = args[0]
		}
		if s.index(id) >= 0 {
			fmt.Fprintln(s.out, "already open:", id)
			return false
		}
		lastUsed, err := s.lastUsed(args, 1)
		if err != nil {
			fmt.Fprintln(s.out, "error:", err)
			return false
		}
		s.tabs = append(s.tabs, core.TabSnapshot{ID: id, LastUsed: lastUsed})
		fmt.Fprintln(s.out, "opened", id)

	case "touch":
		i, ok := s.lookup(args)
		if !ok {
			return false
		}
		lastUsed, err := s.lastUsed(args, 1)
		if err != nil {
			fmt.Fprintln(s.out, "error:", err)
			return false
		}
		s.tabs[i].LastUsed = lastUsed

	case "select":
		if _, ok := s.lookup(args); !ok {
			return false
		}
		s.selected = args[0]

	case "close":
		i, ok := s.lookup(args)
		if !ok {
			return false
		}
		s.tabs = append(s.tabs[:i], s.tabs[i+1:]...)
		if s.selected == args[0] {
			s.selected = ""
		}
		if err := s.app.svc.Remove(ctx, args[0]); err != nil {
			fmt.Fprintln(s.out, "error:", err)
			return false
		}
		fmt.Fprintln(s.out, "closed", args[0])

	case "tabs":
		if len(s.tabs) == 0 {
			fmt.Fprintln(s.out, "(empty)")
			return false
		}
		for _, t := range s.tabs {
			sel := " "
			if t.ID == s.selected {
				sel = "*"
			}
			fmt.Fprintf(s.out, "%s %-10s %s\n", sel, t.ID, s.age(t))
		}

	case "eval":
		res, err := s.app.svc.Refresh(ctx, s.tabs, s.selected)
		if err != nil {
			fmt.Fprintln(s.out, "warning:", err)
		}
		s.printBuckets(res)

	case "buckets":
		s.printBuckets(s.app.svc.CurrentBuckets(ctx, s.tabs))

	case "records":
		recs := s.app.svc.Classifications(ctx)
		for _, t := range s.tabs {
			rec, ok := recs[t.ID]
			if !ok {
				fmt.Fprintf(s.out, "%-10s (no record)\n", t.ID)
				continue
			}
			fmt.Fprintf(s.out, "%-10s %-15s %s\n", t.ID, rec.State, rec.Pending)
		}

	case "restart":
		s.app.svc = s.app.newService()
		fmt.Fprintln(s.out, "restarted: next eval is a cold start")

	case "reset":
		if err := s.app.svc.Clear(ctx); err != nil {
			fmt.Fprintln(s.out, "error:", err)
			return false
		}
		fmt.Fprintln(s.out, "classifications cleared")

	default:
		fmt.Fprintln(s.out, "unknown command:", cmd)
		fmt.Fprintln(s.out, replHelp)
	}
	return false
}

func (s *replSession) index(id string) int {
	for i, t := range s.tabs {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *replSession) lookup(args []string) (int, bool) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "tab id required")
		return -1, false
	}
	i := s.index(args[0])
	if i < 0 {
		fmt.Fprintln(s.out, "no such tab:", args[0])
		return -1, false
	}
	return i, true
}

// maxAgeDays keeps ages well inside time.Duration range.
const maxAgeDays = 100 * 365

// lastUsed parses args[pos] as an age in days; missing means now.
func (s *replSession) lastUsed(args []string, pos int) (int64, error) {
	if len(args) <= pos {
		return s.now().UnixMilli(), nil
	}
	if args[pos] == "?" {
		return core.UnknownTimestamp, nil
	}
	days, err := strconv.ParseFloat(args[pos], 64)
	if err != nil || !(days >= 0 && days <= maxAgeDays) {
		return 0, errors.Errorf("invalid age %q", args[pos])
	}
	return s.now().Add(-time.Duration(days * float64(24*time.Hour))).UnixMilli(), nil
}

func (s *replSession) age(t core.TabSnapshot) string {
	if t.LastUsed == core.UnknownTimestamp {
		return "unknown"
	}
	d := s.now().Sub(t.LastUsedTime())
	return fmt.Sprintf("%.1fd ago", d.Hours()/24)
}

func (s *replSession) printBuckets(res core.Result) {
	fmt.Fprintln(s.out, "normal:         ", strings.Join(res.Normal, " "))
	fmt.Fprintln(s.out, "inactive:       ", strings.Join(res.Inactive, " "))
	fmt.Fprintln(s.out, "recently closed:", strings.Join(res.RecentlyClosed, " "))
}

func splitCmd(s string) (cmd string, args []string) {
	parts := strings.Fields(s)
	return strings.ToLower(parts[0]), parts[1:]
}
