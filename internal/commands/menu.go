package commands

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/outlay-dev/outlay/internal/chart"
	"github.com/outlay-dev/outlay/internal/config"
	"github.com/outlay-dev/outlay/internal/ledger"
	"github.com/outlay-dev/outlay/internal/report"
)

func newMenuCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive expense tracker menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve()
			if err != nil {
				return err
			}

			m := &menu{
				in:     bufio.NewScanner(cmd.InOrStdin()),
				out:    cmd.OutOrStdout(),
				store:  ledger.NewStore(),
				charts: chart.DefaultRegistry(),
				cfg:    cfg,
			}
			m.run()
			return nil
		},
	}

	return cmd
}

// menu drives the interactive loop. The store lives for the whole session;
// nothing is persisted unless the user saves. Every action error is reported
// as a message and the loop resumes.
type menu struct {
	in     *bufio.Scanner
	out    io.Writer
	store  *ledger.Store
	charts *chart.Registry
	cfg    *config.Config
}

const menuText = `
--- Outlay Expense Tracker ---
1. Add expense
2. Save expenses to JSON
3. Load expenses from JSON
4. Analyze expenses
5. Visualize expenses - Pie Chart
6. Visualize expenses - Bar Chart
7. Exit
`

func (m *menu) run() {
	for {
		fmt.Fprint(m.out, menuText)
		choice, ok := m.prompt("Choose an option: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			m.addExpense()
		case "2":
			m.saveLedger()
		case "3":
			m.loadLedger()
		case "4":
			m.analyze()
		case "5":
			m.visualize("pie")
		case "6":
			m.visualize("bar")
		case "7":
			fmt.Fprintln(m.out, "Goodbye!")
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice. Try again.")
		}
	}
}

// prompt reads one trimmed input line. ok is false on EOF.
func (m *menu) prompt(label string) (value string, ok bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// promptValid re-prompts until validate accepts the input or input ends.
func (m *menu) promptValid(label string, validate func(string) error) (string, bool) {
	for {
		v, ok := m.prompt(label)
		if !ok {
			return "", false
		}
		if err := validate(v); err != nil {
			fmt.Fprintf(m.out, "Error: %v\n", err)
			continue
		}
		return v, true
	}
}

func (m *menu) addExpense() {
	date, ok := m.promptValid("Enter date (YYYY-MM-DD): ", func(s string) error {
		_, err := ledger.ParseDate(s)
		return err
	})
	if !ok {
		return
	}

	category, ok := m.promptValid("Enter category: ", func(s string) error {
		if s == "" {
			return ledger.ErrEmptyCategory
		}
		return nil
	})
	if !ok {
		return
	}

	amount, ok := m.promptValid("Enter amount: ", func(s string) error {
		_, err := ledger.ParseAmount(s)
		return err
	})
	if !ok {
		return
	}

	description, ok := m.prompt("Enter description: ")
	if !ok {
		return
	}

	if err := m.store.Add(date, category, amount, description); err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "Expense added.")
}

func (m *menu) saveLedger() {
	path, ok := m.promptPath("Enter the filename to save")
	if !ok {
		return
	}
	if err := m.store.Save(path); err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Data saved to %s.\n", path)
}

func (m *menu) loadLedger() {
	path, ok := m.promptPath("Enter the filename to load")
	if !ok {
		return
	}
	if err := m.store.Load(path); err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Data loaded from %s.\n", path)
}

// promptPath asks for a ledger filename, defaulting to the configured path
// when the user just presses enter.
func (m *menu) promptPath(label string) (string, bool) {
	path, ok := m.prompt(fmt.Sprintf("%s [%s]: ", label, m.cfg.Ledger.Path))
	if !ok {
		return "", false
	}
	if path == "" {
		path = m.cfg.Ledger.Path
	}
	return path, true
}

func (m *menu) analyze() {
	sum := report.Summarize(m.store.Expenses())
	if err := writeSummary(m.out, sum, m.cfg.Display.Currency); err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
	}
}

func (m *menu) visualize(kind string) {
	renderer := m.charts.Get(kind)
	if renderer == nil {
		fmt.Fprintf(m.out, "Error: unknown chart kind %q\n", kind)
		return
	}

	sum := report.Summarize(m.store.Expenses())
	path := filepath.Join(m.cfg.Charts.OutputDir, kind+".html")
	if err := writeChart(renderer, path, sum); err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Chart written to %s\n", path)
}
