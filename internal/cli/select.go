package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/winematch/internal/catalog"
	"github.com/vijay-prabhu/winematch/internal/match"
	"github.com/vijay-prabhu/winematch/internal/output"
	"github.com/vijay-prabhu/winematch/internal/session"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Pick preferences interactively",
	Long: `Start an interactive shell that keeps a selection and re-ranks the wines
after every change. Naming a tag that is already selected deselects it.

Commands:
  words <tag>     toggle a descriptive word
  foods <tag>     toggle a food
  moods <tag>     toggle a mood
  reset           clear every selection
  show            show the current selection and matches
  options         list the tags you can pick
  help            show this help
  quit            leave the shell

Example session:
  > words bold
  > foods red meat
  > moods evening
  > reset`,
	RunE: runSelect,
}

func init() {
	rootCmd.AddCommand(selectCmd)
}

func runSelect(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	cat, err := loadCatalog(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	sh := &shell{
		sess: session.New(cat, cfg.Options, logger),
		term: NewTerminal(),
		out:  os.Stdout,
	}
	return sh.run(os.Stdin)
}

const shellHelp = `Commands:
  words <tag>   toggle a descriptive word
  foods <tag>   toggle a food
  moods <tag>   toggle a mood
  reset         clear every selection
  show          show the current selection and matches
  options       list the tags you can pick
  help          show this help
  quit          leave the shell
`

var errQuit = errors.New("quit")

// shell is the line-oriented front end of the select command
type shell struct {
	sess *session.Session
	term *Terminal
	out  io.Writer
}

func (sh *shell) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(sh.out, sh.term.Color(ColorCyan, "Find your perfect wine. Type 'help' for commands."))
	sh.prompt()

	for scanner.Scan() {
		err := sh.exec(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(sh.out, sh.term.Color(ColorRed, "Error: "+err.Error()))
		}
		sh.prompt()
	}

	if sh.term.IsTerminal {
		fmt.Fprintln(sh.out)
	}
	return scanner.Err()
}

func (sh *shell) prompt() {
	if sh.term.IsTerminal {
		fmt.Fprint(sh.out, sh.term.Color(ColorGray, "> "))
	}
}

// exec runs one shell command line
func (sh *shell) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	command := strings.ToLower(fields[0])
	arg := strings.Join(fields[1:], " ")

	switch command {
	case "quit", "exit", "q":
		return errQuit
	case "help", "?":
		fmt.Fprint(sh.out, shellHelp)
		return nil
	case "reset":
		return sh.render(sh.sess.Reset())
	case "show":
		return sh.render(sh.sess.Result())
	case "options":
		return output.TableTo(sh.out, sh.sess.Options())
	}

	c, err := catalog.ParseCategory(command)
	if err != nil {
		return fmt.Errorf("unknown command %q (type 'help')", fields[0])
	}
	if arg == "" {
		return fmt.Errorf("usage: %s <tag>", c)
	}

	result, err := sh.sess.Toggle(c, arg)
	if err != nil {
		return err
	}
	return sh.render(result)
}

func (sh *shell) render(r match.Result) error {
	status := fmt.Sprintf("[%s] %d of %d wines match", r.State, len(r.Matches), len(sh.sess.Items()))
	fmt.Fprintln(sh.out, sh.term.Color(StateColor(r.State), status))

	if err := output.TableTo(sh.out, r); err != nil {
		return err
	}

	if r.State == match.StateMatched {
		top := r.Matches[0]
		verdict := fmt.Sprintf("Top pick: %s (%s)", top.Item.Name, match.Describe(top.Score))
		fmt.Fprintln(sh.out, sh.term.Color(ScoreColor(top.Score), verdict))
	}
	return nil
}
