package main

import (
	"fmt"
	"io"
	"os"

	"github.com/op/go-logging"
	"github.com/spf13/cobra"

	"github.com/lucasgdosr/intdeque"
	"github.com/lucasgdosr/intdeque/internal/logger"
	"github.com/lucasgdosr/intdeque/internal/script"
)

var log = logging.MustGetLogger("dequectl")

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:          "dequectl",
		Short:        "Circular deque driver",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.InitConsoleLog(cmd.ErrOrStderr(), logLevel, false)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "INFO", "log level: DEBUG, INFO, WARNING, ERROR")
	root.AddCommand(newRunCommand(), newDemoCommand())
	return root
}

func newRunCommand() *cobra.Command {
	var keepGoing, trace bool
	cmd := &cobra.Command{
		Use:   "run [FILE]",
		Short: "Run an operation script from FILE or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			name := "stdin"
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in, name = f, args[0]
			}
			return runScript(in, cmd.OutOrStdout(), name, keepGoing, trace)
		},
	}
	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "log out-of-range accesses instead of stopping")
	cmd.Flags().BoolVar(&trace, "trace", false, "log the deque after every command at DEBUG")
	return cmd
}

func runScript(in io.Reader, out io.Writer, name string, keepGoing, trace bool) error {
	cmds, err := script.Parse(in)
	if err != nil {
		log.Errorf("parse %s: %s", name, err)
		return err
	}
	log.Infof("running %d command(s) from %s", len(cmds), name)
	r := script.NewRunner(deque.MakeDeque(), out)
	r.KeepGoing = keepGoing
	r.Trace = trace
	if err := r.Run(cmds); err != nil {
		log.Errorf("%s: %s", name, err)
		return err
	}
	return nil
}

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print concatenation and reversal of two small deques",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return demo(cmd.OutOrStdout())
		},
	}
}

func demo(out io.Writer) error {
	a := deque.CopySliceToDeque([]int{1, 2, 3})
	b := deque.CopySliceToDeque([]int{4, 5})
	var err error
	show := func(label string, d *deque.Deque) {
		if err == nil {
			_, err = fmt.Fprintf(out, "%-10s: %s\n", label, d)
		}
	}
	show("a", a)
	show("b", b)
	c := a.Concat(b)
	show("a + b", c)
	show("~(a + b)", c.Reversed())
	show("a + b", c)
	show("reverse(a)", a.Reverse())
	return err
}
