package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/freefire/internal/model"
	"github.com/idilsaglam/freefire/internal/session"
	"github.com/idilsaglam/freefire/internal/sorting"
	"github.com/idilsaglam/freefire/internal/ui"
)

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Show the registered components in entry order",
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.newSession(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Header(sess.Len(), sess.Capacity(), sess.State()))
			fmt.Fprintln(out, ui.Table(sess.Original()))
			return nil
		},
	}
}

func (a *app) sortCommand() *cobra.Command {
	var by string
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort the components and report the comparison count",
		Long: `Sorts a copy of the registered components:

  --by name      bubble sort
  --by category  insertion sort
  --by priority  selection sort`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := sorting.ParseKey(by)
			if err != nil {
				return usageError{err}
			}
			sess, err := a.newSession(cmd)
			if err != nil {
				return err
			}
			rep, err := sess.Sort(key)
			if err != nil {
				return explain(err)
			}
			printReport(cmd.OutOrStdout(), rep)
			return nil
		},
	}
	cmd.Flags().StringVar(&by, "by", "name", "field to sort by: name, category or priority")
	return cmd
}

func (a *app) searchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Sort by name, then binary search for a component",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.newSession(cmd)
			if err != nil {
				return err
			}
			rep, err := sess.SortByName()
			if err != nil {
				return explain(err)
			}
			out := cmd.OutOrStdout()
			printReport(out, rep)
			res, err := sess.Search(args[0])
			if err != nil {
				return explain(err)
			}
			fmt.Fprintln(out, ui.SearchOutcome(res))
			return nil
		},
	}
}

func (a *app) demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run every sort and a search on a built-in sample",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.file = ""
			sess, err := a.newSession(cmd)
			if err != nil {
				return err
			}
			if _, err := sess.Enter(sampleComponents()); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Table(sess.Original()))
			for _, key := range []sorting.Key{sorting.KeyCategory, sorting.KeyPriority, sorting.KeyName} {
				rep, err := sess.Sort(key)
				if err != nil {
					return explain(err)
				}
				printReport(out, rep)
			}
			res, err := sess.Search(demoKey)
			if err != nil {
				return explain(err)
			}
			fmt.Fprintln(out, ui.SearchOutcome(res))
			return nil
		},
	}
}

func printReport(w io.Writer, rep session.Report) {
	fmt.Fprintln(w, ui.Report(rep))
	fmt.Fprintln(w, ui.Table(rep.Items))
}

// explain turns session errors into the hint a user can act on.
func explain(err error) error {
	switch {
	case errors.Is(err, session.ErrEmptyDataset):
		return fmt.Errorf("%w: register components first (--file)", err)
	case errors.Is(err, session.ErrNotSortedByName):
		return fmt.Errorf("%w: sort by name before searching", err)
	}
	return err
}

const demoKey = "Chip Central"

func sampleComponents() []model.Component {
	return []model.Component{
		{Name: "Propulsor", Category: "propulsao", Priority: 7},
		{Name: "Chip Central", Category: "controle", Priority: 10},
		{Name: "Painel Solar", Category: "suporte", Priority: 4},
		{Name: "Antena", Category: "controle", Priority: 6},
		{Name: "Bateria", Category: "suporte", Priority: 9},
		{Name: "Turbina", Category: "propulsao", Priority: 8},
		{Name: "Radar", Category: "controle", Priority: 5},
		{Name: "Escudo", Category: "suporte", Priority: 3},
	}
}
