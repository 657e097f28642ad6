package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-cfv/internal/store"
)

func newHistoryCmd(opts *options) *cobra.Command {
	var (
		db       string
		function string
		limit    int
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded summary rows, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if db == "" {
				db = opts.cfg.HistoryDB
			}
			if db == "" {
				return fmt.Errorf("no history database: set history_db or pass --db")
			}
			s, err := store.Open(db)
			if err != nil {
				return err
			}
			defer s.Close()

			rows, err := s.History(cmd.Context(), store.Query{Function: function, Limit: limit})
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tFUNCTION\tCANDIDATE\tSTATUS\tRATING\tMATCH %")
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.1f\n",
					r.CreatedAt.Format("2006-01-02 15:04:05"), r.Function, r.Candidate, r.Status, r.Rating, r.MatchRate)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&db, "db", "", "SQLite history file (default: history_db)")
	cmd.Flags().StringVarP(&function, "function", "f", "", "Only rows of this function")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of rows")
	return cmd
}
