package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/e11jah/rbtree"
)

type showOptions struct {
	ints    bool
	file    string
	deletes []string
	noShape bool
}

func showCmd(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show [keys...]",
		Short: "Build a tree from keys and print its shape",
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := readKeys(args, opts.file)
			if err != nil {
				return err
			}
			log := logger(cmd)
			w := cmd.OutOrStdout()

			if !opts.ints {
				return runShow(w, log, rbtree.NewOrdered[string](), keys, opts.deletes, !opts.noShape)
			}

			ints, err := parseInts(keys)
			if err != nil {
				return err
			}
			deletes, err := parseInts(opts.deletes)
			if err != nil {
				return err
			}
			return runShow(w, log, rbtree.NewOrdered[int](), ints, deletes, !opts.noShape)
		},
	}

	cmd.Flags().BoolVar(&opts.ints, "ints", false, "treat keys as integers")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read additional keys from a file, one per line")
	cmd.Flags().StringSliceVarP(&opts.deletes, "delete", "d", nil, "keys to erase after inserting")
	cmd.Flags().BoolVar(&opts.noShape, "no-shape", false, "do not print the tree shape")

	return cmd
}

func runShow[T any](w io.Writer, log *slog.Logger, tree *rbtree.Tree[T], keys, deletes []T, shape bool) error {
	inserted := 0
	for _, k := range keys {
		_, ok, err := tree.Insert(k)
		if err != nil {
			return err
		}
		if !ok {
			log.Debug("duplicate key skipped", "key", k)
			continue
		}
		inserted++
	}
	for _, k := range deletes {
		if !tree.Delete(k) {
			log.Warn("key to delete not found", "key", k)
		}
	}
	log.Debug("tree built", "inserted", inserted, "deleted", len(deletes), "size", tree.Len())

	if shape {
		fmt.Fprint(w, tree.Dump())
	}
	fmt.Fprintf(w, "in-order: %s\n", joinValues(tree))

	verr := tree.Validate()
	fmt.Fprintln(w, statsTable(tree, verr))
	return verr
}

func statsTable[T any](tree *rbtree.Tree[T], verr error) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"stat", "value"})

	tbl.AppendRow(table.Row{"size", humanize.Comma(int64(tree.Len()))})
	tbl.AppendRow(table.Row{"height", tree.Height()})
	tbl.AppendRow(table.Row{"black height", tree.BlackHeight()})
	if lo, ok := tree.Min(); ok {
		tbl.AppendRow(table.Row{"min", fmt.Sprint(lo)})
	}
	if hi, ok := tree.Max(); ok {
		tbl.AppendRow(table.Row{"max", fmt.Sprint(hi)})
	}

	status := color.GreenString("valid")
	if verr != nil {
		status = color.RedString("invalid: %v", verr)
	}
	tbl.AppendRow(table.Row{"invariants", status})

	return tbl.Render()
}

func joinValues[T any](tree *rbtree.Tree[T]) string {
	parts := make([]string, 0, tree.Len())
	for v := range tree.All() {
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(parts, " ")
}

func readKeys(args []string, file string) ([]string, error) {
	keys := append([]string{}, args...)
	if file == "" {
		return keys, nil
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, errors.Wrapf(err, "open key file %s", file)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		keys = append(keys, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read key file %s", file)
	}
	return keys, nil
}

func parseInts(keys []string) ([]int, error) {
	out := make([]int, 0, len(keys))
	for _, k := range keys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return nil, errors.Wrapf(err, "key %q is not an integer", k)
		}
		out = append(out, v)
	}
	return out, nil
}
