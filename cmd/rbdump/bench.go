package main

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/openacid/testkeys"
	"github.com/spf13/cobra"

	"github.com/e11jah/rbtree"
)

const defaultCorpus = "1mvl5_10"

type benchOptions struct {
	corpus string
	limit  int
	alloc  string
	list   bool
}

func benchCmd(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	opts := &benchOptions{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Insert and erase a key corpus and report timings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if opts.list {
				for _, name := range testkeys.AssetNames() {
					fmt.Fprintln(w, name)
				}
				return nil
			}
			return runBench(w, logger(cmd), opts)
		},
	}

	cmd.Flags().StringVar(&opts.corpus, "corpus", defaultCorpus, "key corpus to load")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "use at most this many keys (0 for all)")
	cmd.Flags().StringVar(&opts.alloc, "alloc", "slab", "node allocator: heap, pool or slab")
	cmd.Flags().BoolVar(&opts.list, "list", false, "list the available corpora")

	return cmd
}

func newAllocator(name string) (rbtree.Allocator[string], error) {
	switch name {
	case "heap":
		return rbtree.HeapAllocator[string]{}, nil
	case "pool":
		return rbtree.NewPoolAllocator[string](), nil
	case "slab":
		return rbtree.NewSlabAllocator[string](1024), nil
	}
	return nil, errors.Newf("unknown allocator %q", name)
}

func runBench(w io.Writer, log *slog.Logger, opts *benchOptions) error {
	if !slices.Contains(testkeys.AssetNames(), opts.corpus) {
		return errors.Newf("unknown corpus %q, see --list", opts.corpus)
	}
	alloc, err := newAllocator(opts.alloc)
	if err != nil {
		return err
	}

	keys := testkeys.Load(opts.corpus)
	if opts.limit > 0 && opts.limit < len(keys) {
		keys = keys[:opts.limit]
	}
	log.Debug("corpus loaded", "corpus", opts.corpus, "keys", len(keys))

	tree := rbtree.NewOrdered(rbtree.WithAllocator(alloc))

	start := time.Now()
	for _, k := range keys {
		if _, _, err := tree.Insert(k); err != nil {
			return err
		}
	}
	insertTook := time.Since(start)
	size, height := tree.Len(), tree.Height()

	if err := tree.Validate(); err != nil {
		return errors.Wrap(err, "after inserting")
	}
	log.Debug("inserted", "size", size, "took", insertTook)

	start = time.Now()
	for _, k := range keys {
		tree.Delete(k)
	}
	eraseTook := time.Since(start)

	if err := tree.Validate(); err != nil {
		return errors.Wrap(err, "after erasing")
	}
	if !tree.Empty() {
		return errors.Newf("%d keys left after erasing the corpus", tree.Len())
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"corpus", "keys", "unique", "height", "insert", "erase", "insert/key"})
	tbl.AppendRow(table.Row{
		opts.corpus,
		humanize.Comma(int64(len(keys))),
		humanize.Comma(int64(size)),
		height,
		insertTook.Round(time.Microsecond),
		eraseTook.Round(time.Microsecond),
		perKey(insertTook, len(keys)),
	})
	fmt.Fprintln(w, tbl.Render())

	return nil
}

func perKey(d time.Duration, n int) time.Duration {
	if n == 0 {
		return 0
	}
	return d / time.Duration(n)
}
