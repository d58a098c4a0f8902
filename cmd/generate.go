package main

import (
	"bufio"
	"context"
	"io"
	"strconv"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/lanrat/fastperm"
	"github.com/lanrat/fastperm/config"
)

// streamBuffer is how many cycles a stream may run ahead of the writer.
const streamBuffer = 64

// newStream builds the generator for stream i. Each stream owns its own
// source, seeded with cfg.Seed+i.
func newStream(cfg *config.Config, i int) fastperm.Permutation {
	src := rand.New(rand.NewSource(cfg.Seed + uint64(i)))
	return cfg.Strategy.New(src, uint8(cfg.Period))
}

// generate draws cfg.Cycles permutations from each of cfg.Streams
// independent generators and writes them to w, one line per cycle,
// "stream<i>: a b c ...", streams in order.
//
// Streams run concurrently but at most streamBuffer cycles ahead of the
// writer, so memory does not grow with cfg.Cycles.
func generate(ctx context.Context, cfg *config.Config, w io.Writer) error {
	group, grpCtx := errgroup.WithContext(ctx)
	streams := make([]chan []uint8, cfg.Streams)
	for i := range streams {
		out := make(chan []uint8, streamBuffer)
		streams[i] = out
		group.Go(func() error {
			defer close(out)
			log := l.WithField("stream", i)
			p := newStream(cfg, i)
			for c := 0; c < cfg.Cycles; c++ {
				if err := grpCtx.Err(); err != nil {
					return err
				}
				// NextIndex rolls over into a new cycle every Period draws
				perm := make([]uint8, p.Period())
				for j := range perm {
					perm[j] = p.NextIndex()
				}
				select {
				case out <- perm:
				case <-grpCtx.Done():
					return grpCtx.Err()
				}
			}
			log.WithField("cycles", cfg.Cycles).Debug("stream done")
			return nil
		})
	}
	group.Go(func() error {
		return writeStreams(grpCtx, w, streams)
	})
	return group.Wait()
}

// writeStreams drains each stream in turn and prints its cycles.
func writeStreams(ctx context.Context, w io.Writer, streams []chan []uint8) error {
	bw := bufio.NewWriter(w)
	for i, stream := range streams {
		prefix := "stream" + strconv.Itoa(i) + ":"
		for perm := range stream {
			err := writeCycle(bw, prefix, perm)
			if err != nil {
				return err
			}
		}
	}
	// a stream closed early because the group was canceled
	if err := ctx.Err(); err != nil {
		return err
	}
	return bw.Flush()
}

func writeCycle(bw *bufio.Writer, prefix string, perm []uint8) error {
	bw.WriteString(prefix)
	for _, idx := range perm {
		bw.WriteByte(' ')
		bw.WriteString(strconv.Itoa(int(idx)))
	}
	// bufio errors are sticky, so the last write reports any earlier failure
	return bw.WriteByte('\n')
}
