// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command p4dump is a demonstration and diagnostic front end for
// package heap. It is deliberately kept outside the heap package: the
// process entry point and any demonstration/diagnostic printing are
// external collaborators, not part of the core.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cznic/p4heap/heap"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("p4dump failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "p4dump",
		Short: "Inspect and exercise a p4heap bounded heap",
	}
	root.AddCommand(newDemoCmd(), newFuzzCmd())
	return root
}

// newDemoCmd runs a small allocate/link/collect trace against a fresh
// heap and prints the table after each step.
func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the reference allocation/GC scenario trace",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := heap.DefaultConfig()
			log.Info().Int("capacity", cfg.Capacity).Int("dynamicStart", cfg.DynamicStart).Msg("created heap")
			h := heap.Create()

			a, err := h.Alloc(24, 1)
			if err != nil {
				return err
			}
			b, err := h.Alloc(16, 0)
			if err != nil {
				return err
			}
			h.WritePointer(a, 0, b)
			log.Info().Int("allocs", h.NumAllocs()).Msg("allocated A -> B")
			h.ShowAllocations()

			freed := h.GC([]heap.Address{a})
			log.Info().Int("freed", freed).Msg("gc rooted at A")
			h.ShowAllocations()

			freed = h.GC(nil)
			log.Info().Int("freed", freed).Msg("gc with no roots")
			h.ShowAllocations()

			return nil
		},
	}
}

// newFuzzCmd drives a randomized alloc/free/gc workload for manual
// soak-testing.
func newFuzzCmd() *cobra.Command {
	var n int
	var seed int64
	var sizeLimit int

	cmd := &cobra.Command{
		Use:   "fuzz",
		Short: "Drive a randomized allocation workload",
		RunE: func(cmd *cobra.Command, args []string) error {
			h := heap.Create()
			rng := rand.New(rand.NewSource(seed))
			var live []heap.Address

			for i := 0; i < n; i++ {
				switch rng.Intn(3) {
				case 0:
					size := 1 + rng.Intn(sizeLimit)
					addr, err := h.Alloc(size, byte(rng.Intn(3)))
					if err == nil {
						live = append(live, addr)
					}
				case 1:
					if len(live) == 0 {
						continue
					}
					idx := rng.Intn(len(live))
					h.Free(live[idx])
					live = append(live[:idx], live[idx+1:]...)
				case 2:
					freed := h.GC(live)
					if freed > 0 {
						log.Debug().Int("freed", freed).Msg("gc")
					}
				}
			}

			stats := h.Stats()
			fmt.Printf("live records: %d, live bytes: %d, free bytes: %d, largest free: %d\n",
				stats.LiveRecords, stats.LiveBytes, stats.FreeBytes, stats.LargestFree)
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 2000, "number of random operations")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&sizeLimit, "lim", 256, "max bytes requested per Alloc")
	return cmd
}
