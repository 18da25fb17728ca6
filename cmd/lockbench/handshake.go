package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NetPo4ki/go-thread/thread"
)

func NewHandshakeCmd() *cobra.Command {
	var (
		threads int
		prefix  string
	)

	cmd := &cobra.Command{
		Use:   "handshake",
		Short: "Start managed threads and print the identity each one publishes.",
		RunE: func(cc *cobra.Command, _ []string) error {
			if threads < 1 {
				return fmt.Errorf("invalid argument: --threads must be positive")
			}
			release := make(chan struct{})
			started := make([]*thread.ManagedThread, 0, threads)
			for i := range threads {
				t, err := thread.New(func() { <-release }, fmt.Sprintf("%s-%d", prefix, i))
				if err != nil {
					close(release)
					return err
				}
				// Valid as soon as New returns.
				fmt.Fprintf(cc.OutOrStdout(), "%s id=%d\n", t.Name(), t.ID())
				started = append(started, t)
			}
			close(release)
			for _, t := range started {
				if err := t.Join(); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&threads, "threads", 4, "Number of managed threads")
	cmd.Flags().StringVar(&prefix, "prefix", "worker", "Thread name prefix")

	return cmd
}
