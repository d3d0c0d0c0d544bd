package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/schedsim/model/resource"
	"github.com/viant/schedsim/model/types"
	"github.com/viant/schedsim/service/render"
	"github.com/viant/schedsim/service/workload/vector"
)

// snapshotFlags describe a resource snapshot given inline instead of a file.
type snapshotFlags struct {
	available  string
	allocation string
	max        string
}

func (f *snapshotFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.available, "available", "", `available vector, e.g. "3 3 2"`)
	cmd.Flags().StringVar(&f.allocation, "allocation", "", `allocation matrix, e.g. "[[0,1,0],[2,0,0]]"`)
	cmd.Flags().StringVar(&f.max, "max", "", `max matrix, e.g. "7 5 3; 3 2 2"`)
}

func (f *snapshotFlags) state() (*resource.State, error) {
	if f.available == "" || f.allocation == "" || f.max == "" {
		return nil, errors.New("snapshot file or --available, --allocation and --max are required")
	}
	available, err := vector.ParseVector(f.available)
	if err != nil {
		return nil, err
	}
	allocation, err := vector.ParseMatrix(f.allocation)
	if err != nil {
		return nil, err
	}
	maximum, err := vector.ParseMatrix(f.max)
	if err != nil {
		return nil, err
	}
	return resource.New(available, allocation, maximum), nil
}

func newBankCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Evaluate resource snapshots with the Banker's algorithm",
	}
	cmd.AddCommand(newBankCheckCmd(a))
	cmd.AddCommand(newBankRequestCmd(a))
	return cmd
}

func (a *app) loadState(cmd *cobra.Command, args []string, flags *snapshotFlags) (*resource.State, error) {
	if len(args) == 1 {
		return a.service.Runtime().LoadResources(a.context(cmd), args[0])
	}
	return flags.state()
}

func newBankCheckCmd(a *app) *cobra.Command {
	flags := &snapshotFlags{}
	cmd := &cobra.Command{
		Use:   "check [snapshot]",
		Short: "Report whether a snapshot is safe and its safe sequence",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := a.loadState(cmd, args, flags)
			if err != nil {
				return err
			}
			verdict, err := a.service.Runtime().CheckSafety(a.context(cmd), state)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			render.ResourceState(out, state)
			render.Verdict(out, verdict)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newBankRequestCmd(a *app) *cobra.Command {
	flags := &snapshotFlags{}
	var processLabel, requestLiteral string
	cmd := &cobra.Command{
		Use:   "request [snapshot] --process P1 --request \"1 0 2\"",
		Short: "Simulate granting a resource request",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseProcess(processLabel)
			if err != nil {
				return err
			}
			request, err := vector.ParseVector(requestLiteral)
			if err != nil {
				return err
			}
			state, err := a.loadState(cmd, args, flags)
			if err != nil {
				return err
			}
			outcome, err := a.service.Runtime().Request(a.context(cmd), state, index, request)
			if err != nil && !isRefusal(err) {
				return err
			}
			render.Outcome(cmd.OutOrStdout(), outcome)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&processLabel, "process", "", "requesting process, e.g. P1 or 1")
	cmd.Flags().StringVar(&requestLiteral, "request", "", `requested units, e.g. "1 0 2"`)
	_ = cmd.MarkFlagRequired("process")
	_ = cmd.MarkFlagRequired("request")
	return cmd
}

// parseProcess accepts "P1", "p1" or "1".
func parseProcess(label string) (int, error) {
	text := strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(label)), "P")
	index, err := strconv.Atoi(text)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("invalid process %q", label)
	}
	return index, nil
}

// isRefusal reports errors describing a refused request rather than bad input.
func isRefusal(err error) bool {
	return errors.Is(err, types.ErrExceedsMax) ||
		errors.Is(err, types.ErrInsufficientResources) ||
		errors.Is(err, types.ErrUnsafeState)
}
