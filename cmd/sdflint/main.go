// Command sdflint loads an SDF description file, reports every problem
// the loader accumulated, and optionally resolves a pose between two
// frames of the first world or the standalone model.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roboscene/sdf"
	"github.com/roboscene/sdf/pose"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var poseFrame string
	var relativeTo string

	cmd := &cobra.Command{
		Use:   "sdflint <file.sdf>",
		Short: "Validate an SDF description and resolve frame poses",
		Args:  cobra.ExactArgs(1),
		// Errors are printed by run itself, one per line.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], poseFrame, relativeTo)
		},
	}
	cmd.Flags().StringVar(&poseFrame, "pose", "", "Frame to resolve the pose of")
	cmd.Flags().StringVar(&relativeTo, "relative-to", "", "Frame to express the pose in (default: scope root)")
	return cmd
}

func run(cmd *cobra.Command, path, poseFrame, relativeTo string) error {
	var root sdf.Root
	errs := root.LoadFromPath(path)
	for _, e := range errs {
		fmt.Fprintln(cmd.ErrOrStderr(), e.Error())
	}
	if len(errs) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s fails to validate\n", path)
		return fmt.Errorf("%d problems", len(errs))
	}

	if poseFrame != "" {
		resolved, err := resolvePose(&root, poseFrame, relativeTo)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
			return err
		}
		roll, pitch, yaw := resolved.Euler()
		fmt.Fprintf(cmd.OutOrStdout(), "%g %g %g %g %g %g\n",
			resolved.Translation.X, resolved.Translation.Y, resolved.Translation.Z,
			roll, pitch, yaw)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s validates\n", path)
	return nil
}

func resolvePose(root *sdf.Root, frame, relativeTo string) (pose.Pose, error) {
	if root.WorldCount() > 0 {
		return root.WorldByIndex(0).PoseOf(frame, relativeTo)
	}
	if m := root.Model(); m != nil {
		return m.PoseOf(frame, relativeTo)
	}
	return pose.Identity(), fmt.Errorf("the description declares no world or model to query")
}
