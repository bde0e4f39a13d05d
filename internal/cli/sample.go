package cli

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/CherkashinEvgeny/gintonic/aspect"
)

const sampleTag = "MainActivity"

var errSample = errors.New("boom")

// sampleIdentity names the operation the way the default pointcuts expect,
// e.g. MainActivity.testAround.
func sampleIdentity(kind aspect.Kind) string {
	name := kind.String()
	return sampleTag + ".test" + strings.ToUpper(name[:1]) + name[1:]
}

func newSampleCommand(a *app, kind aspect.Kind) *cobra.Command {
	var (
		fail  bool
		sleep time.Duration
	)
	cmd := &cobra.Command{
		Use:     kind.String(),
		Short:   "Run " + sampleIdentity(kind),
		Args:    cobra.NoArgs,
		PreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			identity := sampleIdentity(kind)
			_, err := aspect.Invoke(a.container, identity, aspect.Void(func() error {
				if sleep > 0 {
					time.Sleep(sleep)
				}
				a.logger.Log(sampleTag, identity+" running")
				if fail {
					return errSample
				}
				return nil
			}))
			return err
		},
	}
	cmd.Flags().BoolVar(&fail, "fail", false, "make the operation return an error")
	cmd.Flags().DurationVar(&sleep, "sleep", 0, "time the operation spends before returning")
	return cmd
}
