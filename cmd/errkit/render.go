package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/jt0/errkit/envelope"
	"github.com/jt0/errkit/families"
)

func newRenderCommand(v *viper.Viper) *cobra.Command {
	var depth int

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Build a chain of the given depth and render it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if depth < 1 {
				return envelope.From[families.BadValueFamily](families.Invalid("depth", depth).WithReason("must be at least 1"))
			}

			return write(cmd.OutOrStdout(), v.GetString(outputKey), buildChain(depth))
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 3, "number of links in the chain")

	return cmd
}

// buildChain alternates families so the rendered chain is heterogeneous.
func buildChain(depth int) envelope.Opaque {
	var o envelope.Opaque = envelope.From[IoMarker](IoError{Path: "/var/lib/errkit/data"})
	for i := 1; i < depth; i++ {
		if i%2 == 1 {
			o = produceParseError(i, o)
		} else {
			o = envelope.From[families.InternalFamily](families.Internal(fmt.Sprintf("step %d failed", i)).Because(o))
		}
	}

	return o
}

func write(out io.Writer, format string, o envelope.Opaque) error {
	switch format {
	case "text":
		_, err := fmt.Fprintf(out, "%+v\n", o)
		return err
	case "json":
		bytes, err := json.MarshalIndent(o.ToMap(), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(bytes))
		return err
	case "yaml":
		// yaml.v3 can't see through every payload shape; go via JSON so both
		// outputs agree.
		bytes, err := json.Marshal(o.ToMap())
		if err != nil {
			return err
		}
		var doc any
		if err = json.Unmarshal(bytes, &doc); err != nil {
			return err
		}
		if bytes, err = yaml.Marshal(doc); err != nil {
			return err
		}
		_, err = out.Write(bytes)
		return err
	default:
		return envelope.From[families.BadValueFamily](families.Invalid("output", format).WithReason("expected text, json, or yaml"))
	}
}
