package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jt0/errkit/envelope"
	"github.com/jt0/errkit/typetag"
)

// ParseMarker and IoMarker name the two families used by the demo.
type ParseMarker struct{}
type IoMarker struct{}

type ParseError struct {
	Location int
	cause    envelope.Opaque
}

// Because returns a copy of pe whose envelope is chained to cause.
func (pe ParseError) Because(cause envelope.Opaque) ParseError {
	pe.cause = cause
	return pe
}

func (pe ParseError) Cause() envelope.Opaque { return pe.cause }

func (pe ParseError) Envelope() *envelope.Envelope[ParseMarker] {
	return envelope.New[ParseMarker]("Parse Error",
		envelope.WithDetails("at "+strconv.Itoa(pe.Location)),
		envelope.WithExtensions(ParseError{Location: pe.Location}),
		envelope.WithCause(pe.cause),
	)
}

func (ParseError) Family() typetag.Tag { return typetag.Of[ParseMarker]() }

func (pe *ParseError) Restore(o envelope.Opaque) bool {
	payload, ok := o.Extensions().(ParseError)
	if !ok {
		return false
	}

	payload.cause = o.Cause()
	*pe = payload
	return true
}

type IoError struct {
	Path string
}

func (ie IoError) Envelope() *envelope.Envelope[IoMarker] {
	return envelope.New[IoMarker]("I/O Error", envelope.WithDetails(ie.Path), envelope.WithExtensions(ie))
}

func (IoError) Family() typetag.Tag { return typetag.Of[IoMarker]() }

func (ie *IoError) Restore(o envelope.Opaque) bool {
	payload, ok := o.Extensions().(IoError)
	*ie = payload
	return ok
}

func produceParseError(location int, cause envelope.Opaque) envelope.Opaque {
	return envelope.From[ParseMarker](ParseError{Location: location}.Because(cause))
}

func newDemoCommand(v *viper.Viper) *cobra.Command {
	var location int
	var path string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Erase a ParseError and recover it in a generic handler",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cause envelope.Opaque
			if path != "" {
				cause = envelope.From[IoMarker](IoError{Path: path})
			}
			o := produceParseError(location, cause)

			out := cmd.OutOrStdout()
			if pe, ok := envelope.Recover[ParseError](o); ok {
				fmt.Fprintf(out, "recovered ParseError{Location: %d}\n", pe.Location)
			}
			if _, ok := envelope.Recover[IoError](o); !ok {
				fmt.Fprintln(out, "not an IoError")
			}
			if ie, ok := envelope.Recover[IoError](o.Cause()); ok {
				fmt.Fprintf(out, "cause is IoError{Path: %q}\n", ie.Path)
			}

			return write(out, v.GetString(outputKey), o)
		},
	}

	cmd.Flags().IntVar(&location, "location", 7, "parse error location")
	cmd.Flags().StringVar(&path, "cause-path", "", "chain an IoError for this path as the cause")

	return cmd
}
