package logs

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/jt0/errkit/envelope"
)

var Logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// SetLevel accepts any level name understood by logrus.ParseLevel.
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	Logger.SetLevel(lvl)
	return nil
}

// ChainFields describes o using only its generic view.
func ChainFields(o envelope.Opaque) logrus.Fields {
	if o == nil {
		return logrus.Fields{}
	}

	description, ok := o.Description()
	if !ok {
		description = envelope.Placeholder
	}
	fields := logrus.Fields{
		"error.tag":         o.Tag().String(),
		"error.description": description,
		"error.depth":       envelope.Depth(o),
	}
	if details, ok := o.Details(); ok {
		fields["error.details"] = details
	}

	var causes []string
	envelope.Walk(o.Cause(), func(_ int, link envelope.Opaque) bool {
		causes = append(causes, "["+link.Tag().String()+"] "+linkText(link))
		return true
	})
	if len(causes) > 0 {
		fields["error.causes"] = causes
	}

	return fields
}

// Chain logs o as a single entry at level. A nil entry uses Logger.
func Chain(entry *logrus.Entry, level logrus.Level, o envelope.Opaque) {
	if o == nil {
		return
	}
	if entry == nil {
		entry = logrus.NewEntry(Logger)
	}

	entry.WithFields(ChainFields(o)).Log(level, linkText(o))
}

func linkText(o envelope.Opaque) string {
	text, ok := o.Description()
	if !ok {
		text = envelope.Placeholder
	}
	if details, ok := o.Details(); ok {
		text += ": " + details
	}
	return text
}
