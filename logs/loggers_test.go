package logs_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/jt0/errkit/_test/assert"
	"github.com/jt0/errkit/envelope"
	"github.com/jt0/errkit/families"
	"github.com/jt0/errkit/logs"
)

func TestChain_LogsGenericView(t *testing.T) {
	logger, hook := test.NewNullLogger()

	cause := envelope.Wrap(assertionError("connection refused"))
	o := envelope.From[families.DependencyFamily](families.Dependency("ledger", nil).Because(cause))

	logs.Chain(logrus.NewEntry(logger), logrus.ErrorLevel, o)

	assert.Equals(t, 1, len(hook.Entries))
	entry := hook.LastEntry()
	assert.Equals(t, logrus.ErrorLevel, entry.Level)
	assert.Equals(t, "Dependency Failure: ledger", entry.Message)
	assert.Equals(t, "families.DependencyFamily", entry.Data["error.tag"])
	assert.Equals(t, "ledger", entry.Data["error.details"])
	assert.Equals(t, 2, entry.Data["error.depth"])
	assert.Equals(t, []string{"[envelope.Foreign] connection refused"}, entry.Data["error.causes"])
}

func TestChain_IgnoresNil(t *testing.T) {
	logger, hook := test.NewNullLogger()

	logs.Chain(logrus.NewEntry(logger), logrus.ErrorLevel, nil)
	assert.Equals(t, 0, len(hook.Entries))
	assert.Equals(t, logrus.Fields{}, logs.ChainFields(nil))
}

func TestChainFields_Placeholder(t *testing.T) {
	fields := logs.ChainFields(envelope.New[families.InternalFamily](""))

	assert.Equals(t, envelope.Placeholder, fields["error.description"])
	_, hasDetails := fields["error.details"]
	assert.Assert(t, !hasDetails)
	_, hasCauses := fields["error.causes"]
	assert.Assert(t, !hasCauses)
}

func TestSetLevel(t *testing.T) {
	assert.Success(t, logs.SetLevel("debug"))
	assert.Equals(t, logrus.DebugLevel, logs.Logger.GetLevel())
	assert.Error(t, logs.SetLevel("loud"))
	assert.Success(t, logs.SetLevel("info"))
}

type assertionError string

func (e assertionError) Error() string { return string(e) }
