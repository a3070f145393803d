package usecase

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// fakeTransactor runs fn without a database so repository mocks receive a nil tx.
type fakeTransactor struct {
	calls int
}

func (f *fakeTransactor) WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	f.calls++
	return fn(nil)
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
