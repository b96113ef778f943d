// internal/app/system/txn/txn.go
//
// Package txn wraps multi-document writes in a Mongo transaction when the
// server supports one (replica set / mongos), and falls back to running the
// writes sequentially on standalone servers. Callers pass a closure that
// performs all its operations with the context it receives.
package txn

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Run executes fn inside a transaction if possible. When the deployment
// does not support transactions, fn runs once outside a session and a
// warning is logged; the writes are then individually atomic only.
func Run(ctx context.Context, db *mongo.Database, log *zap.Logger, fn func(ctx context.Context) error) error {
	client := db.Client()

	session, err := client.StartSession()
	if err != nil {
		if IsNotSupported(err) {
			log.Warn("transactions unsupported; running writes without a session", zap.Error(err))
			return fn(ctx)
		}
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc)
	})
	if err != nil && IsNotSupported(err) {
		log.Warn("transactions unsupported; running writes without a session", zap.Error(err))
		return fn(ctx)
	}
	return err
}

// IsNotSupported reports whether err indicates the deployment cannot run
// multi-document transactions (standalone server, old wire version, or
// session-less storage engine).
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}

	if ce, ok := err.(mongo.CommandError); ok {
		switch ce.Code {
		case 20, 51, 263: // IllegalOperation, transaction numbers, API mismatch
			return true
		}
	}

	// Driver and server errors phrase this a few different ways; require a
	// pair of telltale keywords so a generic failure does not trip the
	// fallback.
	msg := strings.ToLower(err.Error())
	pairs := [][2]string{
		{"transaction", "replica set"},
		{"transaction", "not supported"},
		{"transaction", "illegal operation"},
		{"transaction", "session"},
		{"session", "not supported"},
	}
	for _, p := range pairs {
		if strings.Contains(msg, p[0]) && strings.Contains(msg, p[1]) {
			return true
		}
	}
	return false
}
