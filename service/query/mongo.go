/*
Package query wraps go.mongodb.org/mongo-driver for the repositories.
See https://godoc.org/go.mongodb.org/mongo-driver/mongo for driver details.
*/
package query

import (
	"fmt"

	"github.com/x-xyz/nftcommerce/base/ctx"
	"github.com/x-xyz/nftcommerce/domain"
)

var (
	// ErrNotFound is mongo document not found error
	ErrNotFound = fmt.Errorf("document not found")

	// ErrDuplicateKey is an error when violating unique index
	ErrDuplicateKey = fmt.Errorf("duplicate key")

	// ErrEmptyBulk is returned by BulkUpsert without operations
	ErrEmptyBulk = fmt.Errorf("no upsert operation given")
)

// UpsertOp is one replace-or-insert of BulkUpsert
type UpsertOp struct {
	Selector interface{}
	Updater  interface{}
}

// Mongo abstracts the mongo layer
type Mongo interface {
	// FindOne decodes the first match into result. Returns ErrNotFound without match.
	FindOne(ctx ctx.Ctx, table domain.Table, query, result interface{}) error

	// Search sorts by `sort` ("createdAt" ascending, "-createdAt" descending).
	// An empty sort leaves the order to mongo. limit 0 means no limit.
	Search(ctx ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error

	// Upsert replaces the document matching selector, inserting it when absent
	Upsert(ctx ctx.Ctx, table domain.Table, selector, update interface{}) error

	// Patch $sets update on the document matching selector. Returns ErrNotFound without match.
	Patch(ctx ctx.Ctx, table domain.Table, selector, update interface{}) error

	// Remove deletes one document. Returns ErrNotFound without match.
	Remove(ctx ctx.Ctx, table domain.Table, selector interface{}) error

	// RemoveAll deletes every match
	RemoveAll(ctx ctx.Ctx, table domain.Table, selector interface{}) (removedCnt int64, err error)

	// BulkUpsert runs unordered upserts, so they may apply in any order
	BulkUpsert(ctx ctx.Ctx, table domain.Table, ops []UpsertOp) (matchedCnt int64, upsertedCnt int64, err error)
}
