package mongoclient

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/nftcommerce/base/ptr"
	"github.com/x-xyz/nftcommerce/domain"
)

func TestMakeBsonM(t *testing.T) {
	type snapshotPatch struct {
		Name      *string    `bson:"name,omitempty"`
		Royalty   *int       `bson:"royaltyBps,omitempty"`
		Owner     string     `bson:"owner"`
		Image     string     `bson:"image"`
		FetchedAt *time.Time `bson:"fetchedAt"`
		ignored   string
	}

	patch := &snapshotPatch{
		Name:    ptr.String(""),
		Royalty: ptr.Int(500),
		Image:   "https://img",
		ignored: "x",
	}

	updater, err := MakeBsonM(patch)
	require.NoError(t, err)
	require.Equal(t, bson.M{
		"name":       "",
		"royaltyBps": 500,
		"image":      "https://img",
	}, updater)

	_, err = MakeBsonM("not a struct")
	require.ErrorIs(t, err, ErrNotStruct)
}

func TestEnsureIndexesWithoutModels(t *testing.T) {
	c := &Client{DbName: "test"}
	require.NoError(t, c.EnsureIndexes(context.Background(), domain.TableNftSnapshots))
}
