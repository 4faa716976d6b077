package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/nftcommerce/domain"
)

func TestSortNewestFirst(t *testing.T) {
	t0 := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	acts := []Activity{
		{Address: "a", CreatedAt: t0},
		{Address: "b", CreatedAt: t0.Add(time.Hour)},
		{Address: "c", CreatedAt: t0},
		{Address: "d", CreatedAt: t0.Add(2 * time.Hour)},
	}
	SortNewestFirst(acts)
	got := []domain.Address{}
	for _, a := range acts {
		got = append(got, a.Address)
	}
	require.Equal(t, []domain.Address{"d", "b", "a", "c"}, got)
}

func TestFindAllOptions(t *testing.T) {
	req := require.New(t)

	opts, err := GetFindAllOptions(WithMintAddress("mint"), WithActivityType(ActivityTypeOffer), WithLimit(5))
	req.NoError(err)
	req.Equal(domain.Address("mint"), *opts.MintAddress)
	req.Equal(ActivityTypeOffer, *opts.ActivityType)
	req.Equal(5, *opts.Limit)

	_, err = GetFindAllOptions(WithActivityType("transfer"))
	req.ErrorIs(err, domain.ErrBadParamInput)

	_, err = GetFindAllOptions(WithLimit(0))
	req.ErrorIs(err, domain.ErrBadParamInput)
}
