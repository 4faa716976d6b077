package repository

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/nftcommerce/base/ctx"
	"github.com/x-xyz/nftcommerce/domain"
	"github.com/x-xyz/nftcommerce/domain/commerce"
	"github.com/x-xyz/nftcommerce/service/query"
	mQuery "github.com/x-xyz/nftcommerce/service/query/mocks"
)

type snapshotSuite struct {
	suite.Suite

	q    *mQuery.Mongo
	repo commerce.SnapshotRepo
}

func TestSnapshotSuite(t *testing.T) {
	suite.Run(t, new(snapshotSuite))
}

func (s *snapshotSuite) SetupTest() {
	s.q = mQuery.NewMongo(s.T())
	s.repo = NewSnapshotRepo(s.q)
}

func (s *snapshotSuite) TestFindOne() {
	c := ctx.Background()
	sel := bson.M{"$or": bson.A{
		bson.M{"address": domain.Address("nft1")},
		bson.M{"mintAddress": domain.Address("nft1")},
	}}
	s.q.On("FindOne", c, domain.TableNftSnapshots, sel, mock.AnythingOfType("*commerce.Snapshot")).
		Run(func(args mock.Arguments) {
			args.Get(3).(*commerce.Snapshot).Name = "found"
		}).Return(nil).Once()

	res, err := s.repo.FindOne(c, "nft1")
	s.Require().NoError(err)
	s.Equal("found", res.Name)
}

func (s *snapshotSuite) TestFindOneNotFound() {
	c := ctx.Background()
	s.q.On("FindOne", c, domain.TableNftSnapshots, mock.Anything, mock.Anything).Return(query.ErrNotFound).Once()

	_, err := s.repo.FindOne(c, "nft1")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *snapshotSuite) TestUpsert() {
	c := ctx.Background()
	snap := commerce.Snapshot{Nft: commerce.Nft{Address: "nft1"}}
	s.q.On("Upsert", c, domain.TableNftSnapshots, bson.M{"address": domain.Address("nft1")}, snap).Return(nil).Once()

	s.NoError(s.repo.Upsert(c, snap))
}

func (s *snapshotSuite) TestRemove() {
	c := ctx.Background()
	s.q.On("Remove", c, domain.TableNftSnapshots, bySnapshotAddress("nft1")).Return(query.ErrNotFound).Once()

	s.ErrorIs(s.repo.Remove(c, "nft1"), domain.ErrNotFound)
}

func (s *snapshotSuite) TestRemoveByMint() {
	c := ctx.Background()
	sel := bson.M{"$or": bson.A{
		bson.M{"address": domain.Address("mint1")},
		bson.M{"mintAddress": domain.Address("mint1")},
	}}
	s.q.On("Remove", c, domain.TableNftSnapshots, sel).Return(nil).Once()

	s.NoError(s.repo.Remove(c, "mint1"))
}
