package indexer

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/nftcommerce/base/ctx"
	"github.com/x-xyz/nftcommerce/domain"
	"github.com/x-xyz/nftcommerce/domain/activity"
)

const nftPayload = `{
  "data": {
    "nft": null,
    "nftByMintAddress": {
      "address": "meta1",
      "mintAddress": "mint1",
      "name": "Degen #1",
      "description": "desc",
      "image": "https://img",
      "sellerFeeBasisPoints": 500,
      "owner": {"address": "owner1"},
      "listings": [
        {"address": "l1", "auctionHouse": "home", "seller": "owner1", "price": "1000000000", "createdAt": "2022-05-01T10:00:00", "canceledAt": null},
        {"address": "l2", "auctionHouse": "home", "seller": "owner1", "price": 5, "createdAt": "2022-04-01T10:00:00Z", "canceledAt": "2022-04-02T10:00:00"}
      ],
      "offers": [
        {"address": "o1", "auctionHouse": "home", "buyer": "buyer1", "price": "500", "createdAt": "2022-05-02T10:00:00.123"}
      ]
    }
  }
}`

type indexerSuite struct {
	suite.Suite
	srv     *httptest.Server
	handler http.HandlerFunc
	client  Client
}

func (s *indexerSuite) SetupTest() {
	s.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.handler(w, r)
	}))
	hc := retryablehttp.NewClient()
	hc.RetryMax = 1
	hc.RetryWaitMin = time.Millisecond
	hc.RetryWaitMax = time.Millisecond
	hc.Logger = nil
	s.client = NewClient(ClientCfg{Endpoint: s.srv.URL, HttpClient: hc})
}

func (s *indexerSuite) TearDownTest() {
	s.srv.Close()
}

func (s *indexerSuite) reply(body string) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}
}

func (s *indexerSuite) TestGetNftFallsBackToMint() {
	var got gqlRequest
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("application/json", r.Header.Get("Content-Type"))
		b, _ := ioutil.ReadAll(r.Body)
		s.NoError(json.Unmarshal(b, &got))
		_, _ = w.Write([]byte(nftPayload))
	}

	nft, err := s.client.GetNft(bCtx.Background(), "mint1")
	s.Require().NoError(err)
	s.Equal("mint1", got.Variables["address"])
	s.Contains(got.Query, "nftByMintAddress")

	s.Equal(domain.Address("meta1"), nft.Address)
	s.Equal(domain.Address("mint1"), nft.MintAddress)
	s.Equal(domain.Address("owner1"), nft.OwnerAddress)
	s.Equal(500, nft.RoyaltyBasisPoints)
	s.Equal("Degen #1", nft.Name)

	s.Require().Len(nft.Listings, 2)
	s.Equal(int64(1000000000), nft.Listings[0].Price)
	s.Equal(domain.Address("home"), nft.Listings[0].MarketplaceProgramAddress)
	s.Equal(time.Date(2022, 5, 1, 10, 0, 0, 0, time.UTC), nft.Listings[0].CreatedAt)
	s.Nil(nft.Listings[0].CanceledAt)
	s.Equal(int64(5), nft.Listings[1].Price)
	s.Require().NotNil(nft.Listings[1].CanceledAt)
	s.Equal(time.Date(2022, 4, 2, 10, 0, 0, 0, time.UTC), *nft.Listings[1].CanceledAt)

	s.Require().Len(nft.Offers, 1)
	s.Equal(domain.Address("buyer1"), nft.Offers[0].Buyer)
	s.Equal(int64(500), nft.Offers[0].Price)
	s.Equal(123*time.Millisecond, time.Duration(nft.Offers[0].CreatedAt.Nanosecond()))
}

func (s *indexerSuite) TestGetNftPrefersMetadataAddress() {
	s.reply(`{"data":{"nft":{"address":"meta1","mintAddress":"mint1","owner":null},"nftByMintAddress":{"address":"other"}}}`)
	nft, err := s.client.GetNft(bCtx.Background(), "meta1")
	s.Require().NoError(err)
	s.Equal(domain.Address("meta1"), nft.Address)
	s.True(nft.OwnerAddress.IsEmpty())
	s.NotNil(nft.Listings)
	s.NotNil(nft.Offers)
}

func (s *indexerSuite) TestGetNftNotFound() {
	s.reply(`{"data":{"nft":null,"nftByMintAddress":null}}`)
	_, err := s.client.GetNft(bCtx.Background(), "missing")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *indexerSuite) TestGraphqlErrors() {
	s.reply(`{"data":null,"errors":[{"message":"boom"}]}`)
	_, err := s.client.GetNft(bCtx.Background(), "x")
	s.ErrorIs(err, domain.ErrUpstream)
	s.Contains(err.Error(), "boom")
}

func (s *indexerSuite) TestInvalidLamports() {
	s.reply(`{"data":{"nft":{"address":"a","listings":[{"price":"1.5","createdAt":"2022-05-01T10:00:00"}]}}}`)
	_, err := s.client.GetNft(bCtx.Background(), "a")
	s.ErrorIs(err, domain.ErrInvalidJsonFormat)
}

func (s *indexerSuite) TestServerError() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}
	_, err := s.client.GetNft(bCtx.Background(), "x")
	s.Error(err)
}

func (s *indexerSuite) TestGetActivities() {
	s.reply(`{"data":{"nftByMintAddress":{"activities":[
		{"address":"a1","activityType":"listing","auctionHouse":"home","price":"100","wallets":["w1"],"createdAt":"2022-05-01T10:00:00"},
		{"address":"a2","activityType":"purchase","auctionHouse":"home","price":200,"wallets":["w1","w2"],"createdAt":"2022-05-03T10:00:00"}
	]}}}`)
	acts, err := s.client.GetActivities(bCtx.Background(), "mint1")
	s.Require().NoError(err)
	s.Require().Len(acts, 2)
	s.Equal(activity.ActivityTypeListing, acts[0].ActivityType)
	s.Equal(domain.Address("mint1"), acts[0].MintAddress)
	s.Equal(int64(200), acts[1].Price)
	s.Equal([]domain.Address{"w1", "w2"}, acts[1].Wallets)

	s.reply(`{"data":{"nftByMintAddress":null}}`)
	_, err = s.client.GetActivities(bCtx.Background(), "mint1")
	s.ErrorIs(err, domain.ErrNotFound)
}

func TestIndexerSuite(t *testing.T) {
	suite.Run(t, new(indexerSuite))
}

func TestLamportsUnmarshal(t *testing.T) {
	req := require.New(t)
	var l lamports
	req.NoError(json.Unmarshal([]byte(`"42"`), &l))
	req.Equal(lamports(42), l)
	req.NoError(json.Unmarshal([]byte(`7`), &l))
	req.Equal(lamports(7), l)
	req.ErrorIs(json.Unmarshal([]byte(`"x"`), &l), domain.ErrInvalidNumberFormat)
}
