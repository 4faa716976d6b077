package marketplace

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftcommerce/domain"
)

type RegistryTestSuite struct {
	suite.Suite
	reg *Registry
}

func (s *RegistryTestSuite) SetupTest() {
	s.reg = NewRegistry(
		Marketplace{ProgramAddress: "home", Name: "Holaplex", SellerFeeBasisPoints: 200},
		[]Marketplace{
			{ProgramAddress: "me", Name: "Magic Eden", Link: "https://magiceden.io/item-details/"},
			{ProgramAddress: "integrated", Name: "Partner", Link: "https://partner/", Integrated: true},
			{ProgramAddress: "nolink", Name: "Nolink"},
			{ProgramAddress: "home", Name: "Overwritten"},
		},
	)
}

func (s *RegistryTestSuite) TestHome() {
	s.Equal(domain.Address("home"), s.reg.Home().ProgramAddress)
	s.True(s.reg.Home().Integrated)

	m, ok := s.reg.Lookup("home")
	s.True(ok)
	s.Equal("Holaplex", m.Name)
	s.Equal(200, m.SellerFeeBasisPoints)
}

func (s *RegistryTestSuite) TestLookupUnknown() {
	m, ok := s.reg.Lookup("unknown")
	s.False(ok)
	s.Equal(Marketplace{ProgramAddress: "unknown"}, m)
}

func (s *RegistryTestSuite) TestIntegratedAddresses() {
	s.Equal([]domain.Address{"integrated"}, s.reg.IntegratedAddresses())
	s.Empty(NewRegistry(Marketplace{ProgramAddress: "home"}, nil).IntegratedAddresses())
}

func (s *RegistryTestSuite) TestListingURL() {
	tests := []struct {
		desc    string
		address domain.Address
		exp     string
	}{
		{"not integrated", "me", "https://magiceden.io/item-details/mint1"},
		{"integrated", "integrated", ""},
		{"no link", "nolink", ""},
		{"unknown", "unknown", ""},
		{"home", "home", ""},
	}
	for _, t := range tests {
		s.Equal(t.exp, s.reg.ListingURL(t.address, "mint1"), t.desc)
	}
}

func TestRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}
