package indexer

const nftFields = `
    address
    mintAddress
    name
    description
    image
    sellerFeeBasisPoints
    owner {
      address
    }
    listings {
      address
      auctionHouse
      seller
      price
      createdAt
      canceledAt
    }
    offers {
      address
      auctionHouse
      buyer
      price
      createdAt
      canceledAt
    }`

const nftQuery = `query nftPage($address: String!) {
  nft(address: $address) {` + nftFields + `
  }
  nftByMintAddress(address: $address) {` + nftFields + `
  }
}`

const activitiesQuery = `query nftActivities($address: String!) {
  nftByMintAddress(address: $address) {
    activities {
      address
      activityType
      auctionHouse
      price
      wallets
      createdAt
    }
  }
}`
