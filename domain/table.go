package domain

type Table string

const (
	TableNftSnapshots Table = "nft_snapshots"
	TableActivities   Table = "nft_activities"
)
