package types

// VotingPower describes a validator's share of the governance voting supply.
// Both fields are scaled down from the contract's 18-decimal fixed point
// representation to floating point units.
type VotingPower struct {
	// VotingSupply is the total voting supply of the governance contract at
	// the time of the query.
	VotingSupply float64 `json:"votingSupply"`

	// VotingPower is the voting power held by the validator.
	VotingPower float64 `json:"votingPower"`
}
