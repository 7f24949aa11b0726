package gotchi

import (
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
)

// Event names emitted by the facet.
const (
	EventIncreaseStake      = "IncreaseStake"
	EventDecreaseStake      = "DecreaseStake"
	EventExperienceTransfer = "ExperienceTransfer"
)

// IncreaseStakeEvent is emitted when collateral is added to a token's escrow.
type IncreaseStakeEvent struct {
	TokenId     *big.Int
	StakeAmount *big.Int
	Raw         types.Log
}

// DecreaseStakeEvent is emitted when collateral is withdrawn from a token's
// escrow.
type DecreaseStakeEvent struct {
	TokenId      *big.Int
	ReduceAmount *big.Int
	Raw          types.Log
}

// ExperienceTransferEvent is emitted when decreaseAndDestroy moves a burned
// token's experience to another token.
type ExperienceTransferEvent struct {
	FromTokenId *big.Int
	ToTokenId   *big.Int
	Experience  *big.Int
	Raw         types.Log
}

// IncreaseStakeEvents decodes the IncreaseStake events the facet emitted in
// a confirmed receipt. Logs from other contracts or events are skipped.
func (c *Client) IncreaseStakeEvents(receipt *types.Receipt) ([]IncreaseStakeEvent, error) {
	var events []IncreaseStakeEvent
	for _, lg := range c.facetLogs(receipt, EventIncreaseStake) {
		var ev IncreaseStakeEvent
		if err := c.contract.UnpackLog(&ev, EventIncreaseStake, *lg); err != nil {
			return nil, &EventError{Event: EventIncreaseStake, Err: err}
		}
		ev.Raw = *lg
		events = append(events, ev)
	}
	return events, nil
}

// DecreaseStakeEvents decodes the DecreaseStake events in a receipt.
func (c *Client) DecreaseStakeEvents(receipt *types.Receipt) ([]DecreaseStakeEvent, error) {
	var events []DecreaseStakeEvent
	for _, lg := range c.facetLogs(receipt, EventDecreaseStake) {
		var ev DecreaseStakeEvent
		if err := c.contract.UnpackLog(&ev, EventDecreaseStake, *lg); err != nil {
			return nil, &EventError{Event: EventDecreaseStake, Err: err}
		}
		ev.Raw = *lg
		events = append(events, ev)
	}
	return events, nil
}

// ExperienceTransferEvents decodes the ExperienceTransfer events in a
// receipt.
func (c *Client) ExperienceTransferEvents(receipt *types.Receipt) ([]ExperienceTransferEvent, error) {
	var events []ExperienceTransferEvent
	for _, lg := range c.facetLogs(receipt, EventExperienceTransfer) {
		var ev ExperienceTransferEvent
		if err := c.contract.UnpackLog(&ev, EventExperienceTransfer, *lg); err != nil {
			return nil, &EventError{Event: EventExperienceTransfer, Err: err}
		}
		ev.Raw = *lg
		events = append(events, ev)
	}
	return events, nil
}

// facetLogs filters a receipt's logs down to those emitted by the facet
// address with the named event's signature.
func (c *Client) facetLogs(receipt *types.Receipt, event string) []*types.Log {
	id := facetABI.Events[event].ID
	var logs []*types.Log
	for _, lg := range receipt.Logs {
		if lg.Address == c.address && len(lg.Topics) > 0 && lg.Topics[0] == id {
			logs = append(logs, lg)
		}
	}
	return logs
}
