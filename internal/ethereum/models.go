package ethereum

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// CallResult is the outcome of a confirmed contract call.
type CallResult struct {
	TxHash      string
	EventID     string
	Receipt     *types.Receipt
	ReceiptDump string
}

// ScheduledEvent is the decoded TransactionScheduled log.
type ScheduledEvent struct {
	ID            *big.Int
	Sender        common.Address
	Recipient     common.Address
	Amount        *big.Int
	ScheduledTime *big.Int
}

// Call is a state-changing contract invocation ready to be signed.
type Call struct {
	To    common.Address
	Value *big.Int
	Data  []byte
}
