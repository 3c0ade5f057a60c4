package ethereum

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const (
	methodDynamicFee    = "calculateDynamicFee"
	methodInstant       = "instantTransaction"
	methodSchedule      = "scheduleTransaction"
	methodExecute       = "executeTransaction"
	eventScheduled      = "TransactionScheduled"
	paymentSchedulerABI = `[
	{"type":"function","name":"calculateDynamicFee","stateMutability":"view",
	 "inputs":[{"name":"amount","type":"uint256"}],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"instantTransaction","stateMutability":"payable",
	 "inputs":[{"name":"recipient","type":"address"},{"name":"amount","type":"uint256"}],
	 "outputs":[]},
	{"type":"function","name":"scheduleTransaction","stateMutability":"payable",
	 "inputs":[{"name":"recipient","type":"address"},{"name":"amount","type":"uint256"},{"name":"scheduledTime","type":"uint256"}],
	 "outputs":[]},
	{"type":"function","name":"executeTransaction","stateMutability":"nonpayable",
	 "inputs":[{"name":"id","type":"uint256"}],
	 "outputs":[]},
	{"type":"event","name":"TransactionScheduled","anonymous":false,
	 "inputs":[
		{"name":"id","type":"uint256","indexed":true},
		{"name":"sender","type":"address","indexed":true},
		{"name":"recipient","type":"address","indexed":true},
		{"name":"amount","type":"uint256","indexed":false},
		{"name":"scheduledTime","type":"uint256","indexed":false}]}
]`
)

// PaymentSchedulerABI returns the parsed binding of the payment scheduler contract.
func PaymentSchedulerABI() (abi.ABI, error) {
	parsed, err := abi.JSON(strings.NewReader(paymentSchedulerABI))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("parse contract abi: %w", err)
	}
	return parsed, nil
}

// findScheduledEvent returns the first TransactionScheduled log emitted by contract.
func findScheduledEvent(contractABI abi.ABI, contract common.Address, logs []*types.Log) (*ScheduledEvent, error) {
	event, ok := contractABI.Events[eventScheduled]
	if !ok {
		return nil, fmt.Errorf("abi has no %s event", eventScheduled)
	}

	var indexed abi.Arguments
	for _, arg := range event.Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}

	for _, lg := range logs {
		if lg == nil || lg.Address != contract || len(lg.Topics) == 0 || lg.Topics[0] != event.ID {
			continue
		}

		fields := map[string]any{}
		if err := abi.ParseTopicsIntoMap(fields, indexed, lg.Topics[1:]); err != nil {
			return nil, fmt.Errorf("%w: decode topics: %w", ErrEventNotFound, err)
		}
		if err := contractABI.UnpackIntoMap(fields, eventScheduled, lg.Data); err != nil {
			return nil, fmt.Errorf("%w: decode data: %w", ErrEventNotFound, err)
		}

		ev := &ScheduledEvent{}
		ev.ID, _ = fields["id"].(*big.Int)
		ev.Sender, _ = fields["sender"].(common.Address)
		ev.Recipient, _ = fields["recipient"].(common.Address)
		ev.Amount, _ = fields["amount"].(*big.Int)
		ev.ScheduledTime, _ = fields["scheduledTime"].(*big.Int)
		if ev.ID == nil {
			return nil, fmt.Errorf("%w: missing id", ErrEventNotFound)
		}
		return ev, nil
	}

	return nil, ErrEventNotFound
}
